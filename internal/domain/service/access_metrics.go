// Package service declares the infrastructure services the use cases depend on.
package service

// AccessMetrics records device access decisions.
type AccessMetrics interface {
	ObserveDecision(outcome string)
}
