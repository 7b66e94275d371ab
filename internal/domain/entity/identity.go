package entity

// Identity is the authenticated caller as resolved from the hosted auth provider.
type Identity struct {
	Subject string // Provider-specific stable user ID.
	Email   string // Normalized email, used as the purchase key.
}
