// Package fingerprint derives weak, best-effort device identifiers from a snapshot
// of client-observable browser characteristics.
package fingerprint

import (
	"strconv"
)

const unknownValue = "unknown"

// Environment is a snapshot of the characteristics a browser exposes without special permissions.
type Environment struct {
	UserAgent           string   `json:"userAgent"`
	Language            string   `json:"language"`
	Platform            string   `json:"platform"`
	ScreenWidth         int      `json:"screenWidth"`
	ScreenHeight        int      `json:"screenHeight"`
	Timezone            string   `json:"timezone"`
	ColorDepth          int      `json:"colorDepth"`
	HardwareConcurrency int      `json:"hardwareConcurrency"`
	DeviceMemory        *float64 `json:"deviceMemory,omitempty"`
	CookieEnabled       bool     `json:"cookieEnabled"`
	DoNotTrack          *string  `json:"doNotTrack,omitempty"`
	CanvasDataURL       string   `json:"canvas"`
}

// ScreenResolution renders the screen size as WIDTHxHEIGHT.
func (e *Environment) ScreenResolution() string {
	return strconv.Itoa(e.ScreenWidth) + "x" + strconv.Itoa(e.ScreenHeight)
}

func (e *Environment) deviceMemory() string {
	if e.DeviceMemory == nil {
		return unknownValue
	}

	return strconv.FormatFloat(*e.DeviceMemory, 'f', -1, 64)
}

func (e *Environment) doNotTrack() string {
	if e.DoNotTrack == nil || *e.DoNotTrack == "" {
		return unknownValue
	}

	return *e.DoNotTrack
}

// DeviceInfo is the human-reviewable part of a snapshot stored next to a fingerprint.
// The canvas artifact is omitted.
type DeviceInfo struct {
	Schema              string   `json:"schema"`
	UserAgent           string   `json:"userAgent"`
	Language            string   `json:"language"`
	Platform            string   `json:"platform"`
	ScreenResolution    string   `json:"screenResolution"`
	Timezone            string   `json:"timezone"`
	ColorDepth          int      `json:"colorDepth"`
	HardwareConcurrency int      `json:"hardwareConcurrency"`
	DeviceMemory        *float64 `json:"deviceMemory,omitempty"`
	CookieEnabled       bool     `json:"cookieEnabled"`
	DoNotTrack          *string  `json:"doNotTrack,omitempty"`
}

func newDeviceInfo(schemaID string, env *Environment) DeviceInfo {
	return DeviceInfo{
		Schema:              schemaID,
		UserAgent:           env.UserAgent,
		Language:            env.Language,
		Platform:            env.Platform,
		ScreenResolution:    env.ScreenResolution(),
		Timezone:            env.Timezone,
		ColorDepth:          env.ColorDepth,
		HardwareConcurrency: env.HardwareConcurrency,
		DeviceMemory:        env.DeviceMemory,
		CookieEnabled:       env.CookieEnabled,
		DoNotTrack:          env.DoNotTrack,
	}
}
