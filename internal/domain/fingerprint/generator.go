package fingerprint

import (
	"encoding/json"

	"academy/internal/errors"
)

var (
	// ErrUnsupportedEnvironment is returned when a snapshot lacks what a browser always provides.
	ErrUnsupportedEnvironment = errors.New("unsupported environment: browser APIs unavailable")
	// ErrUnknownSchema is returned for an unregistered schema version.
	ErrUnknownSchema = errors.New("unknown fingerprint schema")
)

// Result is a generated fingerprint with its reviewable snapshot.
type Result struct {
	Fingerprint string     `json:"fingerprint"`
	DeviceInfo  DeviceInfo `json:"deviceInfo"`
	Schema      string     `json:"schema"`
}

// DeviceInfoJSON encodes the snapshot for storage on a purchase or access entry.
func (r *Result) DeviceInfoJSON() (json.RawMessage, error) {
	raw, err := json.Marshal(r.DeviceInfo)
	if err != nil {
		return nil, errors.Wrap(err, "encode device info")
	}

	return raw, nil
}

// Generator computes fingerprints with a fixed schema.
type Generator struct {
	schema *Schema
}

// NewGenerator returns a generator for the given schema version.
func NewGenerator(version string) (*Generator, error) {
	schema, err := Lookup(version)
	if err != nil {
		return nil, errors.Wrapf(err, "schema %q", version)
	}

	return &Generator{schema: schema}, nil
}

// Schema returns the schema the generator hashes with.
func (g *Generator) Schema() *Schema {
	return g.schema
}

// Generate derives the fingerprint of env.
func (g *Generator) Generate(env *Environment) (*Result, error) {
	if err := checkEnvironment(env); err != nil {
		return nil, err
	}

	return &Result{
		Fingerprint: g.schema.Digest(env),
		DeviceInfo:  newDeviceInfo(g.schema.ID(), env),
		Schema:      g.schema.ID(),
	}, nil
}

func checkEnvironment(env *Environment) error {
	switch {
	case env == nil:
		return errors.WithMessage(ErrUnsupportedEnvironment, "no environment snapshot")
	case env.UserAgent == "":
		return errors.WithMessage(ErrUnsupportedEnvironment, "navigator.userAgent missing")
	case env.ScreenWidth <= 0 || env.ScreenHeight <= 0:
		return errors.WithMessage(ErrUnsupportedEnvironment, "screen dimensions missing")
	case env.CanvasDataURL == "":
		return errors.WithMessage(ErrUnsupportedEnvironment, "canvas rendering unavailable")
	}

	return nil
}
