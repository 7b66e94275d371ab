package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"
	"strings"
)

// Field is one contributing value of a snapshot.
type Field struct {
	Name  string
	Value func(env *Environment) string
}

// Schema fixes the field list, their order and the digest algorithm.
// Changing any of them invalidates stored fingerprints, so changes ship as a new Version.
type Schema struct {
	Version   string
	Algorithm string
	Fields    []Field
	newHash   func() hash.Hash
}

// ID identifies the schema as version/algorithm, e.g. "v1/sha256".
func (s *Schema) ID() string {
	return s.Version + "/" + s.Algorithm
}

// FieldNames lists the contributing fields in digest order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// Canonical renders the pipe-joined input of the digest.
func (s *Schema) Canonical(env *Environment) string {
	values := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		values[i] = f.Value(env)
	}

	return strings.Join(values, "|")
}

// Digest hashes the canonical form and hex encodes it.
func (s *Schema) Digest(env *Environment) string {
	h := s.newHash()
	h.Write([]byte(s.Canonical(env)))

	return hex.EncodeToString(h.Sum(nil))
}

// V1 is the first schema, compatible with fingerprints already stored on purchases.
var V1 = &Schema{
	Version:   "v1",
	Algorithm: "sha256",
	newHash:   sha256.New,
	Fields: []Field{
		{Name: "userAgent", Value: func(e *Environment) string { return e.UserAgent }},
		{Name: "language", Value: func(e *Environment) string { return e.Language }},
		{Name: "platform", Value: func(e *Environment) string { return e.Platform }},
		{Name: "screenResolution", Value: func(e *Environment) string { return e.ScreenResolution() }},
		{Name: "timezone", Value: func(e *Environment) string { return e.Timezone }},
		{Name: "colorDepth", Value: func(e *Environment) string { return strconv.Itoa(e.ColorDepth) }},
		{Name: "hardwareConcurrency", Value: func(e *Environment) string { return strconv.Itoa(e.HardwareConcurrency) }},
		{Name: "deviceMemory", Value: func(e *Environment) string { return e.deviceMemory() }},
		{Name: "cookieEnabled", Value: func(e *Environment) string { return strconv.FormatBool(e.CookieEnabled) }},
		{Name: "doNotTrack", Value: func(e *Environment) string { return e.doNotTrack() }},
		{Name: "canvas", Value: func(e *Environment) string { return e.CanvasDataURL }},
	},
}

var schemas = map[string]*Schema{
	V1.Version: V1,
}

// DefaultVersion is used when no version is configured.
const DefaultVersion = "v1"

// Lookup returns the registered schema for version.
func Lookup(version string) (*Schema, error) {
	if version == "" {
		version = DefaultVersion
	}

	s, ok := schemas[version]
	if !ok {
		return nil, ErrUnknownSchema
	}

	return s, nil
}
