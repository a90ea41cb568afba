package uuidv9

import (
	"fmt"
	"strings"
	"time"
)

const (
	bodyLength   = 32
	maxPrefixLen = 8

	// markerOffset is the body index of the version digit.
	markerOffset = 12

	legacyMarkerLength  = 2
	versionMarkerLength = 1

	versionDigit = '9'
	variantChars = "89ab"
)

// Config describes the identifier to generate. The zero value yields a random
// identifier whose leading digits encode the current time.
type Config struct {
	// Prefix holds up to 8 hex digits copied (lowercased) to the start of the identifier.
	Prefix string
	// Timestamp selects the time component; see TimestampNow, NoTimestamp and TimestampAt.
	Timestamp Timestamp
	// Checksum appends a CRC-8 of the body as the last two digits.
	Checksum bool
	// Version inserts the '9' version digit.
	Version bool
	// Legacy marks the identifier as v1 (timestamp enabled) or v4 (timestamp disabled)
	// with an RFC 4122 variant digit. It takes precedence over Version.
	Legacy bool
}

// Generator assembles identifiers from a Config. It keeps no state between calls and is
// safe for concurrent use when its RandomSource is.
type Generator struct {
	rand    RandomSource
	now     func() time.Time
	resolve TimeResolver
}

// GeneratorOption customises a Generator.
type GeneratorOption func(*Generator)

// WithRandomSource sets the source of the random filler digits.
func WithRandomSource(src RandomSource) GeneratorOption {
	return func(g *Generator) {
		g.rand = src
	}
}

// WithClock sets the clock used for TimestampNow.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// WithTimeResolver sets the function that resolves TimestampAt values.
func WithTimeResolver(resolve TimeResolver) GeneratorOption {
	return func(g *Generator) {
		g.resolve = resolve
	}
}

// NewGenerator creates a generator with crypto/rand as the random source,
// time.Now as the clock and ResolveTime as the time resolver.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rand:    defaultSource,
		now:     time.Now,
		resolve: ResolveTime,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds an identifier from cfg. It fails with ErrInvalidPrefix before
// producing anything when the prefix is too long or not hexadecimal.
func (g *Generator) Generate(cfg Config) (string, error) {
	prefix := strings.ToLower(cfg.Prefix)
	if prefix != "" {
		if err := validatePrefix(prefix); err != nil {
			return "", err
		}
	}

	center, err := g.timestampHex(cfg.Timestamp)
	if err != nil {
		return "", err
	}

	filler := bodyLength - len(prefix) - len(center)
	if cfg.Checksum {
		filler -= checksumLength
	}
	switch {
	case cfg.Legacy:
		filler -= legacyMarkerLength
	case cfg.Version:
		filler -= versionMarkerLength
	}

	suffix, err := g.rand.RandomHex(filler)
	if err != nil {
		return "", err
	}
	body := prefix + center + suffix

	switch {
	case cfg.Legacy:
		version := "4"
		if cfg.Timestamp.Enabled() {
			version = "1"
		}
		variant, err := g.variant()
		if err != nil {
			return "", err
		}
		body = substr(body, 0, markerOffset) + version + substr(body, markerOffset, 3) + variant + substr(body, markerOffset+3, -1)
	case cfg.Version:
		body = substr(body, 0, markerOffset) + string(versionDigit) + substr(body, markerOffset, -1)
	}

	if cfg.Checksum {
		crc, err := Checksum(body)
		if err != nil {
			return "", err
		}
		body += crc
	}

	return addDashes(body), nil
}

// variant picks one of the RFC 4122 variant digits.
func (g *Generator) variant() (string, error) {
	d, err := g.rand.RandomHex(1)
	if err != nil {
		return "", err
	}
	if len(d) != 1 {
		return "", fmt.Errorf("uuidv9: random source returned %d digits, want 1", len(d))
	}
	i := strings.IndexByte(hexDigits, d[0])
	if i < 0 {
		return "", fmt.Errorf("uuidv9: random source returned non-hex digit %q", d)
	}
	return variantChars[i&0x03 : i&0x03+1], nil
}

func validatePrefix(prefix string) error {
	if len(prefix) > maxPrefixLen {
		return fmt.Errorf("%w: must be no more than %d characters", ErrInvalidPrefix, maxPrefixLen)
	}
	if !isHex(prefix) {
		return fmt.Errorf("%w: must be only hexadecimal characters", ErrInvalidPrefix)
	}
	return nil
}

// substr returns up to n bytes of s starting at start, or the rest of s when n is
// negative. Out-of-range bounds are clamped, so short bodies slice positionally.
func substr(s string, start, n int) string {
	if start >= len(s) {
		return ""
	}
	end := start + n
	if n < 0 || end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

func addDashes(body string) string {
	return substr(body, 0, 8) + "-" +
		substr(body, 8, 4) + "-" +
		substr(body, 12, 4) + "-" +
		substr(body, 16, 4) + "-" +
		substr(body, 20, -1)
}

// Must is a helper that wraps a call to a function returning (string, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuidv9.Must(uuidv9.Generate(uuidv9.Config{Prefix: "a1b2c3d4"}))
func Must(id string, err error) string {
	if err != nil {
		panic(err)
	}
	return id
}

// defaultGenerator is the package-level generator used by Generate and New
var defaultGenerator = NewGenerator()

// Generate builds an identifier from cfg using the default generator.
func Generate(cfg Config) (string, error) {
	return defaultGenerator.Generate(cfg)
}

// New generates a time-prefixed identifier with no prefix, checksum or marker.
func New() (string, error) {
	return defaultGenerator.Generate(Config{})
}
