package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	requestIDBytes = 8
	maxExternalLen = 64
)

// Generator creates opaque request identifiers.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	size int
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{size: requestIDBytes}
}

// NewID returns a lowercase hex string of twice the configured byte size.
func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// IsValidExternal reports whether an upstream-supplied id is safe to echo into
// headers and logs.
func IsValidExternal(v string) bool {
	if v == "" || len(v) > maxExternalLen {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
