// Package id generates the opaque public identifiers stored in the
// public_id columns and exposed through the API.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates IDs for new records, catalog entries and audit entries.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces 32-char lowercase hex IDs from crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
