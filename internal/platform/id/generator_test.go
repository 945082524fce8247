package id

import (
	"encoding/hex"
	"testing"
)

func TestRandomGenerator_NewID(t *testing.T) {
	g := NewRandomGenerator()

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if len(first) != 32 {
		t.Fatalf("expected 32-char id, got %d (%q)", len(first), first)
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Fatalf("expected hex id, got %q: %v", first, err)
	}

	second, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if second == first {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}
