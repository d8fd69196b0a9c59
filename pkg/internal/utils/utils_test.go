package utils_test

import (
	"encoding/hex"
	"testing"

	"github.com/algoscope/algoscope/pkg/internal/utils"
)

func TestGenerateUniqueHash(t *testing.T) {
	first := utils.GenerateUniqueHash()
	second := utils.GenerateUniqueHash()

	if len(first) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(first))
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Fatalf("expected hex output, got %q: %v", first, err)
	}
	if first == second {
		t.Fatalf("expected unique hashes, got identical values")
	}
}
