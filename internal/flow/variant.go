package flow

import (
	"crypto/sha256"
	"encoding/hex"

	"migratemate-retention-be/internal/entity"

	"github.com/google/uuid"
)

// VariantForUser computes the deterministic 50/50 experiment arm from the
// user's stable id: SHA-256 of the id string, last hex nibble mod 2. The
// intended arm is knowable from the id alone, before any row exists, and is
// stable across sessions and processes. Once a Cancellation row is written
// its stored variant is authoritative; this function must never be used to
// overwrite it.
func VariantForUser(userId uuid.UUID) entity.DownsellVariant {
	sum := sha256.Sum256([]byte(userId.String()))
	h := hex.EncodeToString(sum[:])
	nibble := h[len(h)-1]

	var v int
	switch {
	case nibble >= '0' && nibble <= '9':
		v = int(nibble - '0')
	default:
		v = int(nibble-'a') + 10
	}

	if v%2 == 0 {
		return entity.VariantA
	}
	return entity.VariantB
}
