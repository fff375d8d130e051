package flow

import (
	"testing"

	"migratemate-retention-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVariantForUserIsDeterministic(t *testing.T) {
	ids := []uuid.UUID{
		uuid.MustParse("6c9d0f1e-2a3b-4c5d-8e7f-901234567890"),
		uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		uuid.New(),
		uuid.New(),
	}

	for _, id := range ids {
		first := VariantForUser(id)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, VariantForUser(id), "variant must be stable for id %s", id)
		}
		assert.True(t, first.Valid())
	}
}

func TestVariantForUserCoversBothArms(t *testing.T) {
	// Not a distribution test, just proof that the hash actually splits.
	seen := map[entity.DownsellVariant]int{}
	for i := 0; i < 200; i++ {
		seen[VariantForUser(uuid.New())]++
	}

	assert.Greater(t, seen[entity.VariantA], 0, "arm A never assigned in 200 draws")
	assert.Greater(t, seen[entity.VariantB], 0, "arm B never assigned in 200 draws")
}
