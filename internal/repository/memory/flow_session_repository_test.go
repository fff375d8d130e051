package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"migratemate-retention-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestFlowSessionRoundTrip(t *testing.T) {
	repo := NewFlowSessionRepository(time.Hour)
	ctx := context.Background()

	_, found, err := repo.Get(ctx, "missing@example.com")
	assert.NoError(t, err)
	assert.False(t, found)

	jobFound := false
	session := &store.FlowSession{
		Email:    "user@example.com",
		JobFound: &jobFound,
	}
	assert.NoError(t, repo.Save(ctx, session))

	got, found, err := repo.Get(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, session, got)

	assert.NoError(t, repo.Delete(ctx, "user@example.com"))
	_, found, _ = repo.Get(ctx, "user@example.com")
	assert.False(t, found)
}

func TestFlowSessionCopiesIsolateCallers(t *testing.T) {
	repo := NewFlowSessionRepository(time.Hour)
	ctx := context.Background()

	session := &store.FlowSession{Email: "user@example.com"}
	assert.NoError(t, repo.Save(ctx, session))

	// Mutating the caller's struct after Save must not reach the store.
	session.SurveyDone = true
	got, found, err := repo.Get(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.False(t, got.SurveyDone)

	// Mutating one Get result must not leak into another reader's copy.
	got.ReasonDone = true
	again, _, err := repo.Get(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.False(t, again.ReasonDone)
}

func TestFlowSessionConcurrentWriters(t *testing.T) {
	repo := NewFlowSessionRepository(time.Hour)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, &store.FlowSession{Email: "user@example.com"}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session, _, err := repo.Get(ctx, "user@example.com")
			assert.NoError(t, err)
			session.SurveyDone = i%2 == 0
			session.ReasonDone = i%2 == 1
			assert.NoError(t, repo.Save(ctx, session))
		}(i)
	}
	wg.Wait()

	got, found, err := repo.Get(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.NotNil(t, got)
}
