package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestCombineReason(t *testing.T) {
	assert.Equal(t, "Too expensive", combineReason("Too expensive", ""))
	assert.Equal(t, "Too expensive: found a cheaper tool", combineReason("Too expensive", "found a cheaper tool"))
	assert.Equal(t, "Other", combineReason("  Other  ", "   "))
}

func TestCombineReasonTruncatesAt2000Runes(t *testing.T) {
	details := strings.Repeat("x", 3000)
	combined := combineReason("Other", details)

	assert.Equal(t, maxReasonLen, len([]rune(combined)))
	assert.True(t, strings.HasPrefix(combined, "Other: "))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", normalizeEmail("  User@Example.COM "))
}

func TestUpdateSessionConcurrentRequests(t *testing.T) {
	svc := NewCancellationService(nil, memory.NewFlowSessionRepository(time.Hour), nil, nil, nil)
	ctx := context.Background()

	// Doubled-up PUTs from an impatient client must not corrupt the session.
	surveyDone := true
	declined := true
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := &dto.UpdateFlowSessionRequest{Email: "user@example.com"}
			if i%2 == 0 {
				req.SurveyDone = &surveyDone
			} else {
				req.DownsellDeclined = &declined
			}
			assert.NoError(t, svc.UpdateSession(ctx, req))
		}(i)
	}
	wg.Wait()
}
