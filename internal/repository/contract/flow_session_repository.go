package contract

import (
	"context"

	"migratemate-retention-be/pkg/store"
)

// FlowSessionRepository is the ephemeral store for wizard hints. Losing a
// session is harmless: the router falls back to asking the job-status
// question again, and durable truth is never kept here.
type FlowSessionRepository interface {
	Save(ctx context.Context, session *store.FlowSession) error
	Get(ctx context.Context, email string) (*store.FlowSession, bool, error)
	Delete(ctx context.Context, email string) error
}
