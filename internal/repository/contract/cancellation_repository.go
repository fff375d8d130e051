// FILE: internal/repository/contract/cancellation_repository.go
package contract

import (
	"context"

	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/repository/specification"

	"github.com/google/uuid"
)

// CancellationRepository owns the durable cancellation records. The variant
// column is write-once: CreateIfAbsent is the only way a variant is ever
// written, and racing inserts collapse onto the unique
// (user_id, subscription_id) index.
type CancellationRepository interface {
	// CreateIfAbsent inserts the record unless one already exists for the
	// (user, subscription) pair. It returns the authoritative row either
	// way: the freshly inserted one, or the stored one after a conflict.
	CreateIfAbsent(ctx context.Context, record *entity.Cancellation) (*entity.Cancellation, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cancellation, error)
	FindLatestByUser(ctx context.Context, userId uuid.UUID) (*entity.Cancellation, error)
	FindForSubscription(ctx context.Context, userId, subscriptionId uuid.UUID) (*entity.Cancellation, error)

	// UpdateReason replaces the stored reason text for the pair.
	UpdateReason(ctx context.Context, userId, subscriptionId uuid.UUID, reason string) error

	// MarkAccepted flips accepted_downsell to true iff it is still false.
	// Returns the number of rows changed (0 means it was already accepted),
	// so acceptance can never regress and double-submits are no-ops.
	MarkAccepted(ctx context.Context, id uuid.UUID) (int64, error)
}
