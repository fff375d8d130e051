package contract

import (
	"context"

	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/repository/specification"

	"github.com/google/uuid"
)

// SubscriptionRepository owns the subscription rows. Status changes go
// through UpdateStatus so the status and updated_at always move together.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.UserSubscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSubscription, error)

	// FindOperative returns the user's current subscription for cancellation
	// purposes: most recently updated among active/pending_cancellation,
	// created_at then id as tiebreaks. Nil when the user has none.
	FindOperative(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error)

	// FindLatest is FindOperative without the status filter, used by the
	// profile endpoint which also reports cancelled subscriptions.
	FindLatest(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error)

	// UpdateStatus sets status and bumps updated_at in a single statement,
	// conditional on the row not being cancelled: cancelled is terminal and
	// a stale read must not revive it. Returns the number of rows changed;
	// 0 means the subscription was already cancelled (or gone). Writing the
	// current status again matches and counts as success.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) (int64, error)
}
