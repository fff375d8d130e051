package unitofwork

import (
	"context"

	"migratemate-retention-be/internal/repository/contract"
)

// UnitOfWork scopes repositories to one logical operation. Begin/Commit wrap
// the repositories in a single DB transaction; the reason write and the
// subscription transition ride the same one so neither lands without the
// other.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubscriptionRepository() contract.SubscriptionRepository
	CancellationRepository() contract.CancellationRepository
	StatusRepository() contract.StatusRepository
}
