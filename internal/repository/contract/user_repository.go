package contract

import (
	"context"

	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/repository/specification"

	"github.com/google/uuid"
)

// UserRepository is read-mostly: the retention flow never creates users
// (Create exists for the seeder and tests).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Sample(ctx context.Context, limit int) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
