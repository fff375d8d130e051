package contract

import (
	"context"

	"migratemate-retention-be/internal/entity"

	"github.com/google/uuid"
)

// MigrateStatusUpsert carries only the fields a given call wants to touch;
// nil pointers leave the stored value alone (partial upsert semantics).
type MigrateStatusUpsert struct {
	EmployedThroughMM *bool
	AppliedCount      *int
	ContactsCount     *int
	InterviewsCount   *int
	Improvement       *string
	RawAnswers        map[string]interface{}
}

// UserStatusUpsert mirrors MigrateStatusUpsert for the visa detail row.
type UserStatusUpsert struct {
	HasImmigrationLawyer  *bool
	FutureVisaApplyingFor *string
}

type StatusRepository interface {
	UpsertMigrateStatus(ctx context.Context, userId uuid.UUID, fields MigrateStatusUpsert) error
	GetMigrateStatus(ctx context.Context, userId uuid.UUID) (*entity.MigrateStatus, error)

	UpsertUserStatus(ctx context.Context, userId uuid.UUID, fields UserStatusUpsert) (*entity.UserStatus, error)
	GetUserStatus(ctx context.Context, userId uuid.UUID) (*entity.UserStatus, error)
}
