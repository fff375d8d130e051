package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MigrateStatus is one row per user, upserted on conflict of user_id.
type MigrateStatus struct {
	UserId            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployedThroughMM bool           `gorm:"not null;default:false"`
	AppliedCount      int            `gorm:"not null;default:0"`
	ContactsCount     int            `gorm:"not null;default:0"`
	InterviewsCount   int            `gorm:"not null;default:0"`
	Improvement       string         `gorm:"type:text"`
	RawAnswers        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (MigrateStatus) TableName() string {
	return "migrate_statuses"
}

type UserStatus struct {
	UserId                uuid.UUID `gorm:"type:uuid;primaryKey"`
	HasImmigrationLawyer  *bool
	FutureVisaApplyingFor *string   `gorm:"type:text"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (UserStatus) TableName() string {
	return "user_statuses"
}
