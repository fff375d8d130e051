// FILE: internal/model/cancellation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Cancellation GORM model for the durable cancellation record. The composite
// unique index backs the insert-if-absent semantics of the variant assigner:
// two racing first calls resolve to a single row.
type Cancellation struct {
	Id               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cancellations_user_sub,priority:1"`
	SubscriptionId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cancellations_user_sub,priority:2"`
	DownsellVariant  string    `gorm:"type:varchar(1);not null"` // A or B, immutable once written
	AcceptedDownsell bool      `gorm:"not null;default:false"`
	Reason           string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`

	// Relations
	User         User         `gorm:"foreignKey:UserId"`
	Subscription Subscription `gorm:"foreignKey:SubscriptionId"`
}

func (Cancellation) TableName() string {
	return "cancellations"
}
