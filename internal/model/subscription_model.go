package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       string    `gorm:"type:varchar(50);not null;default:'active';index"` // active, pending_cancellation, cancelled
	MonthlyPrice int       `gorm:"not null"`                                         // cents
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	// Relations
	User User `gorm:"foreignKey:UserId"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
