package specification

import (
	"strings"

	"migratemate-retention-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(s.Email)))
}

type BySubscriptionID struct {
	SubscriptionID uuid.UUID
}

func (s BySubscriptionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscription_id = ?", s.SubscriptionID)
}

type ByStatusIn struct {
	Statuses []entity.SubscriptionStatus
}

func (s ByStatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// OperativeOrder ranks subscriptions so the first row is the operative one:
// most recently updated, then most recently created, then id as a stable
// tiebreak so repeated reads agree under no intervening writes.
type OperativeOrder struct{}

func (s OperativeOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC").Order("created_at DESC").Order("id DESC")
}
