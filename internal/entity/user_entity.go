package entity

import (
	"time"

	"github.com/google/uuid"
)

// User rows are created by the signup/checkout flow. The retention flow
// only ever reads them, keyed by lowercased email.
type User struct {
	Id        uuid.UUID
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
