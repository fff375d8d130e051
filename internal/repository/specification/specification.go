package specification

import "gorm.io/gorm"

// Specification composes query fragments onto a GORM builder.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
