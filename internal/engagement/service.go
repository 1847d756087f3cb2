// Package engagement implements the sales-feed engagement core: the
// view/share counter engine, the idempotent like toggle, and the
// publish-to-feed workflow.
package engagement

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrUserRequired is returned when an operation needs an acting user
	ErrUserRequired = errors.New("engagement: user id is required")
	// ErrPostRequired is returned when an operation needs a feed post id
	ErrPostRequired = errors.New("engagement: post id is required")
	// ErrProductNotPersisted is returned when publishing a product that
	// has no identifier yet
	ErrProductNotPersisted = errors.New("engagement: product must be persisted before publishing")
)

// Service runs engagement operations against the feed store
type Service struct {
	db *gorm.DB
}

// NewService creates an engagement service on top of db
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}
