// Package repository defines the storage interfaces the service layer
// depends on. Concrete implementations live in subpackages (sqlite).
package repository

import (
	"context"

	"github.com/jobwise/jobwise/internal/model"
)

// UserRepository stores registered user profiles.
type UserRepository interface {
	// Create inserts a new user, assigning ID and timestamps.
	// Returns apperror.ErrConflict if the email is already taken.
	Create(ctx context.Context, user *model.User) error

	// GetByID returns apperror.ErrNotFound on a miss.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// GetByEmail returns apperror.ErrNotFound on a miss.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateSkills replaces the user's skill set wholesale (not additive)
	// and returns the updated record. apperror.ErrNotFound on a miss.
	UpdateSkills(ctx context.Context, id string, skills []string) (*model.User, error)
}

// JobRepository exposes the read-only job catalog.
//
// There are deliberately no create/update/delete methods: the catalog is
// seeded once at store construction and immutable for the process lifetime.
type JobRepository interface {
	// List returns the full catalog in seed order.
	List(ctx context.Context) ([]model.Job, error)

	// GetByID returns apperror.ErrNotFound on a miss.
	GetByID(ctx context.Context, id string) (*model.Job, error)
}
