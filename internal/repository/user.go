// Package repository defines the storage interfaces the services depend on.
package repository

import (
	"context"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
)

// UserRepository stores and retrieves user accounts.
type UserRepository interface {
	// FindByUsername returns ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByID returns ErrUserNotFound when no account matches.
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// Save creates the user (or updates it when ID is already set) and
	// returns ErrDuplicateEntry on a username collision.
	Save(ctx context.Context, user *domain.User) error
}
