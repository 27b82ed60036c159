package repository

import "context"

// NameCache caches user display names keyed by user id. A miss returns
// ErrNotFound; cache failures are never fatal to the caller.
type NameCache interface {
	GetUsername(ctx context.Context, userID uint) (string, error)
	SetUsername(ctx context.Context, userID uint, username string) error
}
