package repository

import "context"

// TrackedRepository is the storage contract shared by every list-shaped
// tracked category (workouts, calorie entries). Every statement an
// implementation issues must be constrained by the owning user id; reads
// must additionally exclude soft-deleted rows. That filter is the invariant
// this interface exists to centralize.
type TrackedRepository[T any] interface {
	// Insert writes a new active row. The record's owner must already be set.
	Insert(ctx context.Context, rec *T) error

	// ListActive returns every non-deleted row owned by userID.
	ListActive(ctx context.Context, userID uint) ([]T, error)

	// SoftDelete flags the row matched by (recordID, userID) as deleted.
	// It reports whether a row matched; zero matches is not an error.
	SoftDelete(ctx context.Context, userID, recordID uint) (bool, error)

	// Update overwrites the given columns on the row matched by
	// (recordID, userID). It reports whether a row matched.
	Update(ctx context.Context, userID, recordID uint, values map[string]interface{}) (bool, error)
}

// SingletonRepository is the storage contract for categories with at most
// one row per user (water tracker, calorie totals, BMR/BMI profile).
type SingletonRepository[T any] interface {
	// Find returns the user's row, or ErrNotFound.
	Find(ctx context.Context, userID uint) (*T, error)

	// Insert creates the user's row. The record's owner must already be set.
	Insert(ctx context.Context, rec *T) error

	// Update overwrites the given columns on the user's row and reports
	// whether a row matched.
	Update(ctx context.Context, userID uint, values map[string]interface{}) (bool, error)
}
