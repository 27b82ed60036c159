package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/session"
)

// GormTrackedRepository is the GORM implementation of
// repository.TrackedRepository for any tracked model. Every statement it
// issues carries the user_id constraint; reads also exclude soft-deleted
// rows. Category-specific behavior lives in the services, not here.
type GormTrackedRepository[T any] struct {
	pool *gorm.DB
}

// NewGormTrackedRepository creates a tracked-record repository for model T.
func NewGormTrackedRepository[T any](db *gorm.DB) *GormTrackedRepository[T] {
	if db == nil {
		panic("database connection cannot be nil for GormTrackedRepository")
	}
	return &GormTrackedRepository[T]{pool: db}
}

func (r *GormTrackedRepository[T]) db(ctx context.Context) *gorm.DB {
	if scoped, ok := session.FromContext(ctx); ok {
		return scoped
	}
	return r.pool.WithContext(ctx)
}

func (r *GormTrackedRepository[T]) Insert(ctx context.Context, rec *T) error {
	if err := r.db(ctx).Create(rec).Error; err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: insert %T: %w", rec, err)
	}
	return nil
}

func (r *GormTrackedRepository[T]) ListActive(ctx context.Context, userID uint) ([]T, error) {
	var out []T
	err := r.db(ctx).
		Where("user_id = ? AND deleted_flag = ?", userID, false).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list active %T for user %d: %w", out, userID, err)
	}
	return out, nil
}

func (r *GormTrackedRepository[T]) SoftDelete(ctx context.Context, userID, recordID uint) (bool, error) {
	// The user_id constraint is the ownership check: a guessed record id
	// belonging to someone else matches zero rows.
	res := r.db(ctx).
		Model(new(T)).
		Where("id = ? AND user_id = ?", recordID, userID).
		Update("deleted_flag", true)
	if res.Error != nil {
		return false, fmt.Errorf("gorm: soft delete %T id %d for user %d: %w", new(T), recordID, userID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormTrackedRepository[T]) Update(ctx context.Context, userID, recordID uint, values map[string]interface{}) (bool, error) {
	res := r.db(ctx).
		Model(new(T)).
		Where("id = ? AND user_id = ?", recordID, userID).
		Updates(values)
	if res.Error != nil {
		return false, fmt.Errorf("gorm: update %T id %d for user %d: %w", new(T), recordID, userID, res.Error)
	}
	return res.RowsAffected > 0, nil
}
