package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/session"
)

// GormSingletonRepository is the GORM implementation of
// repository.SingletonRepository for the one-row-per-user models (water
// tracker, calorie totals, profile).
type GormSingletonRepository[T any] struct {
	pool *gorm.DB
}

// NewGormSingletonRepository creates a singleton-record repository for model T.
func NewGormSingletonRepository[T any](db *gorm.DB) *GormSingletonRepository[T] {
	if db == nil {
		panic("database connection cannot be nil for GormSingletonRepository")
	}
	return &GormSingletonRepository[T]{pool: db}
}

func (r *GormSingletonRepository[T]) db(ctx context.Context) *gorm.DB {
	if scoped, ok := session.FromContext(ctx); ok {
		return scoped
	}
	return r.pool.WithContext(ctx)
}

func (r *GormSingletonRepository[T]) Find(ctx context.Context, userID uint) (*T, error) {
	var rec T
	err := r.db(ctx).Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find %T for user %d: %w", rec, userID, err)
	}
	return &rec, nil
}

func (r *GormSingletonRepository[T]) Insert(ctx context.Context, rec *T) error {
	if err := r.db(ctx).Create(rec).Error; err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: insert %T: %w", rec, err)
	}
	return nil
}

func (r *GormSingletonRepository[T]) Update(ctx context.Context, userID uint, values map[string]interface{}) (bool, error) {
	res := r.db(ctx).
		Model(new(T)).
		Where("user_id = ?", userID).
		Updates(values)
	if res.Error != nil {
		return false, fmt.Errorf("gorm: update %T for user %d: %w", new(T), userID, res.Error)
	}
	return res.RowsAffected > 0, nil
}
