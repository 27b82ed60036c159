package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/session"
)

// GormCredentialRepository is the GORM implementation of
// repository.CredentialRepository.
type GormCredentialRepository struct {
	pool *gorm.DB
}

func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	if db == nil {
		panic("database connection cannot be nil for GormCredentialRepository")
	}
	return &GormCredentialRepository{pool: db}
}

func (r *GormCredentialRepository) db(ctx context.Context) *gorm.DB {
	if scoped, ok := session.FromContext(ctx); ok {
		return scoped
	}
	return r.pool.WithContext(ctx)
}

func (r *GormCredentialRepository) FindByService(ctx context.Context, service string) (*domain.APICredential, error) {
	var cred domain.APICredential
	err := r.db(ctx).Where("service = ?", service).First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find credential for service %q: %w", service, err)
	}
	return &cred, nil
}
