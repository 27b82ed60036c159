package repository

import (
	"context"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
)

// CredentialRepository reads the stored external-API credentials.
type CredentialRepository interface {
	// FindByService returns ErrNotFound for an unknown service name.
	FindByService(ctx context.Context, service string) (*domain.APICredential, error)
}
