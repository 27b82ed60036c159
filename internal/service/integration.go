package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
)

// IntegrationService serves the stored credentials for the external
// nutrition APIs the frontend talks to (recipe search, macro calculator).
type IntegrationService struct {
	creds repository.CredentialRepository
}

func NewIntegrationService(creds repository.CredentialRepository) *IntegrationService {
	if creds == nil {
		panic("credential repository cannot be nil for IntegrationService")
	}
	return &IntegrationService{creds: creds}
}

// Credentials returns the id/key pair for a known service name.
func (s *IntegrationService) Credentials(ctx context.Context, service string) (*domain.APICredential, error) {
	cred, err := s.creds.FindByService(ctx, service)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		logrus.WithError(err).WithField("service", service).Error("IntegrationService.Credentials: find failed")
		return nil, ErrInternalServer
	}
	return cred, nil
}
