// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
)

// UserRepository mocks repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// TrackedRepository mocks repository.TrackedRepository[T].
type TrackedRepository[T any] struct {
	mock.Mock
}

func (m *TrackedRepository[T]) Insert(ctx context.Context, rec *T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *TrackedRepository[T]) ListActive(ctx context.Context, userID uint) ([]T, error) {
	args := m.Called(ctx, userID)
	var out []T
	if v := args.Get(0); v != nil {
		out = v.([]T)
	}
	return out, args.Error(1)
}

func (m *TrackedRepository[T]) SoftDelete(ctx context.Context, userID, recordID uint) (bool, error) {
	args := m.Called(ctx, userID, recordID)
	return args.Bool(0), args.Error(1)
}

func (m *TrackedRepository[T]) Update(ctx context.Context, userID, recordID uint, values map[string]interface{}) (bool, error) {
	args := m.Called(ctx, userID, recordID, values)
	return args.Bool(0), args.Error(1)
}

// SingletonRepository mocks repository.SingletonRepository[T].
type SingletonRepository[T any] struct {
	mock.Mock
}

func (m *SingletonRepository[T]) Find(ctx context.Context, userID uint) (*T, error) {
	args := m.Called(ctx, userID)
	var rec *T
	if v := args.Get(0); v != nil {
		rec = v.(*T)
	}
	return rec, args.Error(1)
}

func (m *SingletonRepository[T]) Insert(ctx context.Context, rec *T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *SingletonRepository[T]) Update(ctx context.Context, userID uint, values map[string]interface{}) (bool, error) {
	args := m.Called(ctx, userID, values)
	return args.Bool(0), args.Error(1)
}

// CredentialRepository mocks repository.CredentialRepository.
type CredentialRepository struct {
	mock.Mock
}

func (m *CredentialRepository) FindByService(ctx context.Context, service string) (*domain.APICredential, error) {
	args := m.Called(ctx, service)
	var cred *domain.APICredential
	if v := args.Get(0); v != nil {
		cred = v.(*domain.APICredential)
	}
	return cred, args.Error(1)
}

// NameCache mocks repository.NameCache.
type NameCache struct {
	mock.Mock
}

func (m *NameCache) GetUsername(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *NameCache) SetUsername(ctx context.Context, userID uint, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}
