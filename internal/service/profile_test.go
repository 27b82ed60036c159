package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository/mocks"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
)

func TestProfileService_Save_InsertsWhenAbsent(t *testing.T) {
	repo := new(mocks.SingletonRepository[domain.Profile])
	svc := service.NewProfileService(repo)
	ctx := context.Background()

	repo.On("Find", ctx, uint(1)).Return(nil, repository.ErrNotFound).Once()
	repo.On("Insert", ctx, mock.MatchedBy(func(rec *domain.Profile) bool {
		return rec.UserID == 1 && rec.BMR == 1650 && rec.BMI == 22.5
	})).Return(nil).Once()

	profile, err := svc.Save(ctx, 1, service.ProfileInput{BMR: 1650, BMI: 22.5, TDEE: 2200})

	require.NoError(t, err)
	assert.Equal(t, 1650.0, profile.BMR)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_Save_UpdatesWhenPresent(t *testing.T) {
	repo := new(mocks.SingletonRepository[domain.Profile])
	svc := service.NewProfileService(repo)
	ctx := context.Background()

	existing := &domain.Profile{ID: 4, UserID: 1, BMR: 1500}
	repo.On("Find", ctx, uint(1)).Return(existing, nil).Once()
	repo.On("Update", ctx, uint(1), mock.MatchedBy(func(values map[string]interface{}) bool {
		return values["bmr"] == 1650.0 && values["tdee"] == 2200.0
	})).Return(true, nil).Once()
	repo.On("Find", ctx, uint(1)).
		Return(&domain.Profile{ID: 4, UserID: 1, BMR: 1650, TDEE: 2200}, nil).Once()

	profile, err := svc.Save(ctx, 1, service.ProfileInput{BMR: 1650, TDEE: 2200})

	require.NoError(t, err)
	assert.Equal(t, 1650.0, profile.BMR)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	repo := new(mocks.SingletonRepository[domain.Profile])
	svc := service.NewProfileService(repo)
	ctx := context.Background()

	repo.On("Find", ctx, uint(2)).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Get(ctx, 2)

	assert.ErrorIs(t, err, service.ErrRecordNotFound)
	repo.AssertExpectations(t)
}
