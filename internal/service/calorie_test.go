package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository/mocks"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
)

func newCalorieService() (*service.CalorieService, *mocks.TrackedRepository[domain.CalorieEntry], *mocks.SingletonRepository[domain.CalorieTotal]) {
	entries := new(mocks.TrackedRepository[domain.CalorieEntry])
	totals := new(mocks.SingletonRepository[domain.CalorieTotal])
	return service.NewCalorieService(entries, totals), entries, totals
}

func TestCalorieService_AddEntry_SetsOwner(t *testing.T) {
	svc, entries, _ := newCalorieService()
	ctx := context.Background()

	entries.On("Insert", ctx, mock.MatchedBy(func(rec *domain.CalorieEntry) bool {
		return rec.UserID == 3 && rec.Food == "oats" && rec.Calories == 380
	})).Return(nil).Once()
	entries.On("ListActive", ctx, uint(3)).
		Return([]domain.CalorieEntry{{ID: 1, UserID: 3, Food: "oats", Calories: 380}}, nil).Once()

	list, err := svc.AddEntry(ctx, 3, service.CalorieInput{Food: "oats", Calories: 380})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "oats", list[0].Food)

	entries.AssertExpectations(t)
}

func TestCalorieService_RemoveEntry_ReturnsRefreshedList(t *testing.T) {
	svc, entries, _ := newCalorieService()
	ctx := context.Background()

	entries.On("SoftDelete", ctx, uint(3), uint(9)).Return(true, nil).Once()
	entries.On("ListActive", ctx, uint(3)).Return([]domain.CalorieEntry{}, nil).Once()

	list, err := svc.RemoveEntry(ctx, 3, 9)

	require.NoError(t, err)
	assert.Empty(t, list)

	entries.AssertExpectations(t)
}

func TestCalorieService_InitTotals_ReturnsExistingRow(t *testing.T) {
	svc, _, totals := newCalorieService()
	ctx := context.Background()

	existing := &domain.CalorieTotal{ID: 2, UserID: 3, CalTotal: 1200}
	totals.On("Find", ctx, uint(3)).Return(existing, nil).Once()

	row, err := svc.InitTotals(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, 1200.0, row.CalTotal)

	totals.AssertExpectations(t)
	totals.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCalorieService_InitTotals_CreatesZeroedRow(t *testing.T) {
	svc, _, totals := newCalorieService()
	ctx := context.Background()

	totals.On("Find", ctx, uint(3)).Return(nil, repository.ErrNotFound).Once()
	totals.On("Insert", ctx, mock.MatchedBy(func(rec *domain.CalorieTotal) bool {
		return rec.UserID == 3 && rec.CalTotal == 0 && rec.FatTotal == 0
	})).Return(nil).Once()

	row, err := svc.InitTotals(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, uint(3), row.UserID)
	assert.Zero(t, row.CalTotal)

	totals.AssertExpectations(t)
}

func TestCalorieService_UpdateTotals_OverwritesAggregate(t *testing.T) {
	svc, _, totals := newCalorieService()
	ctx := context.Background()

	totals.On("Update", ctx, uint(3), mock.MatchedBy(func(values map[string]interface{}) bool {
		return values["cal_total"] == 2100.0 && values["protein_total"] == 140.0
	})).Return(true, nil).Once()
	totals.On("Find", ctx, uint(3)).
		Return(&domain.CalorieTotal{ID: 2, UserID: 3, CalTotal: 2100, ProteinTotal: 140}, nil).Once()

	row, err := svc.UpdateTotals(ctx, 3, service.TotalsInput{CalTotal: 2100, ProteinTotal: 140})

	require.NoError(t, err)
	assert.Equal(t, 2100.0, row.CalTotal)

	totals.AssertExpectations(t)
}

func TestCalorieService_GetTotals_NotFound(t *testing.T) {
	svc, _, totals := newCalorieService()
	ctx := context.Background()

	totals.On("Find", ctx, uint(7)).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.GetTotals(ctx, 7)

	assert.ErrorIs(t, err, service.ErrRecordNotFound)
	totals.AssertExpectations(t)
}

func TestCalorieService_GetTotals_StorageError(t *testing.T) {
	svc, _, totals := newCalorieService()
	ctx := context.Background()

	totals.On("Find", ctx, uint(7)).Return(nil, errors.New("connection reset")).Once()

	_, err := svc.GetTotals(ctx, 7)

	assert.ErrorIs(t, err, service.ErrInternalServer)
	totals.AssertExpectations(t)
}
