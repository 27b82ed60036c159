package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
)

// CalorieInput is the payload of one logged food item.
type CalorieInput struct {
	Food     string
	Calories float64
	Price    float64
	Fat      float64
	Carbs    float64
	Protein  float64
}

// TotalsInput overwrites the running aggregate row.
type TotalsInput struct {
	CalTotal     float64
	PriceTotal   float64
	CarbsTotal   float64
	ProteinTotal float64
	FatTotal     float64
}

// CalorieService tracks food entries and the per-user running totals row.
type CalorieService struct {
	entries *TrackerService[domain.CalorieEntry, *domain.CalorieEntry]
	totals  repository.SingletonRepository[domain.CalorieTotal]
}

func NewCalorieService(
	entries repository.TrackedRepository[domain.CalorieEntry],
	totals repository.SingletonRepository[domain.CalorieTotal],
) *CalorieService {
	if totals == nil {
		panic("totals repository cannot be nil for CalorieService")
	}
	return &CalorieService{
		entries: NewTrackerService[domain.CalorieEntry, *domain.CalorieEntry](entries),
		totals:  totals,
	}
}

// AddEntry logs a food item and returns the refreshed active list.
func (s *CalorieService) AddEntry(ctx context.Context, userID uint, in CalorieInput) ([]domain.CalorieEntry, error) {
	rec := &domain.CalorieEntry{
		Food:     in.Food,
		Calories: in.Calories,
		Price:    in.Price,
		Fat:      in.Fat,
		Carbs:    in.Carbs,
		Protein:  in.Protein,
	}
	return s.entries.Add(ctx, userID, rec)
}

// RemoveEntry soft-deletes a food item and returns the refreshed list.
func (s *CalorieService) RemoveEntry(ctx context.Context, userID, recordID uint) ([]domain.CalorieEntry, error) {
	return s.entries.Remove(ctx, userID, recordID)
}

// ListEntries returns the user's active food items.
func (s *CalorieService) ListEntries(ctx context.Context, userID uint) ([]domain.CalorieEntry, error) {
	return s.entries.List(ctx, userID)
}

// InitTotals creates the user's zeroed totals row if none exists yet, and
// returns the row either way. The existence check keeps the singleton a
// singleton; a blind insert would duplicate it.
func (s *CalorieService) InitTotals(ctx context.Context, userID uint) (*domain.CalorieTotal, error) {
	existing, err := s.totals.Find(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).WithField("user_id", userID).Error("CalorieService.InitTotals: find failed")
		return nil, ErrInternalServer
	}

	rec := &domain.CalorieTotal{UserID: userID}
	if err := s.totals.Insert(ctx, rec); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("CalorieService.InitTotals: insert failed")
		return nil, ErrInternalServer
	}
	return rec, nil
}

// UpdateTotals overwrites the aggregate row and returns the refreshed row.
func (s *CalorieService) UpdateTotals(ctx context.Context, userID uint, in TotalsInput) (*domain.CalorieTotal, error) {
	_, err := s.totals.Update(ctx, userID, map[string]interface{}{
		"cal_total":     in.CalTotal,
		"price_total":   in.PriceTotal,
		"carbs_total":   in.CarbsTotal,
		"protein_total": in.ProteinTotal,
		"fat_total":     in.FatTotal,
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("CalorieService.UpdateTotals: update failed")
		return nil, ErrInternalServer
	}
	return s.GetTotals(ctx, userID)
}

// GetTotals returns the user's aggregate row.
func (s *CalorieService) GetTotals(ctx context.Context, userID uint) (*domain.CalorieTotal, error) {
	rec, err := s.totals.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("CalorieService.GetTotals: find failed")
		return nil, ErrInternalServer
	}
	return rec, nil
}
