package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
)

// WaterService tracks the per-user water target and consumption singleton.
//
// AddConsumed is a read-then-write: two overlapping updates for the same
// user can lose one delta. Matching the original behavior, this race is
// accepted; switching the repository call to an atomic
// "consumed = consumed + ?" increment would close it if it ever matters.
type WaterService struct {
	repo repository.SingletonRepository[domain.WaterTracker]
}

func NewWaterService(repo repository.SingletonRepository[domain.WaterTracker]) *WaterService {
	if repo == nil {
		panic("water repository cannot be nil for WaterService")
	}
	return &WaterService{repo: repo}
}

// Ensure returns the user's tracker, creating the zeroed row on first use.
func (s *WaterService) Ensure(ctx context.Context, userID uint) (*domain.WaterTracker, error) {
	existing, err := s.repo.Find(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).WithField("user_id", userID).Error("WaterService.Ensure: find failed")
		return nil, ErrInternalServer
	}

	rec := &domain.WaterTracker{UserID: userID}
	if err := s.repo.Insert(ctx, rec); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("WaterService.Ensure: insert failed")
		return nil, ErrInternalServer
	}
	return rec, nil
}

// Get returns the user's tracker.
func (s *WaterService) Get(ctx context.Context, userID uint) (*domain.WaterTracker, error) {
	rec, err := s.repo.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("WaterService.Get: find failed")
		return nil, ErrInternalServer
	}
	return rec, nil
}

// SetTarget overwrites the daily target and returns the refreshed tracker.
// A user without a tracker row gets the zeroed row back; zero rows matched
// is a no-op, not an error.
func (s *WaterService) SetTarget(ctx context.Context, userID uint, target float64) (*domain.WaterTracker, error) {
	matched, err := s.repo.Update(ctx, userID, map[string]interface{}{"target": target})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("WaterService.SetTarget: update failed")
		return nil, ErrInternalServer
	}
	if !matched {
		return s.Ensure(ctx, userID)
	}
	return s.Get(ctx, userID)
}

// AddConsumed adds delta to the stored consumed value (accumulate, not
// overwrite) and returns the refreshed tracker.
func (s *WaterService) AddConsumed(ctx context.Context, userID uint, delta float64) (*domain.WaterTracker, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := current.Consumed + delta
	if _, err := s.repo.Update(ctx, userID, map[string]interface{}{"consumed": total}); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("WaterService.AddConsumed: update failed")
		return nil, ErrInternalServer
	}
	return s.Get(ctx, userID)
}

// Restart resets both target and consumed to zero and returns the tracker.
// A user without a tracker row gets the zeroed row back.
func (s *WaterService) Restart(ctx context.Context, userID uint) (*domain.WaterTracker, error) {
	matched, err := s.repo.Update(ctx, userID, map[string]interface{}{"target": 0.0, "consumed": 0.0})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("WaterService.Restart: update failed")
		return nil, ErrInternalServer
	}
	if !matched {
		return s.Ensure(ctx, userID)
	}
	return s.Get(ctx, userID)
}
