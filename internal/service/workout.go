package service

import (
	"context"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
)

// WorkoutInput is the mutable payload of a workout entry.
type WorkoutInput struct {
	Date     string
	Workout  string
	Duration int
}

// WorkoutService tracks workout sessions.
type WorkoutService struct {
	core *TrackerService[domain.WorkoutEntry, *domain.WorkoutEntry]
}

func NewWorkoutService(repo repository.TrackedRepository[domain.WorkoutEntry]) *WorkoutService {
	return &WorkoutService{
		core: NewTrackerService[domain.WorkoutEntry, *domain.WorkoutEntry](repo),
	}
}

// Add logs a workout and returns the refreshed active list.
func (s *WorkoutService) Add(ctx context.Context, userID uint, in WorkoutInput) ([]domain.WorkoutEntry, error) {
	rec := &domain.WorkoutEntry{Date: in.Date, Workout: in.Workout, Duration: in.Duration}
	return s.core.Add(ctx, userID, rec)
}

// Remove soft-deletes a workout and returns the refreshed active list.
func (s *WorkoutService) Remove(ctx context.Context, userID, recordID uint) ([]domain.WorkoutEntry, error) {
	return s.core.Remove(ctx, userID, recordID)
}

// List returns the user's active workouts.
func (s *WorkoutService) List(ctx context.Context, userID uint) ([]domain.WorkoutEntry, error) {
	return s.core.List(ctx, userID)
}

// Update overwrites a workout's payload and returns the refreshed active list.
func (s *WorkoutService) Update(ctx context.Context, userID, recordID uint, in WorkoutInput) ([]domain.WorkoutEntry, error) {
	return s.core.Patch(ctx, userID, recordID, map[string]interface{}{
		"date":     in.Date,
		"workout":  in.Workout,
		"duration": in.Duration,
	})
}
