// Package service holds the business logic between the HTTP handlers and
// the repositories.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
)

// TrackerService implements the tracked-resource lifecycle (insert,
// soft-delete, list-active, update) once, for any list-shaped category.
// The category services wrap it with their concrete payload types.
//
// Every operation takes the authenticated user id as its first argument and
// never reads ownership from the payload. Mutations return the refreshed
// active list so callers update their view from the response.
type TrackerService[T any, P interface {
	*T
	domain.Owned
}] struct {
	repo repository.TrackedRepository[T]
}

// NewTrackerService creates the generic tracked-resource service for model T.
func NewTrackerService[T any, P interface {
	*T
	domain.Owned
}](repo repository.TrackedRepository[T]) *TrackerService[T, P] {
	if repo == nil {
		panic("tracked repository cannot be nil for TrackerService")
	}
	return &TrackerService[T, P]{repo: repo}
}

// Add inserts rec for userID and returns the refreshed active list.
func (s *TrackerService[T, P]) Add(ctx context.Context, userID uint, rec *T) ([]T, error) {
	P(rec).SetOwner(userID)
	if err := s.repo.Insert(ctx, rec); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("TrackerService.Add: insert failed")
		return nil, ErrInternalServer
	}
	return s.List(ctx, userID)
}

// Remove soft-deletes the record and returns the refreshed active list.
// A record id that matches nothing for this user (unknown, already deleted,
// or owned by someone else) is a no-op, not an error.
func (s *TrackerService[T, P]) Remove(ctx context.Context, userID, recordID uint) ([]T, error) {
	matched, err := s.repo.SoftDelete(ctx, userID, recordID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"user_id": userID, "record_id": recordID}).
			Error("TrackerService.Remove: soft delete failed")
		return nil, ErrInternalServer
	}
	if !matched {
		logrus.WithFields(logrus.Fields{"user_id": userID, "record_id": recordID}).
			Debug("TrackerService.Remove: no matching record")
	}
	return s.List(ctx, userID)
}

// List returns the user's active records.
func (s *TrackerService[T, P]) List(ctx context.Context, userID uint) ([]T, error) {
	list, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("TrackerService.List: list failed")
		return nil, ErrInternalServer
	}
	return list, nil
}

// Patch overwrites the given columns on the matched record and returns the
// refreshed active list. Zero matches is a no-op.
func (s *TrackerService[T, P]) Patch(ctx context.Context, userID, recordID uint, values map[string]interface{}) ([]T, error) {
	matched, err := s.repo.Update(ctx, userID, recordID, values)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"user_id": userID, "record_id": recordID}).
			Error("TrackerService.Patch: update failed")
		return nil, ErrInternalServer
	}
	if !matched {
		logrus.WithFields(logrus.Fields{"user_id": userID, "record_id": recordID}).
			Debug("TrackerService.Patch: no matching record")
	}
	return s.List(ctx, userID)
}
