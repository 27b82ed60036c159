package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
)

// ProfileInput carries the full BMR/BMI calculation result.
type ProfileInput struct {
	BMR               float64
	BMI               float64
	WaterIntake       float64
	WeightGain        float64
	WeightLoss        float64
	TDEE              float64
	MacroRatio        float64
	ProteinMacroRatio float64
	FatMacroRatio     float64
	CarbsMacroRatio   float64
}

// ProfileService manages the per-user BMR/BMI profile singleton.
type ProfileService struct {
	repo repository.SingletonRepository[domain.Profile]
}

func NewProfileService(repo repository.SingletonRepository[domain.Profile]) *ProfileService {
	if repo == nil {
		panic("profile repository cannot be nil for ProfileService")
	}
	return &ProfileService{repo: repo}
}

// Save upserts the profile: the first save creates the row, later saves
// overwrite it in place. Returns the stored profile.
func (s *ProfileService) Save(ctx context.Context, userID uint, in ProfileInput) (*domain.Profile, error) {
	_, err := s.repo.Find(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		rec := &domain.Profile{
			UserID:            userID,
			BMR:               in.BMR,
			BMI:               in.BMI,
			WaterIntake:       in.WaterIntake,
			WeightGain:        in.WeightGain,
			WeightLoss:        in.WeightLoss,
			TDEE:              in.TDEE,
			MacroRatio:        in.MacroRatio,
			ProteinMacroRatio: in.ProteinMacroRatio,
			FatMacroRatio:     in.FatMacroRatio,
			CarbsMacroRatio:   in.CarbsMacroRatio,
		}
		if err := s.repo.Insert(ctx, rec); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("ProfileService.Save: insert failed")
			return nil, ErrInternalServer
		}
		return rec, nil
	case err != nil:
		logrus.WithError(err).WithField("user_id", userID).Error("ProfileService.Save: find failed")
		return nil, ErrInternalServer
	}

	_, err = s.repo.Update(ctx, userID, map[string]interface{}{
		"bmr":                 in.BMR,
		"bmi":                 in.BMI,
		"water_intake":        in.WaterIntake,
		"weight_gain":         in.WeightGain,
		"weight_loss":         in.WeightLoss,
		"tdee":                in.TDEE,
		"macro_ratio":         in.MacroRatio,
		"protein_macro_ratio": in.ProteinMacroRatio,
		"fat_macro_ratio":     in.FatMacroRatio,
		"carbs_macro_ratio":   in.CarbsMacroRatio,
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("ProfileService.Save: update failed")
		return nil, ErrInternalServer
	}
	return s.Get(ctx, userID)
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*domain.Profile, error) {
	rec, err := s.repo.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("ProfileService.Get: find failed")
		return nil, ErrInternalServer
	}
	return rec, nil
}
