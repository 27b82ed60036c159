package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/middleware"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
)

// ProfileHandler serves the BMR/BMI profile singleton.
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type ProfileRequest struct {
	BMR               float64 `json:"bmr" binding:"required,min=0"`
	BMI               float64 `json:"bmi" binding:"required,min=0"`
	WaterIntake       float64 `json:"water_intake" binding:"min=0"`
	WeightGain        float64 `json:"weight_gain" binding:"min=0"`
	WeightLoss        float64 `json:"weight_loss" binding:"min=0"`
	TDEE              float64 `json:"tdee" binding:"min=0"`
	MacroRatio        float64 `json:"macro_ratio" binding:"min=0"`
	ProteinMacroRatio float64 `json:"protein_macro_ratio" binding:"min=0"`
	FatMacroRatio     float64 `json:"fat_macro_ratio" binding:"min=0"`
	CarbsMacroRatio   float64 `json:"carbs_macro_ratio" binding:"min=0"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, profile)
}

// Save upserts the full calculation result in one call.
func (h *ProfileHandler) Save(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Profile.Save: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: bmr and bmi required")
		return
	}

	profile, err := h.profiles.Save(c.Request.Context(), userID, service.ProfileInput{
		BMR:               req.BMR,
		BMI:               req.BMI,
		WaterIntake:       req.WaterIntake,
		WeightGain:        req.WeightGain,
		WeightLoss:        req.WeightLoss,
		TDEE:              req.TDEE,
		MacroRatio:        req.MacroRatio,
		ProteinMacroRatio: req.ProteinMacroRatio,
		FatMacroRatio:     req.FatMacroRatio,
		CarbsMacroRatio:   req.CarbsMacroRatio,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, profile)
}
