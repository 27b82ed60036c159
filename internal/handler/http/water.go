package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/middleware"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
)

// WaterHandler serves the daily water tracker endpoints.
type WaterHandler struct {
	water *service.WaterService
}

func NewWaterHandler(water *service.WaterService) *WaterHandler {
	return &WaterHandler{water: water}
}

// Zero is a legal value for both fields, so neither carries the required
// tag: gin's required check rejects a float64 zero.
type WaterTargetRequest struct {
	Target float64 `json:"target" binding:"min=0"`
}

type WaterConsumedRequest struct {
	Consumed float64 `json:"consumed" binding:"min=0"`
}

// Get lazily creates the zeroed tracker row on first read.
func (h *WaterHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	tracker, err := h.water.Ensure(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, tracker)
}

func (h *WaterHandler) SetTarget(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req WaterTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Water.SetTarget: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: target must be a non-negative number")
		return
	}

	tracker, err := h.water.SetTarget(c.Request.Context(), userID, req.Target)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, tracker)
}

// AddConsumed adds the posted amount to the stored total.
func (h *WaterHandler) AddConsumed(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req WaterConsumedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Water.AddConsumed: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: consumed must be a non-negative number")
		return
	}

	tracker, err := h.water.AddConsumed(c.Request.Context(), userID, req.Consumed)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, tracker)
}

// Restart zeroes both the target and the consumed total.
func (h *WaterHandler) Restart(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	tracker, err := h.water.Restart(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, tracker)
}
