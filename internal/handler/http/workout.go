package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/middleware"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
)

// WorkoutHandler serves the workout tracker endpoints.
type WorkoutHandler struct {
	workouts *service.WorkoutService
}

func NewWorkoutHandler(workouts *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

type WorkoutRequest struct {
	Date     string `json:"date" binding:"required"`
	Workout  string `json:"workout" binding:"required"`
	Duration int    `json:"duration" binding:"required,min=1"`
}

func (h *WorkoutHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	list, err := h.workouts.List(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"list": list})
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Workout.Create: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: date, workout and duration required")
		return
	}

	list, err := h.workouts.Add(c.Request.Context(), userID, service.WorkoutInput{
		Date:     req.Date,
		Workout:  req.Workout,
		Duration: req.Duration,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"list": list})
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	recordID, err := parseRecordID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Workout.Update: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: date, workout and duration required")
		return
	}

	list, err := h.workouts.Update(c.Request.Context(), userID, recordID, service.WorkoutInput{
		Date:     req.Date,
		Workout:  req.Workout,
		Duration: req.Duration,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"list": list})
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	recordID, err := parseRecordID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	list, err := h.workouts.Remove(c.Request.Context(), userID, recordID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"list": list})
}

func parseRecordID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
