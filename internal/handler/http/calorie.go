package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/middleware"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
)

// CalorieHandler serves the calorie tracker and its running-totals row.
type CalorieHandler struct {
	calories *service.CalorieService
}

func NewCalorieHandler(calories *service.CalorieService) *CalorieHandler {
	return &CalorieHandler{calories: calories}
}

// Calories skips the required tag so a zero-calorie entry binds; gin's
// required check rejects a float64 zero.
type CalorieRequest struct {
	Food     string  `json:"food" binding:"required"`
	Calories float64 `json:"calories" binding:"min=0"`
	Price    float64 `json:"price" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
}

type TotalsRequest struct {
	CalTotal     float64 `json:"cal_total" binding:"min=0"`
	PriceTotal   float64 `json:"price_total" binding:"min=0"`
	CarbsTotal   float64 `json:"carbs_total" binding:"min=0"`
	ProteinTotal float64 `json:"protein_total" binding:"min=0"`
	FatTotal     float64 `json:"fat_total" binding:"min=0"`
}

func (h *CalorieHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	list, err := h.calories.ListEntries(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"list": list})
}

func (h *CalorieHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CalorieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Calorie.Create: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: food required, nutrition values must be non-negative")
		return
	}

	list, err := h.calories.AddEntry(c.Request.Context(), userID, service.CalorieInput{
		Food:     req.Food,
		Calories: req.Calories,
		Price:    req.Price,
		Fat:      req.Fat,
		Carbs:    req.Carbs,
		Protein:  req.Protein,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"list": list})
}

func (h *CalorieHandler) Delete(c *gin.Context) {
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

	list, err := h.calories.RemoveEntry(c.Request.Context(), userID, recordID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"list": list})
}

// Totals returns the aggregate row, creating the zeroed row on first use.
func (h *CalorieHandler) Totals(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	totals, err := h.calories.InitTotals(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, totals)
}

func (h *CalorieHandler) UpdateTotals(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req TotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Calorie.UpdateTotals: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid totals payload")
		return
	}

	totals, err := h.calories.UpdateTotals(c.Request.Context(), userID, service.TotalsInput{
		CalTotal:     req.CalTotal,
		PriceTotal:   req.PriceTotal,
		CarbsTotal:   req.CarbsTotal,
		ProteinTotal: req.ProteinTotal,
		FatTotal:     req.FatTotal,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, totals)
}
