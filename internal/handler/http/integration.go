package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
)

// IntegrationHandler hands out credentials for the external nutrition APIs.
type IntegrationHandler struct {
	integrations *service.IntegrationService
}

func NewIntegrationHandler(integrations *service.IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{integrations: integrations}
}

// Credentials returns the id/key pair for a known service name. Unknown
// names are rejected before touching storage.
func (h *IntegrationHandler) Credentials(c *gin.Context) {
	name := c.Param("service")
	if name != domain.ServiceRecipe && name != domain.ServiceMacroCalculator {
		ErrorResponse(c, http.StatusNotFound, "Unknown integration")
		return
	}

	cred, err := h.integrations.Credentials(c.Request.Context(), name)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{
		"service": cred.Service,
		"api_id":  cred.APIID,
		"api_key": cred.APIKey,
	})
}
