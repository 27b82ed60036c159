package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/middleware"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
)

// AuthHandler exposes registration, login and the current-user lookup.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates an account and returns a token so the client is
// signed in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Register: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: username and password required")
		return
	}

	token, userID, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationFailed) {
			logrus.WithError(err).WithField("username", req.Username).Warn("Handler.Register: Registration failed (likely duplicate)")
		} else {
			logrus.WithError(err).WithField("username", req.Username).Error("Handler.Register: Internal error during registration")
		}
		HandleServiceError(c, err)
		return
	}

	logrus.WithField("user_id", userID).Info("Handler.Register: User registered successfully")
	SuccessResponse(c, http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user_id": userID,
		"token":   token,
	})
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: username and password required")
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			logrus.WithError(err).WithField("username", req.Username).Warn("Handler.Login: Authentication failed")
		} else {
			logrus.WithError(err).WithField("username", req.Username).Error("Handler.Login: Internal error during login")
		}
		HandleServiceError(c, err)
		return
	}

	logrus.WithField("username", req.Username).Info("Handler.Login: User logged in successfully")
	SuccessResponse(c, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// Me returns the display name of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	name, err := h.authService.DisplayName(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{
		"user_id":  userID,
		"username": name,
	})
}
