package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internmatch/backend/auth"
	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/storage"
)

// AdminHandler handles admin login and catalog management
type AdminHandler struct {
	authenticator *auth.AdminAuthenticator
	jwtService    *auth.JWTService
	catalog       *storage.Catalog
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authenticator *auth.AdminAuthenticator, jwtService *auth.JWTService, catalog *storage.Catalog) *AdminHandler {
	return &AdminHandler{
		authenticator: authenticator,
		jwtService:    jwtService,
		catalog:       catalog,
	}
}

// Login handles admin login
// @Summary Admin login
// @Description Exchange the admin username and password for a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 503 {object} models.ErrorResponse "Admin login disabled"
// @Router /auth/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	username, err := h.authenticator.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrLoginDisabled) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Admin login is disabled",
				Code:  http.StatusServiceUnavailable,
			})
			return
		}
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid username or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(username, auth.RoleAdmin)
	if err != nil {
		log.Printf("[AdminHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AdminHandler] Admin logged in: %s", username)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// ReloadCatalog reloads the internship catalog from its source
// @Summary Reload catalog
// @Description Reload the internship catalog from the configured source and swap the snapshot atomically. The previous snapshot stays active on failure.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ReloadResponse "Catalog reloaded"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 502 {object} models.ErrorResponse "Catalog source failed"
// @Router /admin/catalog/reload [post]
func (h *AdminHandler) ReloadCatalog(c *gin.Context) {
	snapshot, err := h.catalog.Reload(c.Request.Context())
	if err != nil {
		log.Printf("[AdminHandler] Catalog reload failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "Failed to reload catalog",
			Code:    http.StatusBadGateway,
			Details: err.Error(),
		})
		return
	}

	if claims := auth.GetAuthClaims(c); claims != nil {
		log.Printf("[AdminHandler] Catalog reloaded by %s: %d internships", claims.Username, snapshot.Len())
	}
	c.JSON(http.StatusOK, models.ReloadResponse{
		Source:   snapshot.Source(),
		Count:    snapshot.Len(),
		LoadedAt: snapshot.LoadedAt(),
	})
}
