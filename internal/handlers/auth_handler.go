package handlers

import (
	"net/http"

	"techcare/internal/config"
	"techcare/internal/services"
	"techcare/internal/utils"
	"techcare/internal/validators"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	security    *config.SecurityConfig
}

func NewAuthHandler(authService services.AuthService, security *config.SecurityConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		security:    security,
	}
}

// Login issues the access token cookie for the given email. The frontend
// calls this right after its own social sign-in completes.
func (h *AuthHandler) Login(c *gin.Context) {
	req := validators.LoginRequest{Email: c.Query("email")}
	if errs := validators.ValidateLogin(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	token, err := h.authService.Login(req.Email)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	maxAge := 0
	if h.security.JWTAccessTokenTTL > 0 {
		maxAge = int(h.security.JWTAccessTokenTTL.Seconds())
	}

	// SameSite=None is required for the credentialed cross-origin
	// frontend; that in turn requires Secure.
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(utils.AccessTokenCookie, token, maxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully"})
}

// Logout clears the access token cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(utils.AccessTokenCookie, "", -1, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
