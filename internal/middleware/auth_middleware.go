package middleware

import (
	"techcare/internal/services"
	"techcare/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the access token cookie and puts the caller's
// email on the request context. Any missing or invalid token gets the same
// generic forbidden response.
func AuthRequired(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.AccessTokenCookie)
		if err != nil || token == "" {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		email, err := authService.Verify(token)
		if err != nil {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Set("user_email", email)

		c.Next()
	}
}
