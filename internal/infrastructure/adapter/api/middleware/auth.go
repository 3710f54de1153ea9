package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key carrying the authenticated principal
const PrincipalKey = "principal"

// Auth verifies the bearer token and stores the resolved principal in the
// gin context. Requests without a valid token never reach the handler.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing or malformed authorization header",
			})
			return
		}

		principal, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by the Auth middleware
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}
