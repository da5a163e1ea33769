package auth

import (
	"errors"
	"net/http"
	"strings"

	"memberdesk/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	ctxTokenTenantID = "token_tenant_id"
	ctxTokenEmail    = "token_email"
	ctxTokenRole     = "token_role"
)

func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid authorization header format"})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token is empty"})
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token expired"})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid or malformed token"})
			}
			return
		}

		if claims.TokenType != tokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Access token required"})
			return
		}

		c.Set(ctxTokenTenantID, claims.TenantID)
		c.Set(ctxTokenEmail, claims.Email)
		c.Set(ctxTokenRole, claims.Role)

		c.Next()
	}
}

// RequireTenant rejects requests whose token was issued for a tenant other
// than the one the route is scoped to. It must run after AuthMiddleware and
// after the tenant scope middleware.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenTenant, ok := GetTenantID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Tenant not found in token"})
			return
		}

		if tokenTenant != api.TenantID(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Token does not grant access to this tenant"})
			return
		}

		c.Next()
	}
}

func GetTenantID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxTokenTenantID)
	if !exists {
		return "", false
	}

	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
