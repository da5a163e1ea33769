package tenant

import (
	"net/http"
	"strings"

	"memberdesk/internal/api"

	"github.com/gin-gonic/gin"
)

// HeaderName carries the tenant for routes that have no :tenantId segment.
const HeaderName = "tenantId"

// PathScope resolves the tenant from the :tenantId path segment.
func PathScope(svc Service) gin.HandlerFunc {
	return ParamScope(svc, "tenantId")
}

// ParamScope resolves the tenant from the named path parameter.
func ParamScope(svc Service, param string) gin.HandlerFunc {
	return scope(svc, func(c *gin.Context) string {
		return c.Param(param)
	})
}

// HeaderScope resolves the tenant from the tenantId request header.
func HeaderScope(svc Service) gin.HandlerFunc {
	return scope(svc, func(c *gin.Context) string {
		return c.GetHeader(HeaderName)
	})
}

func scope(svc Service, extract func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(extract(c))
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: "tenantId is required"})
			return
		}

		exists, err := svc.Exists(c.Request.Context(), id)
		if err != nil {
			api.RespondError(c, err)
			c.Abort()
			return
		}
		if !exists {
			c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Error: ErrTenantNotFound.Error()})
			return
		}

		c.Set(api.TenantIDKey, id)
		c.Next()
	}
}
