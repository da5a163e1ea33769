package server

import (
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/logger"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// accessLog writes one structured line per request, tagged with the tenant
// the request was scoped to. Probe endpoints are not logged.
func accessLog() gin.HandlerFunc {
	return ginzap.GinzapWithConfig(logger.L(), &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/metrics"},
		Context: func(c *gin.Context) []zapcore.Field {
			if id := api.TenantID(c); id != "" {
				return []zapcore.Field{zap.String("tenant_id", id)}
			}
			return nil
		},
	})
}
