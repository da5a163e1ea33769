package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"memberdesk/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddlewareHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	refresh, err := GenerateRefreshToken("T1", "owner@example.com", "tenant", "secret")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"Empty header", "", http.StatusUnauthorized},
		{"Invalid format", "Token abc", http.StatusUnauthorized},
		{"Empty token", "Bearer ", http.StatusUnauthorized},
		{"Garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"Refresh token", "Bearer " + refresh, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			c.Request = req

			AuthMiddleware("secret")(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware("secret"))
	router.GET("/", func(c *gin.Context) {
		id, ok := GetTenantID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"tenant": id})
	})

	token, err := GenerateAccessToken("T9", "owner@example.com", "tenant", "secret")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "T9")
}

func TestRequireTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		tokenTenant    any
		routeTenant    string
		expectedStatus int
	}{
		{"Matching tenant", "T1", "T1", http.StatusOK},
		{"Missing token tenant", nil, "T1", http.StatusUnauthorized},
		{"Wrong type", 12, "T1", http.StatusUnauthorized},
		{"Other tenant", "T2", "T1", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			if tt.tokenTenant != nil {
				c.Set(ctxTokenTenantID, tt.tokenTenant)
			}
			c.Set(api.TenantIDKey, tt.routeTenant)
			c.Request = httptest.NewRequest("GET", "/", nil)

			RequireTenant()(c)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
