package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// TenantIDKey is the gin context key holding the resolved tenant id.
const TenantIDKey = "tenant_id"

func TenantID(c *gin.Context) string {
	return c.GetString(TenantIDKey)
}

// ParamID parses a positive integer path parameter. On failure it writes a
// 400 response and returns false.
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// QueryID parses an optional positive integer query parameter. Absent means
// 0. On a malformed value it writes a 400 response and returns false.
func QueryID(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// FormFile returns the uploaded file for field, or nil when none was sent.
func FormFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	return fh, err
}

// LimitBody caps the request body at n bytes. Reads past the cap fail with
// *http.MaxBytesError, which RespondBindError reports as 413.
func LimitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
