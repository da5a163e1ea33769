package api

import (
	"errors"
	"net/http"

	"memberdesk/internal/logger"

	"github.com/gin-gonic/gin"
)

// Error kinds. Domain errors wrap one of these so handlers can map them to a
// status code without knowing the concrete error.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)

type FieldError struct {
	Field   string `json:"field" example:"MobileNo"`
	Message string `json:"message" example:"MobileNo is required"`
}

// Error carries a kind plus optional field-level details.
type Error struct {
	Kind    error
	Message string
	Details []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Invalid(field, message string) error {
	return &Error{
		Kind:    ErrValidation,
		Message: message,
		Details: []FieldError{{Field: field, Message: message}},
	}
}

func InvalidFields(details []FieldError) error {
	msg := ErrValidation.Error()
	if len(details) == 1 {
		msg = details[0].Message
	}
	return &Error{Kind: ErrValidation, Message: msg, Details: details}
}

func Conflict(field, message string) error {
	return &Error{
		Kind:    ErrConflict,
		Message: message,
		Details: []FieldError{{Field: field, Message: message}},
	}
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as JSON. Unknown errors are logged and hidden
// behind a generic message.
func RespondError(c *gin.Context, err error) {
	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}

	resp := ErrorResponse{Error: err.Error()}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		resp.Details = apiErr.Details
	}
	c.JSON(status, resp)
}
