package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies an error for transport mapping.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindPolicy     ErrorKind = "policy"
	KindNotFound   ErrorKind = "not_found"
	KindInternal   ErrorKind = "internal"
)

// AppError is an error a client can act on. Code is stable and machine
// readable; Message is shown to the caller as-is.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches on Kind and Code so sentinel AppErrors work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func NewValidationError(code, message string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

func NewPolicyError(code, message string) *AppError {
	return &AppError{Kind: KindPolicy, Code: code, Message: message}
}

func NewNotFoundError(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

// Internal wraps an infrastructure failure. The cause is logged, never shown.
func Internal(op string, err error) *AppError {
	return &AppError{Kind: KindInternal, Code: "internal_error", Message: op, Err: err}
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation, KindPolicy:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondError writes err as JSON. Server-side failures are logged with their
// cause and reported with a generic message.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(status, ErrorResponse{
			Error:   "internal_error",
			Message: "An unexpected error occurred. Please try again later.",
		})
		return
	}

	var appErr *AppError
	errors.As(err, &appErr)
	logger.Debug("request rejected", zap.String("code", appErr.Code), zap.String("message", appErr.Message))
	c.JSON(status, ErrorResponse{Error: appErr.Code, Message: appErr.Message})
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Unhandled panic", zap.Any("error", rec), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "internal_error",
					Message: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}
