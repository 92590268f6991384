// Package response provides HTTP response helpers for the auth-service.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"auth-service/internal/apperrors"
)

// Error sends an error response for the given AppError using the
// code-to-status mapping.
func Error(c *gin.Context, err *apperrors.AppError) {
	status := apperrors.GetHTTPStatus(err.Code)
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
		},
	})
}

// HandleError converts a generic error to an appropriate HTTP response.
// AppErrors use their own code; anything else becomes a 500.
func HandleError(c *gin.Context, err error) {
	if appErr := apperrors.AsAppError(err); appErr != nil {
		Error(c, appErr)
		return
	}
	Error(c, apperrors.Internal("An unexpected error occurred", err.Error()))
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, message string) {
	Error(c, apperrors.BadRequest(message, ""))
}

// ValidationError sends a 400 response for validation errors.
func ValidationError(c *gin.Context, message string) {
	Error(c, apperrors.Validation(message, ""))
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, apperrors.Unauthorized(message, ""))
}

// UnauthorizedBearer sends a 401 with a Bearer challenge header. Used by
// the token verification path: signature, claim, and user-lookup failures
// all surface through here with the same body.
func UnauthorizedBearer(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	Error(c, apperrors.Unauthorized(message, ""))
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, apperrors.NotFound(message, ""))
}

// Conflict sends a 409 Conflict response.
func Conflict(c *gin.Context, message string) {
	Error(c, apperrors.Conflict(message, ""))
}

// InternalErrorWithDetails sends a 500 response with error details.
func InternalErrorWithDetails(c *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	Error(c, apperrors.Internal(message, details))
}

// OK sends a 200 OK response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 Created response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
