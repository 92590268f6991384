package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, 401, GetHTTPStatus(ErrCodeUnauthorized))
	assert.Equal(t, 409, GetHTTPStatus(ErrCodeConflict))
	assert.Equal(t, 400, GetHTTPStatus(ErrCodeValidation))
	assert.Equal(t, 500, GetHTTPStatus("SOMETHING_UNKNOWN"))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: user not found", NotFound("user not found", "").Error())
	assert.Equal(t, "NOT_FOUND: user not found (id 42)", NotFound("user not found", "id 42").Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := Internal("query failed", "").WithCause(cause)

	assert.ErrorIs(t, err, cause)
}

func TestAsAppError(t *testing.T) {
	appErr := Unauthorized("nope", "")
	assert.Equal(t, appErr, AsAppError(appErr))
	assert.Nil(t, AsAppError(errors.New("plain error")))
}
