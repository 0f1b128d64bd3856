// File: internal/common/errors_test.go
package common

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_WireShape(t *testing.T) {
	b, err := json.Marshal(NewAPIError(400, "UsernameExistsException", "An account with this email already exists"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"UsernameExistsException","message":"An account with this email already exists"}`, string(b))

	b, err = json.Marshal(NewValidationAPIError(map[string]string{"email": "Invalid email format"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"InvalidRequestBody","message":"Invalid request body","details":{"email":"Invalid email format"}}`, string(b))
}

func TestAPIError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	modified := ErrBadRequest.WithDetails(map[string]string{"field": "bad"})
	assert.NotNil(t, modified.Details)
	assert.Nil(t, ErrBadRequest.Details)
	assert.Equal(t, ErrBadRequest.StatusCode, modified.StatusCode)
}

func TestAPIError_WithMessageDoesNotMutateSentinel(t *testing.T) {
	modified := ErrNotFound.WithMessage("User profile not found")
	assert.Equal(t, "User profile not found", modified.Message)
	assert.Equal(t, "The requested resource could not be found.", ErrNotFound.Message)
}

func TestIsAPIError(t *testing.T) {
	apiErr, ok := IsAPIError(ErrUnauthorized)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.StatusCode)

	wrapped := fmt.Errorf("handler: %w", ErrNotFound)
	apiErr, ok = IsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode)

	_, ok = IsAPIError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
