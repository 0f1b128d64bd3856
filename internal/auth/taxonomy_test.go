// File: internal/auth/taxonomy_test.go
package auth

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"identity_kit_backend/internal/provider"
)

func provErr(op string, kind provider.Kind) error {
	return provider.NewError(op, kind, errors.New("upstream detail"))
}

func TestMapSignupError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"user exists", provErr("signup", provider.KindUserExists), "UsernameExistsException", http.StatusBadRequest},
		{"invalid password", provErr("signup", provider.KindInvalidPassword), "InvalidPasswordException", http.StatusBadRequest},
		{"invalid parameter", provErr("signup", provider.KindInvalidParameter), "InvalidParameterException", http.StatusBadRequest},
		{"unknown kind", provErr("signup", provider.KindUnknown), "InternalError", http.StatusInternalServerError},
		{"non-provider error", errors.New("boom"), "InternalError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := MapSignupError(tt.err)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
		})
	}
}

func TestMapLoginError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"wrong password", provErr("login", provider.KindNotAuthorized), "NotAuthorizedException", http.StatusUnauthorized},
		{"unknown email", provErr("login", provider.KindUserNotFound), "NotAuthorizedException", http.StatusUnauthorized},
		{"unconfirmed", provErr("login", provider.KindUnconfirmed), "UserNotConfirmedException", http.StatusForbidden},
		{"rate limited", provErr("login", provider.KindRateLimited), "TooManyRequestsException", http.StatusTooManyRequests},
		{"unknown kind", provErr("login", provider.KindUnknown), "InternalError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := MapLoginError(tt.err)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
		})
	}
}

// Wrong password and unknown email must be indistinguishable to the caller,
// so login responses cannot be probed for account existence.
func TestMapLoginError_DoesNotLeakAccountExistence(t *testing.T) {
	wrongPassword := MapLoginError(provErr("login", provider.KindNotAuthorized))
	unknownEmail := MapLoginError(provErr("login", provider.KindUserNotFound))

	assert.Equal(t, wrongPassword.StatusCode, unknownEmail.StatusCode)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
}

func TestMapConfirmError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"bad code", provErr("confirm", provider.KindBadCode), "CodeMismatchException", http.StatusBadRequest},
		{"expired code", provErr("confirm", provider.KindExpiredCode), "ExpiredCodeException", http.StatusBadRequest},
		{"already confirmed", provErr("confirm", provider.KindAlreadyConfirmed), "NotAuthorizedException", http.StatusBadRequest},
		{"user not found", provErr("confirm", provider.KindUserNotFound), "UserNotFoundException", http.StatusNotFound},
		{"rate limited", provErr("confirm", provider.KindRateLimited), "TooManyFailedAttemptsException", http.StatusTooManyRequests},
		{"unknown kind", provErr("confirm", provider.KindUnknown), "InternalError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := MapConfirmError(tt.err)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
		})
	}
}

// An expired code stays ExpiredCodeException on replay; it never degrades
// into CodeMismatchException.
func TestMapConfirmError_ExpiredCodeIsStable(t *testing.T) {
	first := MapConfirmError(provErr("confirm", provider.KindExpiredCode))
	replay := MapConfirmError(provErr("confirm", provider.KindExpiredCode))

	assert.Equal(t, "ExpiredCodeException", first.Code)
	assert.Equal(t, first.Code, replay.Code)
	assert.Equal(t, first.StatusCode, replay.StatusCode)
}
