// File: internal/auth/taxonomy.go
package auth

import (
	"net/http"

	"identity_kit_backend/internal/common"
	"identity_kit_backend/internal/provider"
)

// The mappers below translate provider failure kinds into the stable outward
// error codes and statuses. Each mapper is total: every defined kind maps to
// exactly one tuple and anything unrecognized falls back to a 500.

// MapSignupError classifies a signup failure.
func MapSignupError(err error) *common.APIError {
	switch provider.KindOf(err) {
	case provider.KindUserExists:
		return common.NewAPIError(http.StatusBadRequest, "UsernameExistsException",
			"An account with this email already exists")
	case provider.KindInvalidPassword:
		return common.NewAPIError(http.StatusBadRequest, "InvalidPasswordException",
			"Password does not meet requirements")
	case provider.KindInvalidParameter:
		return common.NewAPIError(http.StatusBadRequest, "InvalidParameterException",
			"Invalid parameters provided")
	default:
		return common.NewAPIError(http.StatusInternalServerError, "InternalError",
			"Failed to sign up user")
	}
}

// MapLoginError classifies a login failure. Wrong password and unknown email
// collapse into the same tuple so the response does not leak whether an
// account exists.
func MapLoginError(err error) *common.APIError {
	switch provider.KindOf(err) {
	case provider.KindNotAuthorized, provider.KindUserNotFound:
		return common.NewAPIError(http.StatusUnauthorized, "NotAuthorizedException",
			"Incorrect email or password")
	case provider.KindUnconfirmed:
		return common.NewAPIError(http.StatusForbidden, "UserNotConfirmedException",
			"Please verify your email before logging in")
	case provider.KindRateLimited:
		return common.NewAPIError(http.StatusTooManyRequests, "TooManyRequestsException",
			"Too many login attempts. Please try again later")
	default:
		return common.NewAPIError(http.StatusInternalServerError, "InternalError",
			"Failed to authenticate user")
	}
}

// MapConfirmError classifies an email verification failure. Unlike login,
// user-not-found is distinguishable here: the caller already knows the email.
func MapConfirmError(err error) *common.APIError {
	switch provider.KindOf(err) {
	case provider.KindBadCode:
		return common.NewAPIError(http.StatusBadRequest, "CodeMismatchException",
			"Invalid verification code")
	case provider.KindExpiredCode:
		return common.NewAPIError(http.StatusBadRequest, "ExpiredCodeException",
			"Verification code has expired")
	case provider.KindAlreadyConfirmed:
		return common.NewAPIError(http.StatusBadRequest, "NotAuthorizedException",
			"User is already confirmed")
	case provider.KindUserNotFound:
		return common.NewAPIError(http.StatusNotFound, "UserNotFoundException",
			"User not found")
	case provider.KindRateLimited:
		return common.NewAPIError(http.StatusTooManyRequests, "TooManyFailedAttemptsException",
			"Too many failed attempts. Please try again later")
	default:
		return common.NewAPIError(http.StatusInternalServerError, "InternalError",
			"Failed to verify email")
	}
}
