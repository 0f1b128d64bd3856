// File: internal/provider/provider.go

// Package provider defines the contract with the external identity provider:
// the operations this service delegates and the closed set of failure kinds
// each of them can raise. Handlers never see raw provider errors, only these
// kinds, so the outward error taxonomy stays stable when the provider's own
// naming changes.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// Kind identifies one of the defined provider failure categories.
type Kind string

const (
	KindUserExists       Kind = "user-exists"
	KindInvalidPassword  Kind = "invalid-password"
	KindInvalidParameter Kind = "invalid-parameter"
	KindBadCode          Kind = "bad-code"
	KindExpiredCode      Kind = "expired-code"
	KindAlreadyConfirmed Kind = "already-confirmed"
	KindUserNotFound     Kind = "user-not-found"
	KindNotAuthorized    Kind = "not-authorized"
	KindUnconfirmed      Kind = "unconfirmed"
	KindRateLimited      Kind = "rate-limited"
	// KindUnknown covers anything the provider raised outside the defined
	// set; callers map it to a generic internal failure.
	KindUnknown Kind = "unknown"
)

// Error is a provider failure tagged with its kind. Op records which
// operation raised it ("signup", "login", "confirm").
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("identity provider %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("identity provider %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err as a tagged provider failure.
func NewError(op string, kind Kind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the failure kind from err. Errors that did not originate
// from a provider adapter report KindUnknown.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// TokenBundle carries the session artifacts issued on login. The values are
// opaque to this service: they are returned to the caller as-is and never
// stored or parsed.
type TokenBundle struct {
	AccessToken  string `json:"accessToken"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

// DefaultExpiresIn is used when the provider omits the token lifetime.
const DefaultExpiresIn = 3600

// Service is the identity provider adapter. Each method is a single
// synchronous round-trip; transient-failure handling is the provider's own
// concern and no retries happen here.
type Service interface {
	// Signup registers a new identity and returns the provider-issued user
	// ID. Fails with user-exists, invalid-password or invalid-parameter.
	Signup(ctx context.Context, email, password string) (string, error)

	// Login authenticates with email and password. Fails with
	// not-authorized, unconfirmed, user-not-found or rate-limited.
	Login(ctx context.Context, email, password string) (*TokenBundle, error)

	// Confirm redeems a one-time verification code. Fails with bad-code,
	// expired-code, already-confirmed, user-not-found or rate-limited.
	Confirm(ctx context.Context, email, code string) error

	// VerifyIDToken validates a bearer token for the transport authorizer
	// and returns the subject user ID.
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
