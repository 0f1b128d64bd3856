// File: internal/firebase/service.go

// Package firebase implements the identity provider adapter on top of
// Firebase Auth: the Admin SDK for account creation, lookup and token
// verification, and the Identity Toolkit REST surface for password sign-in
// and verification-code redemption.
package firebase

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"identity_kit_backend/internal/config"
	"identity_kit_backend/internal/provider"
)

// Service provides identity operations against Firebase Auth.
type Service struct {
	authClient *auth.Client
	rest       *restClient
	logger     *zap.Logger
}

var _ provider.Service = (*Service)(nil)

// NewService initializes the Firebase Admin SDK and the Identity Toolkit
// REST client from the application config.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if cfg.FirebaseServiceAccountKeyPath == "" {
		logger.Error("Firebase service account key path is not configured.")
		return nil, fmt.Errorf("firebase service account key path is required")
	}

	cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
	opt := option.WithCredentialsFile(cleanPath)

	var app *firebase.App
	var err error

	if cfg.FirebaseProjectID != "" {
		conf := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		app, err = firebase.NewApp(context.Background(), conf, opt)
	} else {
		// If ProjectID is not specified in config, let SDK infer from credentials
		app, err = firebase.NewApp(context.Background(), nil, opt)
	}
	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err), zap.String("keyPath", cleanPath))
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	return &Service{
		authClient: authClient,
		rest:       newRESTClient(cfg.FirebaseWebAPIKey, "", nil),
		logger:     logger,
	}, nil
}

// Signup registers a new account. The provider sends the verification code
// to the given address itself; this service never sees the code value.
func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false)

	u, err := s.authClient.CreateUser(ctx, params)
	if err != nil {
		return "", provider.NewError("signup", createUserKind(err), err)
	}

	s.logger.Info("User signed up successfully", zap.String("userID", u.UID))
	return u.UID, nil
}

// createUserKind classifies Admin SDK CreateUser failures. The SDK validates
// email and password shape locally and reports those as plain errors, so
// string matching is the only handle on them.
func createUserKind(err error) provider.Kind {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return provider.KindUserExists
	case strings.Contains(err.Error(), "password"):
		return provider.KindInvalidPassword
	case strings.Contains(err.Error(), "email"):
		return provider.KindInvalidParameter
	default:
		return provider.KindUnknown
	}
}

// Login authenticates with email and password and returns the token bundle.
// Accounts whose email is not yet verified are rejected as unconfirmed.
func (s *Service) Login(ctx context.Context, email, password string) (*provider.TokenBundle, error) {
	var resp signInResponse
	body := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	if err := s.rest.post(ctx, "login", "signInWithPassword", body, &resp); err != nil {
		return nil, err
	}

	u, err := s.authClient.GetUser(ctx, resp.LocalID)
	if err != nil {
		return nil, provider.NewError("login", provider.KindUnknown, err)
	}
	if !u.EmailVerified {
		return nil, provider.NewError("login", provider.KindUnconfirmed,
			fmt.Errorf("email %s is not verified", email))
	}

	expiresIn := provider.DefaultExpiresIn
	if resp.ExpiresIn != "" {
		if parsed, err := strconv.Atoi(resp.ExpiresIn); err == nil {
			expiresIn = parsed
		}
	}

	s.logger.Info("User authenticated successfully", zap.String("userID", resp.LocalID))

	// Firebase issues a single ID token where other providers issue a
	// separate access token; the bundle carries it in both fields to keep
	// the outward contract stable.
	return &provider.TokenBundle{
		AccessToken:  resp.IDToken,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// Confirm redeems a one-time email verification code. The account state is
// checked first so a replayed confirm for an already-verified user reports
// already-confirmed regardless of the code's validity.
func (s *Service) Confirm(ctx context.Context, email, code string) error {
	u, err := s.authClient.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return provider.NewError("confirm", provider.KindUserNotFound, err)
		}
		return provider.NewError("confirm", provider.KindUnknown, err)
	}
	if u.EmailVerified {
		return provider.NewError("confirm", provider.KindAlreadyConfirmed,
			fmt.Errorf("email %s is already verified", email))
	}

	body := map[string]interface{}{"oobCode": code}
	if err := s.rest.post(ctx, "confirm", "update", body, nil); err != nil {
		return err
	}

	s.logger.Info("Email verified successfully", zap.String("userID", u.UID))
	return nil
}

// VerifyIDToken validates a bearer token and returns the subject user ID.
func (s *Service) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", fmt.Errorf("ID token must not be empty")
	}

	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Warn("Firebase ID token verification failed", zap.Error(err))
		return "", fmt.Errorf("failed to verify Firebase ID token: %w", err)
	}

	s.logger.Debug("Firebase ID token verified successfully", zap.String("uid", token.UID))
	return token.UID, nil
}
