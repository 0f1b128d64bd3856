// File: internal/profile/service.go
package profile

import (
	"context"

	"go.uber.org/zap"

	"identity_kit_backend/internal/common"
)

// Service implements the profile read path. The caller identity is supplied
// by the upstream authorizer and trusted as-is.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new profile service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetOwnProfile returns the caller's profile. Absence is an expected
// transient state while confirmation has not yet materialized a record, so
// not-found is reported without error-level logging.
func (s *Service) GetOwnProfile(ctx context.Context, callerUserID string) (*Profile, error) {
	p, err := s.repo.Get(ctx, callerUserID)
	if err != nil {
		if apiErr, ok := common.IsAPIError(err); ok && apiErr.StatusCode == common.ErrNotFound.StatusCode {
			s.logger.Warn("User profile not found", zap.String("userID", callerUserID))
			return nil, err
		}
		s.logger.Error("Failed to fetch user profile", zap.Error(err), zap.String("userID", callerUserID))
		return nil, common.ErrInternalServer.WithMessage("Failed to fetch user profile")
	}
	return p, nil
}

// IsNotFound reports whether err marks an absent profile.
func IsNotFound(err error) bool {
	apiErr, ok := common.IsAPIError(err)
	if !ok {
		return false
	}
	return apiErr.StatusCode == common.ErrNotFound.StatusCode
}
