// File: internal/profile/service_test.go
package profile

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"identity_kit_backend/internal/common"
)

type mockRepository struct {
	CreateFunc func(ctx context.Context, p *Profile) (bool, error)
	GetFunc    func(ctx context.Context, userID string) (*Profile, error)
}

func (m *mockRepository) Create(ctx context.Context, p *Profile) (bool, error) {
	return m.CreateFunc(ctx, p)
}

func (m *mockRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	return m.GetFunc(ctx, userID)
}

func TestGetOwnProfile_Success(t *testing.T) {
	want := New("user-1", "a@b.com")
	svc := NewService(&mockRepository{
		GetFunc: func(ctx context.Context, userID string) (*Profile, error) {
			assert.Equal(t, "user-1", userID)
			return want, nil
		},
	}, zap.NewNop())

	got, err := svc.GetOwnProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetOwnProfile_NotFoundPassthrough(t *testing.T) {
	notFound := common.ErrNotFound.WithMessage("User profile not found")
	svc := NewService(&mockRepository{
		GetFunc: func(ctx context.Context, userID string) (*Profile, error) {
			return nil, notFound
		},
	}, zap.NewNop())

	got, err := svc.GetOwnProfile(context.Background(), "user-1")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "User profile not found", apiErr.Message)
}

func TestGetOwnProfile_StoreFailure(t *testing.T) {
	svc := NewService(&mockRepository{
		GetFunc: func(ctx context.Context, userID string) (*Profile, error) {
			return nil, errors.New("connection refused")
		},
	}, zap.NewNop())

	got, err := svc.GetOwnProfile(context.Background(), "user-1")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))

	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to fetch user profile", apiErr.Message)
}
