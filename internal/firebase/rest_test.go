// File: internal/firebase/rest_test.go
package firebase

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity_kit_backend/internal/provider"
)

func TestRestKind(t *testing.T) {
	tests := []struct {
		message string
		want    provider.Kind
	}{
		{"EMAIL_EXISTS", provider.KindUserExists},
		{"WEAK_PASSWORD : Password should be at least 6 characters", provider.KindInvalidPassword},
		{"INVALID_EMAIL", provider.KindInvalidParameter},
		{"EMAIL_NOT_FOUND", provider.KindUserNotFound},
		{"INVALID_PASSWORD", provider.KindNotAuthorized},
		{"INVALID_LOGIN_CREDENTIALS", provider.KindNotAuthorized},
		{"USER_DISABLED", provider.KindNotAuthorized},
		{"INVALID_OOB_CODE", provider.KindBadCode},
		{"EXPIRED_OOB_CODE", provider.KindExpiredCode},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : try again later", provider.KindRateLimited},
		{"SOMETHING_NEW", provider.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, restKind(tt.message))
		})
	}
}

func TestRestClient_Post_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"EMAIL_NOT_FOUND"}}`)
	}))
	defer srv.Close()

	rc := newRESTClient("test-key", srv.URL, srv.Client())

	var out signInResponse
	err := rc.post(context.Background(), "login", "signInWithPassword",
		map[string]interface{}{"email": "a@b.com"}, &out)

	require.Error(t, err)
	assert.Equal(t, provider.KindUserNotFound, provider.KindOf(err))
}

func TestRestClient_Post_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"localId":"uid-1","idToken":"tok","refreshToken":"ref","expiresIn":"3600"}`)
	}))
	defer srv.Close()

	rc := newRESTClient("test-key", srv.URL, srv.Client())

	var out signInResponse
	err := rc.post(context.Background(), "login", "signInWithPassword",
		map[string]interface{}{"email": "a@b.com"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "uid-1", out.LocalID)
	assert.Equal(t, "tok", out.IDToken)
	assert.Equal(t, "ref", out.RefreshToken)
	assert.Equal(t, "3600", out.ExpiresIn)
}

func TestRestClient_Post_MalformedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream blew up")
	}))
	defer srv.Close()

	rc := newRESTClient("test-key", srv.URL, srv.Client())

	err := rc.post(context.Background(), "confirm", "update",
		map[string]interface{}{"oobCode": "x"}, nil)

	require.Error(t, err)
	assert.Equal(t, provider.KindUnknown, provider.KindOf(err))
}

func TestRestClient_Post_Unreachable(t *testing.T) {
	rc := newRESTClient("test-key", "http://127.0.0.1:1", nil)

	err := rc.post(context.Background(), "login", "signInWithPassword",
		map[string]interface{}{}, nil)

	require.Error(t, err)
	assert.Equal(t, provider.KindUnknown, provider.KindOf(err))
}
