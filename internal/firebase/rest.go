// File: internal/firebase/rest.go
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"identity_kit_backend/internal/provider"
)

// defaultIdentityToolkitEndpoint is the Identity Toolkit v1 REST surface.
// Password sign-in and oob-code redemption have no Admin SDK equivalent, so
// the adapter calls these endpoints directly with the web API key.
const defaultIdentityToolkitEndpoint = "https://identitytoolkit.googleapis.com/v1"

// restClient performs Identity Toolkit v1 calls.
type restClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func newRESTClient(apiKey, endpoint string, httpClient *http.Client) *restClient {
	if endpoint == "" {
		endpoint = defaultIdentityToolkitEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &restClient{apiKey: apiKey, endpoint: endpoint, httpClient: httpClient}
}

// restError is the error envelope Identity Toolkit returns:
// {"error": {"code": 400, "message": "EMAIL_NOT_FOUND", ...}}.
type restError struct {
	ErrorInfo struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// signInResponse is the subset of accounts:signInWithPassword we consume.
type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// post sends one request and decodes either the success payload into out or
// the error envelope into a tagged provider failure.
func (r *restClient) post(ctx context.Context, op, action string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return provider.NewError(op, provider.KindUnknown, fmt.Errorf("encode %s request: %w", action, err))
	}

	url := fmt.Sprintf("%s/accounts:%s?key=%s", r.endpoint, action, r.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return provider.NewError(op, provider.KindUnknown, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return provider.NewError(op, provider.KindUnknown, fmt.Errorf("call %s: %w", action, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.NewError(op, provider.KindUnknown, fmt.Errorf("read %s response: %w", action, err))
	}

	if resp.StatusCode >= 400 {
		var re restError
		if err := json.Unmarshal(raw, &re); err != nil || re.ErrorInfo.Message == "" {
			return provider.NewError(op, provider.KindUnknown,
				fmt.Errorf("%s returned status %d", action, resp.StatusCode))
		}
		kind := restKind(re.ErrorInfo.Message)
		return provider.NewError(op, kind, fmt.Errorf("%s: %s", action, re.ErrorInfo.Message))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return provider.NewError(op, provider.KindUnknown, fmt.Errorf("decode %s response: %w", action, err))
		}
	}
	return nil
}

// restKind maps an Identity Toolkit error message to a provider failure kind.
// Messages sometimes carry a detail suffix ("WEAK_PASSWORD : ..."), so only
// the leading token is matched.
func restKind(message string) provider.Kind {
	code := message
	if idx := strings.IndexAny(message, " :"); idx > 0 {
		code = message[:idx]
	}

	switch code {
	case "EMAIL_EXISTS":
		return provider.KindUserExists
	case "WEAK_PASSWORD":
		return provider.KindInvalidPassword
	case "INVALID_EMAIL", "MISSING_EMAIL", "MISSING_PASSWORD", "INVALID_ARGUMENT":
		return provider.KindInvalidParameter
	case "EMAIL_NOT_FOUND":
		return provider.KindUserNotFound
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return provider.KindNotAuthorized
	case "INVALID_OOB_CODE":
		return provider.KindBadCode
	case "EXPIRED_OOB_CODE":
		return provider.KindExpiredCode
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return provider.KindRateLimited
	default:
		return provider.KindUnknown
	}
}
