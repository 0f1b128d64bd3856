// File: internal/provider/provider_test.go
package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("EMAIL_EXISTS")
	tagged := NewError("signup", KindUserExists, base)

	assert.Equal(t, KindUserExists, KindOf(tagged))
	assert.Equal(t, KindUserExists, KindOf(fmt.Errorf("wrapped: %w", tagged)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain error")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestError_Unwrap(t *testing.T) {
	base := errors.New("upstream")
	tagged := NewError("login", KindRateLimited, base)

	assert.True(t, errors.Is(tagged, base))
	assert.Contains(t, tagged.Error(), "login")
	assert.Contains(t, tagged.Error(), string(KindRateLimited))
}

func TestError_WithoutCause(t *testing.T) {
	tagged := NewError("confirm", KindBadCode, nil)
	assert.Equal(t, "identity provider confirm: bad-code", tagged.Error())
	assert.Nil(t, errors.Unwrap(tagged))
}
