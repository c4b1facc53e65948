package valueobject

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argentum-labs/argentum/internal/domain/domainerr"
)

func TestNewPlainPassword_Valid(t *testing.T) {
	p, err := NewPlainPassword("Secur3Pass")
	require.NoError(t, err)
	assert.Equal(t, "Secur3Pass", p.Value())
}

func TestNewPlainPassword_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "Ab1defg"},
		{"too long", "Ab1" + strings.Repeat("x", 126)},
		{"no uppercase", "secur3pass"},
		{"no lowercase", "SECUR3PASS"},
		{"no digit", "SecurePass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlainPassword(tt.raw)
			require.Error(t, err)
			var vErr *domainerr.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "password", vErr.Field)
		})
	}
}

func TestNewPlainPassword_BoundaryLengths(t *testing.T) {
	// 8 runes is the floor, 128 the ceiling.
	_, err := NewPlainPassword("Abcdef1x")
	assert.NoError(t, err)

	_, err = NewPlainPassword("Ab1" + strings.Repeat("x", 125))
	assert.NoError(t, err)
}

func TestPlainPassword_StringHidesValue(t *testing.T) {
	p, err := NewPlainPassword("Secur3Pass")
	require.NoError(t, err)
	assert.NotContains(t, fmt.Sprintf("%v %s", p, p), "Secur3Pass")
}

func TestNewHashedPassword(t *testing.T) {
	_, err := NewHashedPassword("")
	require.Error(t, err)

	_, err = NewHashedPassword("tooshort")
	require.Error(t, err)

	h, err := NewHashedPassword("$2a$12$abcdefghijklmnopqrstuv")
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$abcdefghijklmnopqrstuv", h.Value())
	assert.Equal(t, "***HASHED***", h.String())
}
