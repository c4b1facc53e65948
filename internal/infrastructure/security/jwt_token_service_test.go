package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argentum-labs/argentum/internal/domain/domainerr"
)

const testSecret = "unit-test-signing-secret"

func newTokenService(t *testing.T, expireMinutes int) *JWTTokenService {
	t.Helper()
	svc, err := NewJWTTokenService(testSecret, "HS256", expireMinutes)
	require.NoError(t, err)
	return svc
}

func TestNewJWTTokenService_Config(t *testing.T) {
	_, err := NewJWTTokenService("", "HS256", 30)
	assert.Error(t, err)

	_, err = NewJWTTokenService(testSecret, "RS256", 30)
	assert.Error(t, err)

	_, err = NewJWTTokenService(testSecret, "nope", 30)
	assert.Error(t, err)

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		_, err := NewJWTTokenService(testSecret, alg, 30)
		assert.NoError(t, err, "alg=%s", alg)
	}
}

func TestGenerate_RequiresSubjectAndEmail(t *testing.T) {
	svc := newTokenService(t, 30)

	_, _, err := svc.Generate(uuid.Nil, "user@example.com")
	var vErr *domainerr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "user_id", vErr.Field)

	_, _, err = svc.Generate(uuid.New(), "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestGenerateValidate_RoundTrip(t *testing.T) {
	svc := newTokenService(t, 30)
	userID := uuid.New()

	token, expiresAt, err := svc.Generate(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidate_EmptyToken(t *testing.T) {
	svc := newTokenService(t, 30)

	_, err := svc.Validate("")
	assert.ErrorIs(t, err, domainerr.ErrTokenFormat)

	_, err = svc.GetExpiration("")
	assert.ErrorIs(t, err, domainerr.ErrTokenFormat)
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc := newTokenService(t, -1)
	userID := uuid.New()

	token, expiresAt, err := svc.Generate(userID, "user@example.com")
	require.NoError(t, err)
	assert.True(t, expiresAt.Before(time.Now()))

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domainerr.ErrTokenExpired)

	// Expiry is readable even after it has passed; only validation enforces it.
	got, err := svc.GetExpiration(token)
	require.NoError(t, err)
	assert.Equal(t, expiresAt.Unix(), got.Unix())
}

func TestValidate_TamperedToken(t *testing.T) {
	svc := newTokenService(t, 30)

	token, _, err := svc.Generate(uuid.New(), "user@example.com")
	require.NoError(t, err)

	tampered := token + "xx"
	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, domainerr.ErrTokenInvalid)

	_, err = svc.Validate("not.a.jwt")
	assert.ErrorIs(t, err, domainerr.ErrTokenInvalid)

	_, err = svc.GetExpiration("not.a.jwt")
	assert.ErrorIs(t, err, domainerr.ErrTokenInvalid)
}

func TestValidate_ForeignSecret(t *testing.T) {
	svc := newTokenService(t, 30)
	other, err := NewJWTTokenService("some-other-signing-secret", "HS256", 30)
	require.NoError(t, err)

	token, _, err := svc.Generate(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, domainerr.ErrTokenInvalid)

	_, err = other.GetExpiration(token)
	assert.ErrorIs(t, err, domainerr.ErrTokenInvalid)
}
