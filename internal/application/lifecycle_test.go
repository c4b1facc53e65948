package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/argentum-labs/argentum/internal/application"
	"github.com/argentum-labs/argentum/internal/domain/domainerr"
	"github.com/argentum-labs/argentum/internal/infrastructure/security"
)

// TestAccountLifecycle runs the whole round trip against the real bcrypt and
// JWT adapters: register, log in, then validate the issued token.
func TestAccountLifecycle(t *testing.T) {
	repo := newMemUserRepo()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens, err := security.NewJWTTokenService("lifecycle-test-secret-key-0123456789", "HS256", 30)
	require.NoError(t, err)

	register := application.NewRegisterUser(repo, hasher)
	login := application.NewLoginUser(repo, hasher, tokens)
	ctx := context.Background()

	created, err := register.Execute(ctx, application.RegisterInput{
		Email:    "  Jane.Doe@Example.COM ",
		Password: "Secur3Pass",
		Username: "jane_doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", created.Email)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsVerified)

	out, err := login.Execute(ctx, application.LoginInput{
		Email:    "jane.doe@example.com",
		Password: "Secur3Pass",
	})
	require.NoError(t, err)
	assert.Equal(t, application.TokenTypeBearer, out.TokenType)

	claims, err := tokens.Validate(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "jane.doe@example.com", claims.Email)
}

func TestAccountLifecycle_DuplicateRegistrationRejected(t *testing.T) {
	repo := newMemUserRepo()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	register := application.NewRegisterUser(repo, hasher)
	ctx := context.Background()

	_, err := register.Execute(ctx, application.RegisterInput{
		Email:    "jane.doe@example.com",
		Password: "Secur3Pass",
		Username: "jane_doe",
	})
	require.NoError(t, err)

	// Same email under a different casing.
	_, err = register.Execute(ctx, application.RegisterInput{
		Email:    "Jane.Doe@example.com",
		Password: "Secur3Pass",
		Username: "jane_two",
	})
	var dupErr *domainerr.UserAlreadyExistsError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "email", dupErr.Field)

	// Same username under a fresh email.
	_, err = register.Execute(ctx, application.RegisterInput{
		Email:    "other@example.com",
		Password: "Secur3Pass",
		Username: "jane_doe",
	})
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "username", dupErr.Field)
}

func TestAccountLifecycle_WrongPasswordAfterRegistration(t *testing.T) {
	repo := newMemUserRepo()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens, err := security.NewJWTTokenService("lifecycle-test-secret-key-0123456789", "HS256", 30)
	require.NoError(t, err)

	register := application.NewRegisterUser(repo, hasher)
	login := application.NewLoginUser(repo, hasher, tokens)
	ctx := context.Background()

	_, err = register.Execute(ctx, application.RegisterInput{
		Email:    "jane.doe@example.com",
		Password: "Secur3Pass",
		Username: "jane_doe",
	})
	require.NoError(t, err)

	_, err = login.Execute(ctx, application.LoginInput{
		Email:    "jane.doe@example.com",
		Password: "Secur3Pass!",
	})
	var credErr *domainerr.InvalidCredentialsError
	assert.ErrorAs(t, err, &credErr)
}
