package application

import (
	"context"

	"github.com/argentum-labs/argentum/internal/domain/domainerr"
	"github.com/argentum-labs/argentum/internal/domain/repository"
	"github.com/argentum-labs/argentum/internal/domain/valueobject"
)

// LoginUser authenticates an account and issues an access token: looks the
// user up by email, verifies the password, checks the account is active and
// asks the token port for a bearer token.
type LoginUser struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenService
}

func NewLoginUser(users repository.UserRepository, hasher PasswordHasher, tokens TokenService) *LoginUser {
	return &LoginUser{users: users, hasher: hasher, tokens: tokens}
}

// Execute runs the login state machine. An unknown email and a wrong
// password both fail with the same *domainerr.InvalidCredentialsError so the
// response never reveals which factor was wrong. A disabled account fails
// with *domainerr.UserNotActiveError, which is not a secret.
func (uc *LoginUser) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domainerr.InvalidCredentialsError{}
	}

	if !uc.hasher.Verify(in.Password, user.HashedPassword().Value()) {
		return nil, &domainerr.InvalidCredentialsError{}
	}

	if !user.IsActive() {
		return nil, &domainerr.UserNotActiveError{Email: user.Email().String()}
	}

	token, expiresAt, err := uc.tokens.Generate(user.ID(), user.Email().String())
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}
