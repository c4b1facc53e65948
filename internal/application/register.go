package application

import (
	"context"

	"github.com/argentum-labs/argentum/internal/domain/domainerr"
	"github.com/argentum-labs/argentum/internal/domain/entity"
	"github.com/argentum-labs/argentum/internal/domain/repository"
	"github.com/argentum-labs/argentum/internal/domain/valueobject"
)

// RegisterUser creates a new account: validates the value objects, checks
// email/username uniqueness, hashes the password and persists the user.
//
// The existence checks and the save are not atomic as a unit. Two concurrent
// registrations with the same email can both pass the pre-check; the
// repository's storage-level unique constraints close that window and
// surface the conflict as *domainerr.UserAlreadyExistsError.
type RegisterUser struct {
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewRegisterUser(users repository.UserRepository, hasher PasswordHasher) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher}
}

// Execute runs the registration state machine. It returns the created user
// or one of *domainerr.ValidationError, *domainerr.UserAlreadyExistsError.
// Infrastructure failures propagate unmodified.
func (uc *RegisterUser) Execute(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	plain, err := valueobject.NewPlainPassword(in.Password)
	if err != nil {
		return nil, err
	}

	taken, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &domainerr.UserAlreadyExistsError{Field: "email", Value: email.String()}
	}
	taken, err = uc.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &domainerr.UserAlreadyExistsError{Field: "username", Value: in.Username}
	}

	hash, err := uc.hasher.Hash(plain.Value())
	if err != nil {
		return nil, err
	}
	hashed, err := valueobject.NewHashedPassword(hash)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(email, hashed, in.Username)
	if err != nil {
		return nil, err
	}

	saved, err := uc.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{
		ID:         saved.ID().String(),
		Email:      saved.Email().String(),
		Username:   saved.Username(),
		IsActive:   saved.IsActive(),
		IsVerified: saved.IsVerified(),
		CreatedAt:  saved.CreatedAt(),
	}, nil
}
