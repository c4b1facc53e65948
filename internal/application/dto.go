package application

import "time"

// TokenTypeBearer is the only token type this service issues.
const TokenTypeBearer = "bearer"

// RegisterInput carries the raw registration fields. Validation happens in
// the value objects, not here.
type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// RegisterOutput describes the created account. It never carries the
// password or its hash in any form.
type RegisterOutput struct {
	ID         string
	Email      string
	Username   string
	IsActive   bool
	IsVerified bool
	CreatedAt  time.Time
}

// LoginInput carries the raw login fields.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
