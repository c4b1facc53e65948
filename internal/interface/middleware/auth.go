package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/argentum-labs/argentum/internal/application"
	"github.com/argentum-labs/argentum/internal/domain/domainerr"
	"github.com/argentum-labs/argentum/pkg/response"
)

// Context keys set by BearerAuth.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// BearerAuth reads the Authorization header, validates the bearer token and
// injects the verified subject and email into the Gin context. Every token
// failure maps to 401; the distinct token error kinds stay visible to the
// caller only through the error detail string.
func BearerAuth(tokens application.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing authorization header", nil)
			return
		}
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "invalid authorization header", nil)
			return
		}
		claims, err := tokens.Validate(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, authFailureMessage(err), nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrTokenExpired):
		return "token has expired"
	case errors.Is(err, domainerr.ErrTokenFormat):
		return "invalid token format"
	default:
		return "invalid access token"
	}
}
