package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/argentum-labs/argentum/internal/application"
	handlers "github.com/argentum-labs/argentum/internal/interface/http"
	"github.com/argentum-labs/argentum/internal/interface/middleware"
)

// AuthModule wires the authentication HTTP surface.
// Public: POST /api/v1/auth/register, POST /api/v1/auth/login
// Protected: GET /api/v1/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Tokens  application.TokenService
}

func NewAuthModule(h *handlers.AuthHandler, tokens application.TokenService) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tokens}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.RegisterUser)
	rg.POST("/auth/login", m.Handler.LoginUser)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.Tokens))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
