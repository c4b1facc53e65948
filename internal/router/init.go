package router

import (
	"github.com/argentum-labs/argentum/internal/application"
	"github.com/argentum-labs/argentum/internal/container"
	pginfra "github.com/argentum-labs/argentum/internal/infrastructure/postgres"
	handlers "github.com/argentum-labs/argentum/internal/interface/http"
	"github.com/argentum-labs/argentum/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container is
// populated.
func InitModules(r *Registry) {
	users := pginfra.NewUserRepository(container.GetPGPool())

	register := application.NewRegisterUser(users, container.GetHasher())
	login := application.NewLoginUser(users, container.GetHasher(), container.GetTokens())

	authHandler := handlers.NewAuthHandler(
		register,
		login,
		users,
		container.GetTokens(),
		container.GetRedis(),
		container.GetLogger(),
	)

	r.Add(modules.NewAuthModule(authHandler, container.GetTokens()))
}
