package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/argentum-labs/argentum/config"
	"github.com/argentum-labs/argentum/internal/application"
	pginfra "github.com/argentum-labs/argentum/internal/infrastructure/postgres"
	"github.com/argentum-labs/argentum/internal/infrastructure/security"
)

// Seeds a demo account through the real registration flow so the stored
// hash matches whatever cost the deployment is configured with.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	register := application.NewRegisterUser(users, hasher)

	out, err := register.Execute(ctx, application.RegisterInput{
		Email:    "demo@argentum.dev",
		Password: "Demo1234pass",
		Username: "demo_user",
	})
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s\n", out.ID, out.Email, out.Username)
}
