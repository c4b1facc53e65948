package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/argentum-labs/argentum/config"
	"github.com/argentum-labs/argentum/internal/application"
)

// App-level container to share constructed components across packages.
// The router auto-wires modules from these singletons; construction happens
// once in cmd, never here.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	tokenService   application.TokenService
	passwordHasher application.PasswordHasher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetPGPool(p *pgxpool.Pool) { pgPool = p }
func GetPGPool() *pgxpool.Pool  { return pgPool }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetTokens(t application.TokenService) { tokenService = t }
func GetTokens() application.TokenService  { return tokenService }

func SetHasher(h application.PasswordHasher) { passwordHasher = h }
func GetHasher() application.PasswordHasher  { return passwordHasher }
