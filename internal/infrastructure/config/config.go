package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret      string        `env:"JWT_SECRET, required"`
	TokenTTL       time.Duration `env:"ACCESS_TOKEN_TTL, default=60m"`
	CORSOrigins    []string      `env:"CORS_ORIGINS, default=http://localhost:8080"`
	FrontendDir    string        `env:"FRONTEND_DIR, default=./frontend"`
	LoginMaxTries  int           `env:"LOGIN_MAX_TRIES, default=10"`
	LoginTryWindow time.Duration `env:"LOGIN_TRY_WINDOW, default=15m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=smart_spending"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// The returned struct is built once at startup and treated as immutable.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
