package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration, read from the environment. A .env
// file in the working directory is honored when present.
type Config struct {
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DB" envDefault:"studyfinder"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`

	// FilterMinMatches is the level-2 trait-tag overlap threshold.
	FilterMinMatches int `env:"FILTER_MIN_MATCHES" envDefault:"2"`
	// QuestionCacheTTL bounds how long the level-2 question bank is cached.
	QuestionCacheTTL time.Duration `env:"QUESTION_CACHE_TTL" envDefault:"10m"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
