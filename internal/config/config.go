package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, sourced from the environment with an
// optional .env overlay for local runs.
type Config struct {
	Address   string   `env:"ADDRESS" envDefault:"0.0.0.0"`
	Port      int      `env:"PORT" envDefault:"8889"`
	Pairs     []string `env:"PAIRS" envDefault:"BTCZAR,ETHZAR,LTCZAR"`
	JWTSecret string   `env:"JWT_SECRET" envDefault:"local-dev-secret-change-me"`
	LogLevel  string   `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}
