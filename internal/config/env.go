package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment, after
// loading a .env file from the working directory when one exists. Variables
// already set in the environment win over .env entries.
func parseEnv(cfg *Config) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
