package config

import (
	"encoding/json"
	"fmt"
	"os"

	"frontend/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the `config` environment variable (JSON, optionally from
// a .env file) over built-in development defaults.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	cfg := &model.EnvConfig{
		Port:        "3000",
		ApiBaseUrl:  "http://localhost:8000",
		Environment: "development",
	}

	if rawJson := os.Getenv("config"); rawJson != "" {
		if err := json.Unmarshal([]byte(rawJson), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &SystemConfigs{
		Config: cfg,
	}, nil
}
