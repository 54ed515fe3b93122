package api

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"gopkg.in/yaml.v3"
)

// Config carries the settings for the API process. Environment variables win
// over the optional YAML file named by CONFIG_FILE; a local .env is loaded
// first when present.
type Config struct {
	Port                string `yaml:"port"`
	PostgresDSN         string `yaml:"postgresDsn"`
	RedisAddr           string `yaml:"redisAddr"`
	TemporalAddress     string `yaml:"temporalAddress"`
	TemporalNamespace   string `yaml:"temporalNamespace"`
	TemporalDisabled    bool   `yaml:"temporalDisabled"`
	StrictPotValidation bool   `yaml:"strictPotValidation"`
}

// LoadConfig assembles configuration from .env, CONFIG_FILE, and the process
// environment, applying defaults and validating basic constraints.
func LoadConfig() (Config, error) {
	// Missing .env is fine; it only exists in local setups.
	_ = godotenv.Load()

	cfg := Config{
		Port:              "8080",
		TemporalAddress:   client.DefaultHostPort,
		TemporalNamespace: client.DefaultNamespace,
	}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = envDefault("PORT", cfg.Port)
	cfg.PostgresDSN = envDefault("POSTGRES_DSN", cfg.PostgresDSN)
	cfg.RedisAddr = envDefault("REDIS_ADDR", cfg.RedisAddr)
	cfg.TemporalAddress = envDefault("TEMPORAL_ADDRESS", cfg.TemporalAddress)
	cfg.TemporalNamespace = envDefault("TEMPORAL_NAMESPACE", cfg.TemporalNamespace)
	if raw := os.Getenv("TEMPORAL_DISABLED"); raw != "" {
		cfg.TemporalDisabled = isTruthy(raw)
	}
	if raw := os.Getenv("STRICT_POT_VALIDATION"); raw != "" {
		cfg.StrictPotValidation = isTruthy(raw)
	}

	if strings.TrimSpace(cfg.Port) == "" {
		return Config{}, fmt.Errorf("PORT must not be blank")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
