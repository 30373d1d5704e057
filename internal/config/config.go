package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string
	Env      string

	// Secret keys password hashing and session token signing.
	Secret string

	// Banking policy for this deployment.
	Currency            string
	SortCode            string
	BalanceCeiling      int64
	AccountNumberPrefix string
	SessionTTL          time.Duration
}

// DefaultBalanceCeiling is 10000.00 in minor units.
const DefaultBalanceCeiling = 1_000_000

func Load() (*Config, error) {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	secret := os.Getenv("SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SECRET environment variable is required")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "GBP"
	}

	sortCode := os.Getenv("SORT_CODE")
	if sortCode == "" {
		sortCode = "10-10-10"
	}

	ceiling := int64(DefaultBalanceCeiling)
	if v := os.Getenv("BALANCE_CEILING"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid BALANCE_CEILING %q", v)
		}
		ceiling = parsed
	}

	prefix := os.Getenv("ACCOUNT_NUMBER_PREFIX")
	if prefix == "" {
		prefix = "01"
	}
	if len(prefix) != 2 {
		return nil, fmt.Errorf("ACCOUNT_NUMBER_PREFIX must be two digits, got %q", prefix)
	}

	sessionTTL := 6 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		sessionTTL = d
	}

	return &Config{
		DBSource:            os.Getenv("DB_SOURCE"),
		Port:                port,
		Env:                 env,
		Secret:              secret,
		Currency:            currency,
		SortCode:            sortCode,
		BalanceCeiling:      ceiling,
		AccountNumberPrefix: prefix,
		SessionTTL:          sessionTTL,
	}, nil
}
