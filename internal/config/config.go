// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Strings for identifiers and secrets, ints
// for durations and costs.
type Config struct {
	Env           string  // application environment (e.g. "dev", "prod")
	Port          string  // HTTP port to listen on
	DBUser        string  // database username
	DBPass        string  // database password (optional)
	DBHost        string  // database host address
	DBPort        string  // database port number
	DBName        string  // database name
	SessionSecret string  // secret used to sign admin session tokens
	SessionTTLMin int     // admin session time-to-live in minutes
	BcryptCost    int     // bcrypt cost for admin password hashing
	FareColumns   []int64 // per-row fare template applied to every bus row
}

// Load reads configuration from environment variables. Required
// variables are enforced by must(); missing values exit the process
// with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"), // empty allowed
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		SessionSecret: must("SESSION_SECRET"),
		SessionTTLMin: mustInt("SESSION_TTL_MIN"),
		BcryptCost:    mustInt("BCRYPT_COST"),
		FareColumns:   fareColumns(),
	}
}

// fareColumns parses the optional FARE_COLUMNS variable, a
// comma-separated list of one positive price per seat column (e.g.
// "100,75,50,100"). The same template is applied to every row. When
// the variable is unset the reference configuration is used.
func fareColumns() []int64 {
	raw := os.Getenv("FARE_COLUMNS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	cols := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n <= 0 {
			log.Fatalf("invalid FARE_COLUMNS entry: %q", p)
		}
		cols = append(cols, n)
	}
	return cols
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value to an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
