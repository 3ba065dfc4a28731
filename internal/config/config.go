// Package config loads application configuration from environment variables
// once at startup. Business logic never reads the environment directly; it
// receives an immutable Config instead.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration. DatabaseURL wins over the discrete
// POSTGRES_* fields when both are set.
type Config struct {
	Env         string // APP_ENV: development, test or production
	Port        string // PORT the HTTP server binds to
	DatabaseURL string // DATABASE_URL, full postgres connection string
	DBHost      string // POSTGRES_HOST
	DBPort      string // POSTGRES_PORT
	DBUser      string // POSTGRES_USER
	DBPass      string // POSTGRES_PASSWORD
	DBName      string // POSTGRES_DB
	JWTSecret   string // JWT_SECRET used to sign access tokens
	BcryptCost  int    // BCRYPT_COST for password hashing
}

// Load reads and validates the environment. Instead of failing on the first
// problem it collects every missing or malformed variable and returns the
// whole report as a single error, so an operator can fix the environment in
// one pass.
func Load() (Config, error) {
	var problems []string

	cfg := Config{
		Env:         getenv("APP_ENV", "development"),
		Port:        getenv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("POSTGRES_HOST"),
		DBPort:      getenv("POSTGRES_PORT", "5432"),
		DBUser:      os.Getenv("POSTGRES_USER"),
		DBPass:      os.Getenv("POSTGRES_PASSWORD"),
		DBName:      os.Getenv("POSTGRES_DB"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BcryptCost:  10,
	}

	switch cfg.Env {
	case "development", "test", "production":
	default:
		problems = append(problems, "APP_ENV: must be one of development, test, production")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		problems = append(problems, "PORT: must be a number")
	}
	if cfg.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET: required")
	}
	if cfg.DatabaseURL == "" {
		for _, f := range []struct{ name, val string }{
			{"POSTGRES_HOST", cfg.DBHost},
			{"POSTGRES_USER", cfg.DBUser},
			{"POSTGRES_DB", cfg.DBName},
		} {
			if f.val == "" {
				problems = append(problems, f.name+": required when DATABASE_URL is not set")
			}
		}
	}
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 4 || n > 31 {
			problems = append(problems, "BCRYPT_COST: must be a number between 4 and 31")
		} else {
			cfg.BcryptCost = n
		}
	}

	if len(problems) > 0 {
		return Config{}, errors.New(report(problems))
	}
	return cfg, nil
}

// DSN returns the postgres connection string: DATABASE_URL when present,
// otherwise one assembled from the discrete POSTGRES_* fields.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	auth := url.UserPassword(c.DBUser, c.DBPass).String()
	if c.DBPass == "" {
		auth = url.User(c.DBUser).String()
	}
	return fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable", auth, c.DBHost, c.DBPort, c.DBName)
}

func report(problems []string) string {
	var b strings.Builder
	b.WriteString("invalid environment configuration:")
	for _, p := range problems {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}
	return b.String()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
