// Package config loads storefront settings from the environment, an optional
// .env file and viper defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds the resolved service settings.
type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBName         string
	DBURI          string
	Store          string
	AllowedOrigins []string
	RequireOrigin  bool
	LogLevel       string
}

// Defaults registers the default value of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3001")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "27017")
	v.SetDefault("DB_NAME", "storefront")
	v.SetDefault("DB_URI", "")
	v.SetDefault("STORE", StoreMongo)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")
	v.SetDefault("CORS_REQUIRE_ORIGIN", false)
	v.SetDefault("LOG_LEVEL", "info")
}

// LoadEnvFile loads path into the process environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load resolves the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	Defaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("APP_PORT"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBName:         v.GetString("DB_NAME"),
		DBURI:          v.GetString("DB_URI"),
		Store:          strings.ToLower(v.GetString("STORE")),
		AllowedOrigins: splitList(v.GetString("CORS_ORIGINS")),
		RequireOrigin:  v.GetBool("CORS_REQUIRE_ORIGIN"),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}
	if !strings.Contains(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	if cfg.Store != StoreMongo && cfg.Store != StoreMemory {
		return nil, fmt.Errorf("unknown STORE %q (want %q or %q)", cfg.Store, StoreMongo, StoreMemory)
	}
	return cfg, nil
}

// MongoURI returns DB_URI when set, otherwise mongodb://DB_HOST:DB_PORT/DB_NAME.
func (c *Config) MongoURI() string {
	if c.DBURI != "" {
		return c.DBURI
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", c.DBHost, c.DBPort, c.DBName)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
