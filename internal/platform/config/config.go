package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTKey is only acceptable outside production.
const DefaultJWTKey = "clave-secreta-de-desarrollo-cambiar-en-produccion-minimo-32"

// AuthConfig holds the token issuance settings handed to the auth service.
type AuthConfig struct {
	SigningKey        string
	Issuer            string
	Audience          string
	ExpirationMinutes int
}

// Expiration returns the token lifetime.
func (a AuthConfig) Expiration() time.Duration {
	return time.Duration(a.ExpirationMinutes) * time.Minute
}

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	Auth               AuthConfig
	CORSAllowedOrigins []string
	LoginRateLimit     string // ulule/limiter format, e.g. "10-M"
	MigrationsPath     string
	RunMigrations      bool
	TimeZone           *time.Location
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_KEY", DefaultJWTKey)
	v.SetDefault("JWT_ISSUER", "SucursalesAPI")
	v.SetDefault("JWT_AUDIENCE", "SucursalesAPIUsers")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200,https://localhost:4200")
	v.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("TIME_ZONE", "Local")

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	cfg.Auth = AuthConfig{
		SigningKey:        v.GetString("JWT_KEY"),
		Issuer:            v.GetString("JWT_ISSUER"),
		Audience:          v.GetString("JWT_AUDIENCE"),
		ExpirationMinutes: v.GetInt("JWT_EXPIRATION_MINUTES"),
	}
	if cfg.Auth.SigningKey == "" {
		cfg.Auth.SigningKey = DefaultJWTKey
	}
	if cfg.Auth.SigningKey == DefaultJWTKey {
		if cfg.IsProduction {
			return nil, errors.New("JWT_KEY must be set in production")
		}
		log.Println("Warning: JWT_KEY environment variable not set. Using default insecure key.")
	}
	if cfg.Auth.ExpirationMinutes <= 0 {
		log.Printf("Warning: Invalid value for JWT_EXPIRATION_MINUTES (%d). Defaulting to 60.\n", cfg.Auth.ExpirationMinutes)
		cfg.Auth.ExpirationMinutes = 60
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return nil, errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.RunMigrations = v.GetBool("RUN_MIGRATIONS")

	tz := v.GetString("TIME_ZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: Invalid value for TIME_ZONE ('%s'). Defaulting to Local.\n", tz)
		loc = time.Local
	}
	cfg.TimeZone = loc

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
