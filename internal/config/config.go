package config // package config loads application configuration from environment variables

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Verifier backends selectable with VERIFIER.
const (
	VerifierRoomPin = "room"
	VerifierStatic  = "static"
	VerifierSQL     = "sql"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; grouped settings (rate limit, cache, AMQP,
// join throttle) have their own loaders in this package.
type Config struct {
	Env      string // application environment (e.g. "dev", "prod")
	Port     string // HTTP port to listen on
	LogLevel string // zap level name (debug, info, warn, error)

	JWTSecret    string        // secret used to sign room tokens
	RoomTokenTTL time.Duration // lifetime of host/guest room tokens

	JoinVerifyTimeout time.Duration // upper bound for one credential verification
	InviteTimeout     time.Duration // upper bound for handing an invite to the composer

	Verifier          string // "room", "static" or "sql"
	StaticCredentials string // email:credential pairs for the static verifier
	SeedDemoRooms     bool   // load the demo sections and rooms at startup

	DBUser     string // database username (sql verifier only)
	DBPass     string // database password (optional)
	DBHost     string // database host address
	DBPort     string // database port number
	DBName     string // database name
	BcryptCost int    // bcrypt cost for member credentials
}

// Load reads an optional .env file and then the environment.  Missing
// required variables are reported together in one error.
func Load() (Config, error) {
	// .env is optional; real environment variables win over file values
	_ = godotenv.Load()

	var missing []string
	must := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := Config{
		Env:               envStr("APP_ENV", "dev"),
		Port:              envStr("APP_PORT", "8080"),
		LogLevel:          envStr("LOG_LEVEL", "info"),
		JWTSecret:         must("JWT_SECRET"),
		RoomTokenTTL:      envDur("ROOM_TOKEN_TTL", 6*time.Hour),
		JoinVerifyTimeout: envDur("JOIN_VERIFY_TIMEOUT", 5*time.Second),
		InviteTimeout:     envDur("INVITE_TIMEOUT", 5*time.Second),
		Verifier:          strings.ToLower(envStr("VERIFIER", VerifierRoomPin)),
		StaticCredentials: os.Getenv("STATIC_CREDENTIALS"),
		SeedDemoRooms:     envBool("SEED_DEMO_ROOMS", true),
		DBPass:            os.Getenv("DB_PASS"),
		BcryptCost:        envInt("BCRYPT_COST", 10),
	}

	switch cfg.Verifier {
	case VerifierSQL:
		cfg.DBUser = must("DB_USER")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	case VerifierRoomPin, VerifierStatic:
	default:
		return cfg, fmt.Errorf("unknown VERIFIER %q (want %s, %s or %s)", cfg.Verifier, VerifierRoomPin, VerifierStatic, VerifierSQL)
	}

	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	if cfg.JoinVerifyTimeout <= 0 {
		cfg.JoinVerifyTimeout = 5 * time.Second
	}
	if cfg.InviteTimeout <= 0 {
		cfg.InviteTimeout = 5 * time.Second
	}
	return cfg, nil
}

// IsProd reports whether the service runs in production mode.
func (c Config) IsProd() bool {
	return c.Env == "prod" || c.Env == "production"
}
