package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	sessionSecretEnvKey = "SESSION_SECRET"
	sessionTTLEnvKey    = "SESSION_TTL"
	secureCookiesEnvKey = "SECURE_COOKIES"
	bcryptCostEnvKey    = "BCRYPT_COST"
	logLevelEnvKey      = "LOG_LEVEL"
)

const defaultSessionTTL = 24 * time.Hour

type App struct {
	Port            string
	DBConnectionURL string
	SessionSecret   string
	SessionTTL      time.Duration
	SecureCookies   bool
	BcryptCost      int
	LogLevel        zapcore.Level
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok || sessionSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	app := App{
		Port:            port,
		DBConnectionURL: dbConn,
		SessionSecret:   sessionSecret,
		SessionTTL:      defaultSessionTTL,
		BcryptCost:      bcrypt.DefaultCost,
		LogLevel:        zapcore.InfoLevel,
	}

	if ttl, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", sessionTTLEnvKey, err)
		}
		if d <= 0 {
			return App{}, fmt.Errorf("%s must be positive, got %s", sessionTTLEnvKey, ttl)
		}
		app.SessionTTL = d
	}

	if secure, ok := os.LookupEnv(secureCookiesEnvKey); ok {
		b, err := strconv.ParseBool(secure)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", secureCookiesEnvKey, err)
		}
		app.SecureCookies = b
	}

	if cost, ok := os.LookupEnv(bcryptCostEnvKey); ok {
		c, err := strconv.Atoi(cost)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", bcryptCostEnvKey, err)
		}
		if c < bcrypt.MinCost || c > bcrypt.MaxCost {
			return App{}, fmt.Errorf("%s out of range [%d, %d]: %d", bcryptCostEnvKey, bcrypt.MinCost, bcrypt.MaxCost, c)
		}
		app.BcryptCost = c
	}

	if level, ok := os.LookupEnv(logLevelEnvKey); ok {
		l, err := zapcore.ParseLevel(level)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", logLevelEnvKey, err)
		}
		app.LogLevel = l
	}

	return app, nil
}
