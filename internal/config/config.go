package config

import (
	"strings"
	"time"

	"github.com/SeakMengs/MaintCert/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	DB          DatabaseConfig
	RateLimiter RateLimiterConfig
	Auth        AuthConfig
	Certificate CertificateConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET     string
	AccessTokenTTL time.Duration
}

type DatabaseConfig struct {
	// postgres or sqlite
	DRIVER       string
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	SQLITE_PATH  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type CertificateConfig struct {
	// How many fresh draws the code generator may try before giving up
	MaxCodeAttempts int
	// How many times a creation transaction is replayed after a unique conflict
	MaxCreateAttempts int
	// How many certificate numbers already held by existing rows may be skipped in one creation
	MaxNumberSkips int
	// Public url of the validation page, %s is replaced with the validation code
	ValidationURLPattern string
	QRCodeSize           int
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		DB: DatabaseConfig{
			DRIVER:       env.GetString("DB_DRIVER", "postgres"),
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "certificados_db"),
			SQLITE_PATH:  env.GetString("DB_SQLITE_PATH", "maintcert.sqlite"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// The public validation endpoint is the main brute-force surface, keep the default tight
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 60),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Auth: AuthConfig{
			JWT_SECRET:     env.GetString("AUTH_JWT_SECRET", ""),
			AccessTokenTTL: env.GetDuration("AUTH_ACCESS_TOKEN_TTL", 8*time.Hour),
		},
		Certificate: CertificateConfig{
			MaxCodeAttempts:      env.GetInt("CERT_MAX_CODE_ATTEMPTS", 10),
			MaxCreateAttempts:    env.GetInt("CERT_MAX_CREATE_ATTEMPTS", 3),
			MaxNumberSkips:       env.GetInt("CERT_MAX_NUMBER_SKIPS", 100),
			ValidationURLPattern: env.GetString("CERT_VALIDATION_URL_PATTERN", "http://localhost:8080/validate.html?code=%s"),
			QRCodeSize:           env.GetInt("CERT_QR_CODE_SIZE", 256),
		},
	}
}
