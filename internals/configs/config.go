package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"ucentric_backend/internals/helpers/applog"
)

// Config dibaca sekali saat startup. Slice memakai pemisah ";" (format envdecode).
type Config struct {
	AppEnv   string `env:"APP_ENV,default=development"`
	Port     string `env:"PORT,default=3000"`
	LogLevel string `env:"LOG_LEVEL,default=info"`
	Timezone string `env:"APP_TIMEZONE,default=Asia/Jakarta"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST,default=localhost"`
	DBPort      string `env:"DB_PORT,default=5432"`
	DBUser      string `env:"DB_USER,default=postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME,default=ucentric"`
	DBSSLMode   string `env:"DB_SSLMODE,default=disable"`

	RunMigrations bool `env:"RUN_MIGRATIONS,default=true"`
	RunSeeds      bool `env:"RUN_SEEDS,default=false"`

	JWTSecret             string        `env:"JWT_SECRET"`
	JWTTTL                time.Duration `env:"JWT_TTL,default=24h"`
	TokenBlacklistTTLDays int           `env:"TOKEN_BLACKLIST_TTL_DAYS,default=7"`
	AuthzMode             string        `env:"AUTHZ_MODE,default=enforce"`
	AuthzAllowDisabled    bool          `env:"AUTHZ_UNSAFE_ALLOW_DISABLED,default=false"`

	CORSOrigins []string `env:"CORS_ORIGINS"`

	RedisURL      string        `env:"REDIS_URL"`
	MasterDataTTL time.Duration `env:"MASTER_DATA_TTL,default=1h"`
	CareersTTL    time.Duration `env:"CAREERS_TTL,default=60s"`

	KafkaBrokers           []string `env:"KAFKA_BROKERS"`
	KafkaTopicApplications string   `env:"KAFKA_TOPIC_APPLICATIONS,default=hr.applications"`
	KafkaUsername          string   `env:"KAFKA_USERNAME"`
	KafkaPassword          string   `env:"KAFKA_PASSWORD"`

	MidtransServerKey string `env:"MIDTRANS_SERVER_KEY"`
	MidtransUseProd   bool   `env:"MIDTRANS_USE_PROD,default=false"`
}

var (
	// Dipakai package lain yang belum menerima Config secara eksplisit.
	Current   Config
	JWTSecret string

	appLocation *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			applog.Log.Info("no .env file found, using system environment")
		} else {
			applog.Log.Info(".env loaded")
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}

	cfg.AuthzMode = strings.ToLower(strings.TrimSpace(cfg.AuthzMode))
	if cfg.JWTSecret == "" {
		applog.Log.Warn("JWT_SECRET is not set")
	}

	Current = cfg
	JWTSecret = cfg.JWTSecret
	appLocation = cfg.Location()
	return cfg, nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DSN prefers DATABASE_URL and falls back to the discrete DB_* keys.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

const fallbackTimezone = "Asia/Jakarta"

// Location: APP_TIMEZONE, lalu Asia/Jakarta, terakhir UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err == nil {
		return loc
	}
	applog.Log.WithError(err).Warnf("unknown APP_TIMEZONE %q, using %s", c.Timezone, fallbackTimezone)
	if loc, err := time.LoadLocation(fallbackTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// AppLocation is the timezone used for day-bounded filters (UTC before LoadEnv).
func AppLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}
	return appLocation
}
