package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix scopes every environment variable the service reads.
	EnvPrefix = "resto"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Stripe       StripeConfig
	Checkout     CheckoutConfig
	Cart         CartConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RESTO_APP_ENV" required:"true"`
	Port         string `envconfig:"RESTO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"RESTO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RESTO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RESTO_DB_DSN"`
	Driver string `envconfig:"RESTO_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"RESTO_DB_HOST"`
	Port     int    `envconfig:"RESTO_DB_PORT" default:"5432"`
	User     string `envconfig:"RESTO_DB_USER"`
	Password string `envconfig:"RESTO_DB_PASSWORD"`
	Name     string `envconfig:"RESTO_DB_NAME"`
	SSLMode  string `envconfig:"RESTO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RESTO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RESTO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RESTO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RESTO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"RESTO_REDIS_URL"`
	Address      string        `envconfig:"RESTO_REDIS_ADDR"`
	Password     string        `envconfig:"RESTO_REDIS_PASSWORD"`
	DB           int           `envconfig:"RESTO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RESTO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RESTO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RESTO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RESTO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RESTO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type StripeConfig struct {
	APIKey string `envconfig:"RESTO_STRIPE_API_KEY"`
	Env    string `envconfig:"RESTO_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

type CheckoutConfig struct {
	IdempotencyTTL time.Duration `envconfig:"RESTO_CHECKOUT_IDEMPOTENCY_TTL" default:"168h"`
	Description    string        `envconfig:"RESTO_CHECKOUT_DESCRIPTION" default:"Commande en ligne"`
}

type CartConfig struct {
	SessionTTL time.Duration `envconfig:"RESTO_CART_SESSION_TTL" default:"4h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"RESTO_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	for envName, value := range map[string]string{
		"RESTO_DB_HOST": db.Host,
		"RESTO_DB_USER": db.User,
		"RESTO_DB_NAME": db.Name,
	} {
		if value == "" {
			missing = append(missing, envName)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either RESTO_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
