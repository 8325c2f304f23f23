package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Redis    RedisConfig
	DB       DBConfig
	Memcache MemcacheConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	if cfg.Store.Backend == BackendSQL {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WISHBUDDY_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"WISHBUDDY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WISHBUDDY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects the key-value backend behind the document store.
type StoreConfig struct {
	Backend   string `envconfig:"WISHBUDDY_STORE_BACKEND" default:"memory"`
	Database  string `envconfig:"WISHBUDDY_STORE_DATABASE" default:"wishlist-buddy"`
	Namespace string `envconfig:"WISHBUDDY_STORE_NAMESPACE" default:"wb"`
}

func (s StoreConfig) validate() error {
	switch s.Backend {
	case BackendMemory, BackendRedis, BackendSQL, BackendMemcache:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", s.Backend)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"WISHBUDDY_REDIS_URL"`
	Address      string        `envconfig:"WISHBUDDY_REDIS_ADDR"`
	Password     string        `envconfig:"WISHBUDDY_REDIS_PASSWORD"`
	DB           int           `envconfig:"WISHBUDDY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WISHBUDDY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WISHBUDDY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WISHBUDDY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WISHBUDDY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WISHBUDDY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	DSN    string `envconfig:"WISHBUDDY_DB_DSN"`
	Driver string `envconfig:"WISHBUDDY_DB_DRIVER" default:"sqlite"`

	LegacyHost     string `envconfig:"WISHBUDDY_DB_HOST"`
	LegacyPort     int    `envconfig:"WISHBUDDY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WISHBUDDY_DB_USER"`
	LegacyPassword string `envconfig:"WISHBUDDY_DB_PASSWORD"`
	LegacyName     string `envconfig:"WISHBUDDY_DB_NAME"`
	LegacySSLMode  string `envconfig:"WISHBUDDY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WISHBUDDY_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"WISHBUDDY_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"WISHBUDDY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WISHBUDDY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type MemcacheConfig struct {
	Addrs []string `envconfig:"WISHBUDDY_MEMCACHE_ADDRS" default:"127.0.0.1:11211"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.Driver == DriverSQLite {
		db.DSN = "file:wishlist-buddy.db"
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
