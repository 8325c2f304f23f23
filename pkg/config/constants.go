package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "WISHBUDDY"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Store backend selectors.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendSQL      = "sql"
	BackendMemcache = "memcache"
)

// Database drivers for the sql backend.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv  = "WISHBUDDY_APP_ENV"
	EnvDBDSN   = "WISHBUDDY_DB_DSN"
	EnvDBHost  = "WISHBUDDY_DB_HOST"
	EnvDBUser  = "WISHBUDDY_DB_USER"
	EnvDBName  = "WISHBUDDY_DB_NAME"
	EnvBackend = "WISHBUDDY_STORE_BACKEND"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
