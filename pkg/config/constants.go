package config

const EnvPrefix = "CATALOG"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	StoreBackendRedis  = "redis"
	StoreBackendDB     = "db"
	StoreBackendMemory = "memory"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

const (
	EnvAppEnv       = "CATALOG_APP_ENV"
	EnvPort         = "CATALOG_APP_PORT"
	EnvRedisURL     = "CATALOG_REDIS_URL"
	EnvRedisAddr    = "CATALOG_REDIS_ADDR"
	EnvDBDSN        = "CATALOG_DB_DSN"
	EnvDBDriver     = "CATALOG_DB_DRIVER"
	EnvStoreBackend = "CATALOG_STORE_BACKEND"
	EnvStoreKey     = "CATALOG_STORE_KEY"
)
