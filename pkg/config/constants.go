package config

const (
	// EnvPrefix is the envconfig prefix shared by all ECOMART_* variables.
	EnvPrefix = "ecomart"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv     = "ECOMART_APP_ENV"
	EnvPort       = "ECOMART_APP_PORT"
	EnvDBDSN      = "ECOMART_DB_DSN"
	EnvDBHost     = "ECOMART_DB_HOST"
	EnvDBUser     = "ECOMART_DB_USER"
	EnvDBName     = "ECOMART_DB_NAME"
	EnvRedisURL   = "ECOMART_REDIS_URL"
	EnvJWTSecret  = "ECOMART_JWT_SECRET"
	EnvJWTIssuer  = "ECOMART_JWT_ISSUER"
	EnvJWTExpMins = "ECOMART_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
