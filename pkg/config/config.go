package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	OTP           OTPConfig
	Search        SearchConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"ECOMART_APP_ENV" required:"true"`
	Port         string `envconfig:"ECOMART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ECOMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ECOMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ECOMART_DB_DSN"`
	Driver string `envconfig:"ECOMART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ECOMART_DB_HOST"`
	LegacyPort     int    `envconfig:"ECOMART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ECOMART_DB_USER"`
	LegacyPassword string `envconfig:"ECOMART_DB_PASSWORD"`
	LegacyName     string `envconfig:"ECOMART_DB_NAME"`
	LegacySSLMode  string `envconfig:"ECOMART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ECOMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ECOMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ECOMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ECOMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ECOMART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ECOMART_REDIS_ADDR"`
	Password     string        `envconfig:"ECOMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"ECOMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ECOMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ECOMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ECOMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ECOMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ECOMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ECOMART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ECOMART_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"ECOMART_JWT_EXPIRATION_MINUTES" required:"true"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type OTPConfig struct {
	TTL              time.Duration `envconfig:"ECOMART_OTP_TTL" default:"5m"`
	Digits           int           `envconfig:"ECOMART_OTP_DIGITS" default:"6"`
	ArgonMemoryKB    int           `envconfig:"ECOMART_OTP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int           `envconfig:"ECOMART_OTP_ARGON_TIME" default:"3"`
	ArgonParallelism int           `envconfig:"ECOMART_OTP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int           `envconfig:"ECOMART_OTP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int           `envconfig:"ECOMART_OTP_ARGON_KEY_LEN" default:"32"`
}

type SearchConfig struct {
	DebounceWindow time.Duration `envconfig:"ECOMART_SEARCH_DEBOUNCE_WINDOW" default:"300ms"`
	HistoryLimit   int           `envconfig:"ECOMART_SEARCH_HISTORY_LIMIT" default:"10"`
}

type AuthRateLimitConfig struct {
	OTPWindow     time.Duration `envconfig:"ECOMART_AUTH_RATE_LIMIT_OTP_WINDOW" default:"1m"`
	OTPPhoneLimit int           `envconfig:"ECOMART_AUTH_RATE_LIMIT_OTP_PHONE_LIMIT" default:"3"`
	OTPIPLimit    int           `envconfig:"ECOMART_AUTH_RATE_LIMIT_OTP_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ECOMART_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
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
