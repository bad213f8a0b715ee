package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "B2B"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "B2B_DB_DSN"
	EnvDBHost = "B2B_DB_HOST"
	EnvDBUser = "B2B_DB_USER"
	EnvDBName = "B2B_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Session       SessionConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
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
	Env          string `envconfig:"B2B_APP_ENV" required:"true"`
	Port         string `envconfig:"B2B_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"B2B_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"B2B_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"B2B_DB_DSN"`
	Driver string `envconfig:"B2B_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"B2B_DB_HOST"`
	LegacyPort     int    `envconfig:"B2B_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"B2B_DB_USER"`
	LegacyPassword string `envconfig:"B2B_DB_PASSWORD"`
	LegacyName     string `envconfig:"B2B_DB_NAME"`
	LegacySSLMode  string `envconfig:"B2B_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"B2B_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"B2B_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"B2B_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"B2B_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"B2B_REDIS_URL" required:"true"`
	Address      string        `envconfig:"B2B_REDIS_ADDR"`
	Password     string        `envconfig:"B2B_REDIS_PASSWORD"`
	DB           int           `envconfig:"B2B_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"B2B_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"B2B_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"B2B_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"B2B_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"B2B_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig controls the cookie session and the signed token embedded in it.
type SessionConfig struct {
	Secret     string `envconfig:"B2B_SESSION_SECRET" required:"true"`
	Issuer     string `envconfig:"B2B_SESSION_ISSUER" default:"b2b-marketplace"`
	TTLMinutes int    `envconfig:"B2B_SESSION_TTL_MINUTES" default:"60"`
	CookieName string `envconfig:"B2B_SESSION_COOKIE_NAME" default:"b2b_session"`
	CookiePath string `envconfig:"B2B_SESSION_COOKIE_PATH" default:"/"`
	Secure     bool   `envconfig:"B2B_SESSION_COOKIE_SECURE" default:"false"`
}

// TTL returns the session lifetime configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"B2B_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"B2B_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"B2B_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"B2B_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"B2B_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"B2B_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"B2B_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"B2B_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"B2B_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"B2B_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"B2B_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"B2B_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"B2B_AUTO_MIGRATE" default:"false"`
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
