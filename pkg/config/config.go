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
	Auth          AuthConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	GoogleMaps    GoogleMapsConfig
	GCP           GCPConfig
	GCS           GCSConfig
	Photos        PhotosConfig
	Search        SearchConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = "file:lokolo.db?cache=shared"
		}
		return &cfg, nil
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LOKOLO_APP_ENV" required:"true"`
	Port         string `envconfig:"LOKOLO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LOKOLO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOKOLO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LOKOLO_DB_DSN"`
	Driver string `envconfig:"LOKOLO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LOKOLO_DB_HOST"`
	LegacyPort     int    `envconfig:"LOKOLO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LOKOLO_DB_USER"`
	LegacyPassword string `envconfig:"LOKOLO_DB_PASSWORD"`
	LegacyName     string `envconfig:"LOKOLO_DB_NAME"`
	LegacySSLMode  string `envconfig:"LOKOLO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LOKOLO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LOKOLO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LOKOLO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LOKOLO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LOKOLO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LOKOLO_REDIS_ADDR"`
	Password     string        `envconfig:"LOKOLO_REDIS_PASSWORD"`
	DB           int           `envconfig:"LOKOLO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LOKOLO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LOKOLO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LOKOLO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LOKOLO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LOKOLO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AuthConfig controls the optional bearer-token check in front of the API.
// When Secret is empty the middleware is a pass-through and identity is
// trusted from the request payload.
type AuthConfig struct {
	Secret string `envconfig:"LOKOLO_AUTH_SECRET"`
	Issuer string `envconfig:"LOKOLO_AUTH_ISSUER" default:"lokolo"`
}

func (a AuthConfig) Enabled() bool {
	return strings.TrimSpace(a.Secret) != ""
}

type AuthRateLimitConfig struct {
	SyncWindow   time.Duration `envconfig:"LOKOLO_AUTH_RATE_LIMIT_SYNC_WINDOW" default:"1m"`
	SyncUIDLimit int           `envconfig:"LOKOLO_AUTH_RATE_LIMIT_SYNC_UID_LIMIT" default:"10"`
	SyncIPLimit  int           `envconfig:"LOKOLO_AUTH_RATE_LIMIT_SYNC_IP_LIMIT" default:"30"`
}

type FeatureFlagsConfig struct {
	UseSQLite      bool `envconfig:"LOKOLO_USE_SQLITE" default:"false"`
	AutoMigrate    bool `envconfig:"LOKOLO_AUTO_MIGRATE" default:"false"`
	SyncFallback   bool `envconfig:"LOKOLO_SYNC_FALLBACK" default:"true"`
	SearchFallback bool `envconfig:"LOKOLO_SEARCH_FALLBACK" default:"true"`
}

type GoogleMapsConfig struct {
	APIKey string `envconfig:"LOKOLO_GOOGLE_MAPS_API_KEY"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"LOKOLO_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"LOKOLO_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"LOKOLO_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName string `envconfig:"LOKOLO_GCS_BUCKET_NAME" required:"true"`
}

type PhotosConfig struct {
	MaxUploadMB int `envconfig:"LOKOLO_PHOTO_MAX_UPLOAD_MB" default:"10"`
}

// SearchConfig bounds the geo search surface. Radius values are kilometers
// everywhere; the result cap applies to both entry points.
type SearchConfig struct {
	DefaultRadiusKM float64 `envconfig:"LOKOLO_SEARCH_DEFAULT_RADIUS_KM" default:"50"`
	MaxRadiusKM     float64 `envconfig:"LOKOLO_SEARCH_MAX_RADIUS_KM" default:"500"`
	ResultLimit     int     `envconfig:"LOKOLO_SEARCH_RESULT_LIMIT" default:"100"`
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
