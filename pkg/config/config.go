package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	FeatureFlags FeatureFlagsConfig
	Cache        CacheConfig
	GCP          GCPConfig
	GCS          GCSConfig
	Media        MediaConfig
	PubSub       PubSubConfig
	Resend       ResendConfig
	Outbox       OutboxConfig
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
	Env          string `envconfig:"LUXEREALTY_APP_ENV" required:"true"`
	Port         string `envconfig:"LUXEREALTY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LUXEREALTY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LUXEREALTY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LUXEREALTY_DB_DSN"`
	Driver string `envconfig:"LUXEREALTY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LUXEREALTY_DB_HOST"`
	LegacyPort     int    `envconfig:"LUXEREALTY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LUXEREALTY_DB_USER"`
	LegacyPassword string `envconfig:"LUXEREALTY_DB_PASSWORD"`
	LegacyName     string `envconfig:"LUXEREALTY_DB_NAME"`
	LegacySSLMode  string `envconfig:"LUXEREALTY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LUXEREALTY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LUXEREALTY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LUXEREALTY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LUXEREALTY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LUXEREALTY_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LUXEREALTY_REDIS_ADDR"`
	Password     string        `envconfig:"LUXEREALTY_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUXEREALTY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUXEREALTY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUXEREALTY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUXEREALTY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUXEREALTY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LUXEREALTY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"LUXEREALTY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LUXEREALTY_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"LUXEREALTY_JWT_EXPIRATION_MINUTES" required:"true"`
}

// AccessTokenTTL returns the access token TTL configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type FeatureFlagsConfig struct {
	AutoMigrate   bool   `envconfig:"LUXEREALTY_AUTO_MIGRATE" default:"false"`
	GCSAccessMode string `envconfig:"LUXEREALTY_GCS_ACCESS_MODE" default:"public"`
}

type CacheConfig struct {
	PropertiesTTL time.Duration `envconfig:"LUXEREALTY_CACHE_PROPERTIES_TTL" default:"60s"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"LUXEREALTY_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"LUXEREALTY_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"LUXEREALTY_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName    string `envconfig:"LUXEREALTY_GCS_BUCKET_NAME" required:"true"`
	PublicBaseURL string `envconfig:"LUXEREALTY_GCS_PUBLIC_BASE_URL" default:"https://storage.googleapis.com"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"LUXEREALTY_MEDIA_MAX_UPLOAD_MB" default:"5"`
}

type PubSubConfig struct {
	NotificationTopic        string `envconfig:"LUXEREALTY_PUBSUB_NOTIFICATION_TOPIC" default:"lx-notification-events"`
	NotificationSubscription string `envconfig:"LUXEREALTY_PUBSUB_NOTIFICATION_SUBSCRIPTION" required:"true"`
}

type ResendConfig struct {
	APIKey      string `envconfig:"LUXEREALTY_RESEND_API_KEY"`
	BaseURL     string `envconfig:"LUXEREALTY_RESEND_BASE_URL" default:"https://api.resend.com"`
	DefaultFrom string `envconfig:"LUXEREALTY_RESEND_FROM" default:"Luxe Realty <onboarding@resend.dev>"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"LUXEREALTY_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"LUXEREALTY_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"LUXEREALTY_OUTBOX_MAX_ATTEMPTS" default:"10"`
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
