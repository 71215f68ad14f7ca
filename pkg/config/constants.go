package config

// EnvPrefix is passed to envconfig; explicit tags on every field keep the
// variable names greppable anyway.
const EnvPrefix = "LUXEREALTY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and ops tooling.
const (
	EnvAppEnv   = "LUXEREALTY_APP_ENV"
	EnvPort     = "LUXEREALTY_APP_PORT"
	EnvLogLevel = "LUXEREALTY_LOG_LEVEL"

	EnvDBDSN  = "LUXEREALTY_DB_DSN"
	EnvDBHost = "LUXEREALTY_DB_HOST"
	EnvDBUser = "LUXEREALTY_DB_USER"
	EnvDBName = "LUXEREALTY_DB_NAME"

	EnvRedisURL = "LUXEREALTY_REDIS_URL"

	EnvJWTSecret  = "LUXEREALTY_JWT_SECRET"
	EnvJWTIssuer  = "LUXEREALTY_JWT_ISSUER"
	EnvJWTExpMins = "LUXEREALTY_JWT_EXPIRATION_MINUTES"

	EnvGCPProjectID = "LUXEREALTY_GCP_PROJECT_ID"
	EnvGCSBucket    = "LUXEREALTY_GCS_BUCKET_NAME"

	EnvPubSubNotificationTopic = "LUXEREALTY_PUBSUB_NOTIFICATION_TOPIC"
	EnvPubSubNotificationSub   = "LUXEREALTY_PUBSUB_NOTIFICATION_SUBSCRIPTION"

	EnvResendAPIKey = "LUXEREALTY_RESEND_API_KEY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
