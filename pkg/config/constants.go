package config

// EnvPrefix namespaces every Lokolo environment variable.
const EnvPrefix = "LOKOLO"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "LOKOLO_APP_ENV"
	EnvPort     = "LOKOLO_APP_PORT"
	EnvDBDSN    = "LOKOLO_DB_DSN"
	EnvDBHost   = "LOKOLO_DB_HOST"
	EnvDBUser   = "LOKOLO_DB_USER"
	EnvDBName   = "LOKOLO_DB_NAME"
	EnvRedisURL = "LOKOLO_REDIS_URL"

	EnvGCPProjectID = "LOKOLO_GCP_PROJECT_ID"
	EnvGCSBucket    = "LOKOLO_GCS_BUCKET_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
