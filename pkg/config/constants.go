package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "encuotas"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv         = "ENCUOTAS_APP_ENV"
	EnvPort           = "ENCUOTAS_APP_PORT"
	EnvDBDSN          = "ENCUOTAS_DB_DSN"
	EnvDBHost         = "ENCUOTAS_DB_HOST"
	EnvDBUser         = "ENCUOTAS_DB_USER"
	EnvDBName         = "ENCUOTAS_DB_NAME"
	EnvRedisURL       = "ENCUOTAS_REDIS_URL"
	EnvWhatsAppNumber = "ENCUOTAS_WHATSAPP_NUMBER"
	EnvLeadSinkURL    = "ENCUOTAS_LEAD_SINK_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
