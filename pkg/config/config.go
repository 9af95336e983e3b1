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
	Cart         CartConfig
	WhatsApp     WhatsAppConfig
	LeadSink     LeadSinkConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.WhatsApp.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ENCUOTAS_APP_ENV" required:"true"`
	Port         string `envconfig:"ENCUOTAS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ENCUOTAS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ENCUOTAS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ENCUOTAS_DB_DSN"`
	Driver string `envconfig:"ENCUOTAS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ENCUOTAS_DB_HOST"`
	LegacyPort     int    `envconfig:"ENCUOTAS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ENCUOTAS_DB_USER"`
	LegacyPassword string `envconfig:"ENCUOTAS_DB_PASSWORD"`
	LegacyName     string `envconfig:"ENCUOTAS_DB_NAME"`
	LegacySSLMode  string `envconfig:"ENCUOTAS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ENCUOTAS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ENCUOTAS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ENCUOTAS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ENCUOTAS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ENCUOTAS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ENCUOTAS_REDIS_ADDR"`
	Password     string        `envconfig:"ENCUOTAS_REDIS_PASSWORD"`
	DB           int           `envconfig:"ENCUOTAS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ENCUOTAS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ENCUOTAS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ENCUOTAS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ENCUOTAS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ENCUOTAS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"ENCUOTAS_CART_SNAPSHOT_TTL" default:"720h"`
}

type WhatsAppConfig struct {
	Host   string `envconfig:"ENCUOTAS_WHATSAPP_HOST" default:"wa.me"`
	Number string `envconfig:"ENCUOTAS_WHATSAPP_NUMBER" required:"true"`
}

func (w WhatsAppConfig) validate() error {
	number := strings.TrimPrefix(strings.TrimSpace(w.Number), "+")
	if number == "" {
		return fmt.Errorf("%s is required", EnvWhatsAppNumber)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return fmt.Errorf("%s must contain digits only", EnvWhatsAppNumber)
		}
	}
	return nil
}

// DestinationNumber returns the configured number without the leading plus,
// the form wa.me links expect.
func (w WhatsAppConfig) DestinationNumber() string {
	return strings.TrimPrefix(strings.TrimSpace(w.Number), "+")
}

type LeadSinkConfig struct {
	URL     string        `envconfig:"ENCUOTAS_LEAD_SINK_URL"`
	Timeout time.Duration `envconfig:"ENCUOTAS_LEAD_SINK_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"ENCUOTAS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ENCUOTAS_AUTO_MIGRATE" default:"false"`
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
