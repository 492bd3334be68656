package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUUID    = key("uuid")
)

type Config struct {
	Service    Service
	Session    Session
	Postgres   ReadEnvPostgres
	Logger     Logger
	Metrics    Metrics
	Platform   Platform
	Centrifuge Centrifuge
	Kafka      Kafka
	Sync       Sync
}

type Service struct {
	Port string `env:"SERVICE_PORT" env-default:"8080"`
	Name string `env:"SERVICE_NAME" env-default:"doodle-sync"`
}

// Session identifies the signed-in user the process syncs for.
type Session struct {
	UserID    string `env:"SESSION_USER_ID" env-required:"true"`
	JWTSecret string `env:"SESSION_JWT_SECRET" env-required:"true"`
}

type ReadEnvPostgres struct {
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB"`
	Host     string `env:"POSTGRES_HOST"`
	Port     string `env:"POSTGRES_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

type Centrifuge struct {
	BaseURL      string        `env:"CENTRIFUGO_BASE_URL"`
	WebsocketURL string        `env:"CENTRIFUGO_WS_URL"`
	APIKey       string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret    string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout      time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Kafka struct {
	Host         string `env:"KAFKA_HOST"`
	Port         string `env:"KAFKA_PORT"`
	ProfileTopic string `env:"PROFILE_UPDATE_TOPIC" env-default:"profile-updates"`
}

type Sync struct {
	PageSize         int           `env:"SYNC_PAGE_SIZE" env-default:"30"`
	ReconnectBackoff time.Duration `env:"SYNC_RECONNECT_BACKOFF" env-default:"2s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}
	return cfg
}
