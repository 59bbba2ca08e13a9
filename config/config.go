package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig           `envconfig:"APP"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	Database      DatabaseConfig      `envconfig:"DATABASE"`
	Storage       StorageConfig       `envconfig:"STORAGE"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	Paymob        PaymobConfig        `envconfig:"PAYMOB"`
	Paypal        PaypalConfig        `envconfig:"PAYPAL"`
}

type AppConfig struct {
	Name     string `envconfig:"NAME" default:"tour-backoffice"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig.URL is the only switch between the relational and the
// in-memory backend.
type DatabaseConfig struct {
	URL             string        `envconfig:"URL"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
	PingTimeout     time.Duration `envconfig:"PING_TIMEOUT" default:"5s"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"false"`
}

type StorageConfig struct {
	SeedOnStart bool `envconfig:"SEED_ON_START" default:"true"`
}

type HttpClientConfig struct {
	// Type selects the breaker: threshold, consecutive or rate.
	Type       string        `envconfig:"TYPE" default:"consecutive"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	Threshold  int64         `envconfig:"THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"RATE" default:"0.5"`
	MinSamples int64         `envconfig:"MIN_SAMPLES" default:"10"`
}

type MessageStreamConfig struct {
	AmqpURL string `envconfig:"AMQP_URL"`
}

type PaymobConfig struct {
	BaseURL       string `envconfig:"BASE_URL" default:"https://egypt.paymob.com/api"`
	APIKey        string `envconfig:"API_KEY"`
	IntegrationID string `envconfig:"INTEGRATION_ID_CARD"`
	IframeID      string `envconfig:"IFRAME_ID_CARD"`
	HmacSecret    string `envconfig:"HMAC_SECRET"`
}

type PaypalConfig struct {
	BaseURL      string `envconfig:"BASE_URL" default:"https://api-m.sandbox.paypal.com"`
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func InitConfig() *Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)
	return &cfg
}
