package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, intervals, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Expiry   ExpiryConfig
	Forecast ForecastConfig
	OpenAI   OpenAIConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// StorageConfig selects the persistence driver: "postgres" or "memory".
type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Brokers    []string      `envconfig:"KAFKA_BROKERS"`
	AlertTopic string        `envconfig:"KAFKA_ALERT_TOPIC" default:"supplier-alerts"`
	BatchDelay time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
}

type ExpiryConfig struct {
	SweepInterval time.Duration `envconfig:"EXPIRY_SWEEP_INTERVAL" default:"1m"`
	NearThreshold time.Duration `envconfig:"EXPIRY_NEAR_THRESHOLD" default:"48h"`
	LockTTL       time.Duration `envconfig:"EXPIRY_LOCK_TTL" default:"30s"`
	Disabled      bool          `envconfig:"EXPIRY_WORKER_DISABLED" default:"false"`
}

type ForecastConfig struct {
	Window            time.Duration `envconfig:"FORECAST_WINDOW" default:"720h"`
	TopN              int           `envconfig:"FORECAST_TOP_N" default:"5"`
	MinSamples        int           `envconfig:"FORECAST_MIN_SAMPLES" default:"3"`
	CacheTTL          time.Duration `envconfig:"FORECAST_CACHE_TTL" default:"5m"`
	NarrativeProvider string        `envconfig:"NARRATIVE_PROVIDER" default:"template"`
}

type OpenAIConfig struct {
	APIKey  string        `envconfig:"OPENAI_API_KEY"`
	Model   string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout time.Duration `envconfig:"OPENAI_TIMEOUT" default:"8s"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	NarrativeTemplate = "template"
	NarrativeOpenAI   = "openai"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for the %s driver", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch c.Forecast.NarrativeProvider {
	case NarrativeTemplate:
	case NarrativeOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when NARRATIVE_PROVIDER=%s", NarrativeOpenAI)
		}
	default:
		return fmt.Errorf("unknown NARRATIVE_PROVIDER %q", c.Forecast.NarrativeProvider)
	}

	if c.Forecast.TopN <= 0 {
		return fmt.Errorf("FORECAST_TOP_N must be positive")
	}
	if c.Expiry.SweepInterval <= 0 {
		return fmt.Errorf("EXPIRY_SWEEP_INTERVAL must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Storage: StorageConfig{Driver: DriverMemory},
		Kafka:   KafkaConfig{AlertTopic: "supplier-alerts"},
		Expiry: ExpiryConfig{
			SweepInterval: time.Minute,
			NearThreshold: 48 * time.Hour,
			LockTTL:       30 * time.Second,
			Disabled:      true,
		},
		Forecast: ForecastConfig{
			Window:            30 * 24 * time.Hour,
			TopN:              5,
			MinSamples:        3,
			CacheTTL:          time.Minute,
			NarrativeProvider: NarrativeTemplate,
		},
		OpenAI: OpenAIConfig{
			Model:   "gpt-4o-mini",
			Timeout: 5 * time.Second,
		},
	}
}
