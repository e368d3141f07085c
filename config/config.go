package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	// TrustedProxies lists proxy IPs/CIDRs whose X-Forwarded-For is believed.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB configuration.
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	DatabaseName   string        `mapstructure:"DATABASE_NAME"`
	StoreTimeout   time.Duration `mapstructure:"STORE_TIMEOUT"`
	SeedSampleData bool          `mapstructure:"SEED_SAMPLE_DATA"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Classifier configuration.
	ClassifierProvider string        `mapstructure:"CLASSIFIER_PROVIDER"`
	ClassifierLabels   string        `mapstructure:"CLASSIFIER_LABELS"`
	ClassifierCacheTTL time.Duration `mapstructure:"CLASSIFIER_CACHE_TTL"`
	GeminiAPIKey       string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel        string        `mapstructure:"GEMINI_MODEL"`

	// QueryLogMode is "direct" (background insert) or "queue" (asynq task).
	QueryLogMode string `mapstructure:"QUERY_LOG_MODE"`

	// Speech-to-text credentials; voice queries are disabled when empty.
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
}

const (
	ClassifierGemini  = "gemini"
	ClassifierKeyword = "keyword"

	QueryLogDirect = "direct"
	QueryLogQueue  = "queue"
)

// LoadConfig reads .env, config.yaml and the environment, in increasing priority.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "ai_receptionist")
	v.SetDefault("STORE_TIMEOUT", 5*time.Second)
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("CLASSIFIER_PROVIDER", ClassifierKeyword)
	v.SetDefault("CLASSIFIER_LABELS", "greeting,services,booking,hours,contact,pricing,other")
	v.SetDefault("CLASSIFIER_CACHE_TTL", 30*time.Minute)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")
	v.SetDefault("QUERY_LOG_MODE", QueryLogDirect)
	v.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.ClassifierProvider {
	case ClassifierKeyword:
	case ClassifierGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("config: GEMINI_API_KEY is required when CLASSIFIER_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("config: unknown CLASSIFIER_PROVIDER %q", c.ClassifierProvider)
	}

	switch c.QueryLogMode {
	case QueryLogDirect, QueryLogQueue:
	default:
		return fmt.Errorf("config: unknown QUERY_LOG_MODE %q", c.QueryLogMode)
	}

	if c.StoreTimeout <= 0 {
		return errors.New("config: STORE_TIMEOUT must be positive")
	}
	return nil
}

// Labels returns the classifier label space, trimmed and without blanks.
func (c *Config) Labels() []string {
	return splitList(c.ClassifierLabels)
}

// TrustedProxyList returns the configured proxies; empty means none is trusted.
func (c *Config) TrustedProxyList() []string {
	return splitList(c.TrustedProxies)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// VoiceEnabled reports whether speech-to-text credentials were configured.
func (c *Config) VoiceEnabled() bool {
	return c.GoogleServiceAccountFile != ""
}
