package config

import (
	"errors"
	"os"

	"seeds-backend/internal/app/dsn"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost     string
	ServicePort     int
	LogLevel        string
	LogFormat       string
	MaxUploadMemory int64
	Database        DatabaseConfig
	MinIO           MinIOConfig
}

type DatabaseConfig struct {
	DSN string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // base used for public object links, endpoint URL when empty
}

const (
	defaultPort            = 3000
	defaultMaxUploadMemory = 32 << 20
	defaultBucket          = "seeds"
)

var envBindings = map[string]string{
	"servicehost":     "SERVICE_HOST",
	"serviceport":     "PORT",
	"loglevel":        "LOG_LEVEL",
	"logformat":       "LOG_FORMAT",
	"maxuploadmemory": "MAX_UPLOAD_MEMORY",
	"database.dsn":    "DATABASE_DSN",
	"minio.endpoint":  "MINIO_ENDPOINT",
	"minio.accesskey": "MINIO_ACCESS_KEY",
	"minio.secretkey": "MINIO_SECRET_KEY",
	"minio.bucket":    "MINIO_BUCKET",
	"minio.usessl":    "MINIO_USE_SSL",
	"minio.publicurl": "MINIO_PUBLIC_URL",
}

// NewConfig reads an optional TOML file (config/<name>.toml or ./<name>.toml)
// and lets environment variables override it. A .env file is loaded first.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("servicehost", "")
	v.SetDefault("serviceport", defaultPort)
	v.SetDefault("loglevel", "info")
	v.SetDefault("logformat", "text")
	v.SetDefault("maxuploadmemory", defaultMaxUploadMemory)
	v.SetDefault("database.dsn", dsn.FromEnv())
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.accesskey", "")
	v.SetDefault("minio.secretkey", "")
	v.SetDefault("minio.bucket", defaultBucket)
	v.SetDefault("minio.usessl", false)
	v.SetDefault("minio.publicurl", "")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("no config file found, using defaults and environment")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}
