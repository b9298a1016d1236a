package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"DB_HOST"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBPort     string `mapstructure:"DB_PORT"`

	ServerPort string `mapstructure:"SERVER_PORT"`

	S3AccessKeyID     string `mapstructure:"AWS_ACCESS_KEY"`
	S3SecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `mapstructure:"AWS_REGION"`
	S3BucketName      string `mapstructure:"AWS_S3_BUCKET_NAME"`
	// S3Endpoint is optional; set it for MinIO or another S3-compatible store.
	S3Endpoint string `mapstructure:"AWS_S3_ENDPOINT"`

	CORSAllowedOrigin string `mapstructure:"CORS_ALLOWED_ORIGIN"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.DBHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}

	if cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	if cfg.DBPort == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}

	if cfg.ServerPort == "" {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	if cfg.S3AccessKeyID == "" {
		return nil, fmt.Errorf("AWS_ACCESS_KEY is required")
	}

	if cfg.S3SecretAccessKey == "" {
		return nil, fmt.Errorf("AWS_SECRET_ACCESS_KEY is required")
	}

	if cfg.S3Region == "" {
		return nil, fmt.Errorf("AWS_REGION is required")
	}

	if cfg.S3BucketName == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET_NAME is required")
	}

	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = "*"
	}

	return &cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
