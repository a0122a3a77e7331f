package utils

import (
	"errors"
	"os"
	"strconv"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

// Config is read from config.yaml first; environment variables with the same name win.
type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT" env:"APP_PORT"`
	AppURL           string `yaml:"APP_URL" env:"APP_URL"`
	EnableTestRoutes bool   `yaml:"ENABLE_TEST_ROUTES" env:"ENABLE_TEST_ROUTES"`
	LogDir           string `yaml:"LOG_DIR" env:"LOG_DIR"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER" env:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH" env:"DB_PATH"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET" env:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST" env:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT" env:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME" env:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL" env:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD" env:"SMTP_AUTH_PASSWORD"`

	// Object storage: "s3", "minio" or empty to disable uploads
	StorageDriver string `yaml:"STORAGE_DRIVER" env:"STORAGE_DRIVER"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`

	// MinIO configuration
	MinioEndpoint  string `yaml:"MINIO_ENDPOINT" env:"MINIO_ENDPOINT"`
	MinioAccessKey string `yaml:"MINIO_ACCESS_KEY" env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `yaml:"MINIO_SECRET_KEY" env:"MINIO_SECRET_KEY"`
	MinioBucket    string `yaml:"MINIO_BUCKET" env:"MINIO_BUCKET"`
	MinioUseSSL    bool   `yaml:"MINIO_USE_SSL" env:"MINIO_USE_SSL"`

	// Classifier
	ClassifierDelayMs int `yaml:"CLASSIFIER_DELAY_MS" env:"CLASSIFIER_DELAY_MS"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:           "8080",
		AppURL:            "http://localhost:3000",
		LogDir:            "./logs",
		DBDriver:          "postgres",
		DBPath:            "foodbridge.db",
		ClassifierDelayMs: 1000,
	}
}

// LoadConfig reads path (config.yaml when empty) and applies environment overrides.
// A missing file is not an error; the environment alone is enough to run.
func LoadConfig(path string) error {
	if path == "" {
		path = "config.yaml"
	}

	cfg := defaultConfig()
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return err
		}
	case errors.Is(err, os.ErrNotExist):
		log.Warnf("config file %s not found, using environment only", path)
	default:
		return err
	}

	if err := env.Parse(&cfg); err != nil {
		return err
	}

	config = cfg
	return nil
}

// SetConfig replaces the loaded configuration. Used by tests and the CLI flags.
func SetConfig(cfg Config) {
	config = cfg
}

func Current() Config {
	return config
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "ENABLE_TEST_ROUTES":
		return strconv.FormatBool(config.EnableTestRoutes)
	case "LOG_DIR":
		return config.LogDir
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_PATH":
		return config.DBPath
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "STORAGE_DRIVER":
		return config.StorageDriver
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "MINIO_ENDPOINT":
		return config.MinioEndpoint
	case "MINIO_ACCESS_KEY":
		return config.MinioAccessKey
	case "MINIO_SECRET_KEY":
		return config.MinioSecretKey
	case "MINIO_BUCKET":
		return config.MinioBucket
	case "MINIO_USE_SSL":
		return strconv.FormatBool(config.MinioUseSSL)
	case "CLASSIFIER_DELAY_MS":
		return strconv.Itoa(config.ClassifierDelayMs)
	default:
		return ""
	}
}
