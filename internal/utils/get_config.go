package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppEnv      string `yaml:"APP_ENV"`
	AppURL      string `yaml:"APP_URL"`
	AppPort     string `yaml:"PORT"`
	AppTimezone string `yaml:"APP_TIMEZONE"`
	CORSOrigin  string `yaml:"CORS_ORIGIN"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// Session
	JWTSecret  string `yaml:"JWT_SECRET"`
	CookieName string `yaml:"COOKIE_NAME"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Midtrans configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	IsProd    string `yaml:"IS_PROD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Google sign-in
	GoogleClientID     string `yaml:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `yaml:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `yaml:"GOOGLE_REDIRECT_URL"`
}

var (
	config Config

	defaults = map[string]string{
		"APP_ENV":      "development",
		"PORT":         "8080",
		"APP_TIMEZONE": "America/Bogota",
		"CORS_ORIGIN":  "http://localhost:3000",
		"APP_URL":      "http://localhost:3000",
		"DB_PORT":      "5432",
		"DB_SSLMODE":   "disable",
		"COOKIE_NAME":  "frescoguard_session",
		"IS_PROD":      "false",
	}

	requiredKeys = []string{"DB_HOST", "DB_USER", "DB_NAME", "JWT_SECRET"}
)

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_ENV":              &c.AppEnv,
		"APP_URL":              &c.AppURL,
		"PORT":                 &c.AppPort,
		"APP_TIMEZONE":         &c.AppTimezone,
		"CORS_ORIGIN":          &c.CORSOrigin,
		"DB_USER":              &c.DBUser,
		"DB_NAME":              &c.DBName,
		"DB_PASSWORD":          &c.DBPassword,
		"DB_PORT":              &c.DBPort,
		"DB_HOST":              &c.DBHost,
		"DB_SSLMODE":           &c.DBSSLMode,
		"JWT_SECRET":           &c.JWTSecret,
		"COOKIE_NAME":          &c.CookieName,
		"SMTP_HOST":            &c.SMTPHost,
		"SMTP_PORT":            &c.SMTPPort,
		"SMTP_SENDER_NAME":     &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":      &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":   &c.SMTPAuthPassword,
		"CLIENT_KEY":           &c.ClientKey,
		"SERVER_KEY":           &c.ServerKey,
		"IS_PROD":              &c.IsProd,
		"AWS_S3_BUCKET":        &c.AWSS3Bucket,
		"AWS_S3_REGION":        &c.AWSS3Region,
		"AWS_ACCESS_KEY":       &c.AWSAccessKey,
		"AWS_SECRET_KEY":       &c.AWSSecretKey,
		"GOOGLE_CLIENT_ID":     &c.GoogleClientID,
		"GOOGLE_CLIENT_SECRET": &c.GoogleClientSecret,
		"GOOGLE_REDIRECT_URL":  &c.GoogleRedirectURL,
	}
}

// LoadConfig resolves every key from config.yaml, then .env, then the process
// environment. Later sources win.
func LoadConfig() {
	loaded := Config{}

	file, err := os.ReadFile("config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(file, &loaded); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error reading YAML file: %s\n", err)
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error reading .env file: %s\n", err)
	}

	for key, value := range loaded.fields() {
		if env, ok := os.LookupEnv(key); ok {
			*value = env
		}
		if *value == "" {
			*value = defaults[key]
		}
	}

	config = loaded
}

// ValidateConfig reports every required key that resolved to an empty value.
func ValidateConfig() error {
	var missing []string
	for _, key := range requiredKeys {
		if GetConfig(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}

func GetConfig(key string) string {
	if value, ok := config.fields()[key]; ok {
		return *value
	}
	return ""
}

func GetConfigBool(key string) bool {
	switch strings.ToLower(GetConfig(key)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func IsProduction() bool {
	return strings.EqualFold(GetConfig("APP_ENV"), "production")
}
