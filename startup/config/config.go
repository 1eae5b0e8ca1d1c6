package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port              string
	DBURI             string
	AccessTokenSecret string
	Environment       string
	AllowedOrigins    []string
	AuthEnforce       bool
	RoleGuard         bool
	PaymentSecretKey  string
	PaymentAPIURL     string
	JaegerAddress     string
	LogFile           string
}

func NewConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "8000"),
		DBURI:             os.Getenv("DB_URI"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174"), ","),
		AuthEnforce:       getEnvBool("AUTH_ENFORCE", true),
		RoleGuard:         getEnvBool("ROLE_GUARD", false),
		PaymentSecretKey:  os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentAPIURL:     os.Getenv("PAYMENT_API_URL"),
		JaegerAddress:     os.Getenv("JAEGER_ADDRESS"),
		LogFile:           os.Getenv("LOG_FILE"),
	}
}

// Validate fails startup before any connection is attempted when a required
// variable is missing.
func (config *Config) Validate() error {
	if config.DBURI == "" {
		return fmt.Errorf("DB_URI environment variable is not set")
	}
	if config.AccessTokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET environment variable is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
