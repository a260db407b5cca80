package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the process reads. It is built once at startup
// and passed by reference into the components that need it.
type Config struct {
	MongoURI  string
	Database  string
	Port      string
	JWTSecret string
	JWTExpiry time.Duration

	// MQTTBroker enables the odometer ingest when non-empty.
	MQTTBroker   string
	MQTTClientID string

	LogLevel string
}

// Load builds a Config from the environment. A .env file in the working
// directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:     getEnv("MONGO_DATABASE", "fleet"),
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTExpiry:    24 * time.Hour,
		MQTTBroker:   os.Getenv("MQTT_BROKER"),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "fleet-api"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if expStr := os.Getenv("JWT_EXPIRY"); expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			cfg.JWTExpiry = parsed
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
