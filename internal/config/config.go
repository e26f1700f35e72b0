package config

import (
	"os"
	"time"
)

type Config struct {
	ServerAddress string
	MongoURI      string
	MongoDatabase string
	DataDir       string
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool
	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		MongoURI:      getEnv("MONGODB_URI", getEnv("DATABASE_URL", "mongodb://localhost:27017/portfolio")),
		MongoDatabase: getEnv("MONGODB_DB", "portfolio"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-key"),
		SessionTTL:    24 * time.Hour,
		SecureCookies: getEnv("SECURE_COOKIES", "") == "true",
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "058933"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
