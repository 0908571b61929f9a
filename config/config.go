package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	SessionSecret     string
	Port              string
	UploadDir         string
	TemplateGlob      string
	AdminInitPassword string
	AllowedExtensions []string
}

// Load reads configuration from the environment. SESSION_SECRET and DB_NAME
// have no safe default and abort startup when missing.
func Load() *Config {
	cfg := &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            os.Getenv("DB_NAME"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		Port:              getEnv("PORT", "8080"),
		UploadDir:         getEnv("UPLOAD_DIR", "static/uploads"),
		TemplateGlob:      getEnv("TEMPLATE_GLOB", "templates/*.html"),
		AdminInitPassword: os.Getenv("ADMIN_INIT_PASSWORD"),
		AllowedExtensions: []string{".png", ".jpg", ".jpeg", ".gif"},
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.DBName == "" {
		log.Fatal("DB_NAME is not set")
	}

	return cfg
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
