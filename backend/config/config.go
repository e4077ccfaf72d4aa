package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	ServerPort   string
	Env          string
	CookieDomain string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "wellness"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		CookieDomain: getEnv("COOKIE_DOMAIN", ""),
	}, nil
}

// IsProduction controls session cookie flags: Secure + SameSite=None and a
// shared cookie domain in production, Lax and host-only in development.
func (c *Config) IsProduction() bool {
	return c.Env != "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
