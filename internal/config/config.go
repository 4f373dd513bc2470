package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	ArcadeAPIKey string
	ArcadeUserID string
}

func Load() *Config {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPortStr := os.Getenv("DB_PORT")
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		dbPort = 5432 // fallback
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-key-change-in-production"
	}

	return &Config{
		Port: port,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     dbPort,
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: secret,

		ArcadeAPIKey: os.Getenv("ARCADE_API_KEY"),
		ArcadeUserID: os.Getenv("ARCADE_USER_ID"),
	}
}

// ArcadeConfigured reports whether real toolkit credentials are present.
func (c *Config) ArcadeConfigured() bool {
	return c.ArcadeAPIKey != "" && c.ArcadeUserID != "" &&
		c.ArcadeAPIKey != "your_arcade_api_key_here"
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
