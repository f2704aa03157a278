package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

// DevJWTSecret is the development fallback signing key. Get refuses to fall
// back to it when GO_ENV=production.
const DevJWTSecret = "your-secret-key-change-in-production"

type EnviornmentVariable struct {
	// All variables
	GO_ENV      string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	DB_HOST     string
	DB_PORT     string
	DB_SSL_MODE string
	PORT        int
	// JWT Configuration
	JWT_SECRET      string
	JWT_EXPIRE_DAYS int
	// Redis Configuration
	REDIS_URL string
	// CORS
	ALLOWED_ORIGINS string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 5010
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "resep_DB"
	}

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "postgres"
	}

	dbSSLMode := os.Getenv("DB_SSL_MODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	goEnv := os.Getenv("GO_ENV")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		if goEnv == "production" {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		jwtSecret = DevJWTSecret
	}

	expireDays, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_DAYS"))
	if err != nil || expireDays <= 0 {
		expireDays = 7
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173"
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:      goEnv,
		DB_USER:     dbUser,
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_NAME:     dbName,
		DB_HOST:     dbHost,
		DB_PORT:     dbPort,
		DB_SSL_MODE: dbSSLMode,
		PORT:        port,
		// JWT
		JWT_SECRET:      jwtSecret,
		JWT_EXPIRE_DAYS: expireDays,
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// CORS
		ALLOWED_ORIGINS: allowedOrigins,
	}

	return envVariables, nil
}
