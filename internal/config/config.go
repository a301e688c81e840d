package config

import (
	"os"
	"time"
)

type Config struct {
	ServerPort   string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	JudgeURL     string
	JudgeTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "arbiter"),
		DBPassword: getEnv("DB_PASSWORD", "arbiter_dev_password"),
		DBName:     getEnv("DB_NAME", "arbiter"),
		// Dev fallback only. Production deployments must set JWT_SECRET;
		// tokens signed with the fallback are forgeable.
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		JudgeURL:     getEnv("JUDGE_URL", "http://localhost:9000/judge"),
		JudgeTimeout: getEnvDuration("JUDGE_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}

	return d
}
