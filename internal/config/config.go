package config

import (
	"fmt"
	"os"
	"time"
)

// Config carries everything read from the environment at startup.
// It is built once in main and passed by reference; nothing in the
// application reads os.Getenv after that.
type Config struct {
	Addr        string
	DatabaseDSN string

	GroqAPIKey  string
	GroqModel   string
	GroqURL     string
	GroqTimeout time.Duration
}

const (
	defaultModel   = "llama-3.3-70b-versatile"
	defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"
)

// Load reads the environment. An absent GROQ_API_KEY is not an error here;
// the completion call will fail at request time and be masked by the
// service layer.
func Load() *Config {
	return &Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseDSN: databaseDSN(),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqModel:   getEnv("GROQ_MODEL", defaultModel),
		GroqURL:     getEnv("GROQ_URL", defaultGroqURL),
		GroqTimeout: 30 * time.Second,
	}
}

func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
