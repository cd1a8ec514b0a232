package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	GeminiAPIKey string
	GeminiModel  string
	MaxFileSize  int64
	SessionTTL   time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on OS environment variables")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-2.0-flash"
	}

	return &Config{
		ServerPort:   serverPort,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  geminiModel,
		MaxFileSize:  10 * 1024 * 1024, // 10 MB
		SessionTTL:   30 * time.Minute,
	}
}
