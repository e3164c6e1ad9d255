package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Credentials holds the secrets that never live in the yaml file.
type Credentials struct {
	OzonClientID  string
	OzonApiKey    string
	TelegramToken string
}

// GetCredentials reads secrets from the environment, loading .env first
// when present.
func GetCredentials() *Credentials {
	_ = godotenv.Load()
	return &Credentials{
		OzonClientID:  getEnv("OZON_CLIENT_ID", ""),
		OzonApiKey:    getEnv("OZON_API_KEY", ""),
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}
}

func (c *Credentials) Complete() bool {
	return c.OzonClientID != "" && c.OzonApiKey != "" && c.TelegramToken != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
