package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Константы процесса (не настраиваются на уровне запроса).
const (
	// PostsPerPage - размер страницы любой ленты.
	PostsPerPage = 10
	// IndexCacheTTL - окно жизни кеша главной страницы.
	IndexCacheTTL = 20 * time.Second
	// TokenTTL - срок жизни JWT токена.
	TokenTTL = 72 * time.Hour
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found")
	}
}

func GetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("environment variable %s is not set", key)
	}
	return value
}

// GetEnvDefault возвращает значение переменной окружения или fallback, если она не задана.
func GetEnvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
