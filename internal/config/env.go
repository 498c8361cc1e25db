package config

import (
	"fmt"
	"os"
)

// EnvConfig содержит токены и другие переменные окружения.
type EnvConfig struct {
	GeminiAPIKey string
	SkipNER      bool   // Пропустить извлечение мест (статьи остаются без обогащения)
	SkipGeocode  bool   // Пропустить геокодирование (места извлекаются, но без координат)
	ListenAddr   string // Переопределяет server.listen_addr из YAML
}

// LoadEnvConfig читает переменные окружения и возвращает конфигурацию.
// Возвращает ошибку, если обязательные переменные отсутствуют или пустые.
func LoadEnvConfig() (*EnvConfig, error) {
	skipNER := os.Getenv("SKIP_NER") == "1"
	skipGeocode := os.Getenv("SKIP_GEOCODE") == "1"

	// GEMINI_API_KEY обязателен только если извлечение мест включено
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if !skipNER && geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required (or set SKIP_NER=1)")
	}

	return &EnvConfig{
		GeminiAPIKey: geminiKey,
		SkipNER:      skipNER,
		SkipGeocode:  skipGeocode,
		ListenAddr:   os.Getenv("LISTEN_ADDR"),
	}, nil
}
