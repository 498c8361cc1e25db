package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adnan/news_geo_api/internal/config"
)

// defaultModel используется, если модель не задана в конфигурации.
const defaultModel = "gemini-2.5-flash"

// Extractor реализует app.PlaceExtractor: извлекает геополитические сущности
// (GPE — страны, города, регионы) из текста статьи через Gemini.
type Extractor struct {
	client GeminiClient
	model  string
}

// NewExtractor создаёт новый экземпляр экстрактора.
func NewExtractor(client GeminiClient, cfg config.Gemini) *Extractor {
	model := cfg.ModelExtraction
	if model == "" {
		model = defaultModel
	}
	return &Extractor{client: client, model: model}
}

// Extract возвращает названия мест в порядке появления в тексте.
// Дубликаты сохраняются. Ошибки модели возвращаются вызывающему —
// конвейер логирует их и считает, что мест не найдено.
func (e *Extractor) Extract(ctx context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	responseText, err := e.client.GenerateText(ctx, e.model, buildPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("generate text: %w", err)
	}

	var places []string
	if err := json.Unmarshal([]byte(responseText), &places); err != nil {
		// Пытаемся извлечь JSON из текста, если модель добавила лишнее
		cleaned := extractJSON(responseText)
		if cleaned == "" {
			return nil, fmt.Errorf("unmarshal response: %w (raw: %s)", err, responseText)
		}
		if err := json.Unmarshal([]byte(cleaned), &places); err != nil {
			return nil, fmt.Errorf("unmarshal cleaned response: %w (cleaned: %s)", err, cleaned)
		}
	}

	results := make([]string, 0, len(places))
	for _, place := range places {
		if trimmed := strings.TrimSpace(place); trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results, nil
}

func buildPrompt(text string) string {
	return fmt.Sprintf(`You are a named-entity recognizer. From the news text below, extract every geo-political entity (GPE): countries, cities, states and regions.

Rules:
- Return the surface text of each entity exactly as it appears, in order of appearance.
- Keep duplicates if an entity is mentioned more than once.
- Ignore organizations, persons, nationalities and everything that is not a GPE.
- Return ONLY a raw JSON array of strings, without markdown blocks or comments. Return [] if there are none.

Text:
%s`, text)
}

// extractJSON извлекает JSON-массив из текста ответа модели
// (отрезает markdown code blocks и окружающие комментарии).
func extractJSON(text string) string {
	if start := strings.Index(text, "```json"); start != -1 {
		rest := text[start+7:]
		if end := strings.Index(rest, "```"); end != -1 {
			text = rest[:end]
		}
	} else if start := strings.Index(text, "```"); start != -1 {
		rest := text[start+3:]
		if end := strings.Index(rest, "```"); end != -1 {
			text = rest[:end]
		}
	}

	start := strings.Index(text, "[")
	if start == -1 {
		return ""
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return strings.TrimSpace(text[start : i+1])
			}
		}
	}

	return ""
}
