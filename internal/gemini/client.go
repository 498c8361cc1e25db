package gemini

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient определяет интерфейс для работы с Gemini API.
// Это позволяет легко создавать моки для тестирования.
type GeminiClient interface {
	GenerateText(ctx context.Context, model string, prompt string) (string, error)
}

// Client инкапсулирует работу с Gemini API через официальный SDK.
type Client struct {
	client *genai.Client
}

// Убеждаемся, что Client реализует интерфейс GeminiClient.
var _ GeminiClient = (*Client)(nil)

// NewClient создаёт новый клиент для работы с Gemini API.
// Читает GEMINI_API_KEY из переменной окружения и явно передаёт его в SDK.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client}, nil
}

// GenerateText отправляет запрос к Gemini API и возвращает текстовый ответ.
// Повторяет только временные ошибки (429/5xx) с короткими паузами: вызов
// находится на пути HTTP-запроса, длинные ретраи здесь непозволительны.
func (c *Client) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	const maxRetries = 3
	const baseDelay = 2 * time.Second

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := baseDelay * time.Duration(attempt)
			log.Printf("Retrying Gemini API request (attempt %d/%d) after %v...", attempt+1, maxRetries, delay)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		result, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err == nil {
			text, textErr := result.Text()
			if textErr != nil {
				return "", fmt.Errorf("get text from result: %w", textErr)
			}
			return text, nil
		}

		lastErr = err
		if !isRetryableError(err.Error()) {
			return "", fmt.Errorf("generate content: %w", err)
		}
		log.Printf("Temporary error from Gemini API: %v", err)
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}

// isRetryableError проверяет, стоит ли повторять запрос (rate limit или 5xx).
func isRetryableError(errStr string) bool {
	errLower := strings.ToLower(errStr)
	return strings.Contains(errLower, "429") ||
		strings.Contains(errLower, "too many requests") ||
		strings.Contains(errLower, "resource exhausted") ||
		strings.Contains(errLower, "500") ||
		strings.Contains(errLower, "502") ||
		strings.Contains(errLower, "503") ||
		strings.Contains(errLower, "504") ||
		strings.Contains(errLower, "service unavailable") ||
		strings.Contains(errLower, "overloaded")
}
