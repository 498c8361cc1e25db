package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/adnan/news_geo_api/internal/config"
	"github.com/adnan/news_geo_api/internal/news"
)

// ErrNoMatch возвращается, когда провайдер не нашёл место по имени.
var ErrNoMatch = errors.New("no geocoding match")

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "news_geo_api"
	defaultTimeout   = 30 * time.Second
)

// LookupClient определяет контракт внешнего провайдера геокодирования.
type LookupClient interface {
	Lookup(ctx context.Context, place string) (news.Place, error)
}

// Client — клиент Nominatim. Каждый внешний вызов проходит через лимитер
// (по умолчанию 1 запрос в секунду) — так выдерживается пауза, которую
// требует политика провайдера, без инлайновых time.Sleep.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// Убеждаемся, что Client реализует интерфейс LookupClient.
var _ LookupClient = (*Client)(nil)

// NewClient создаёт клиента из конфигурации, подставляя дефолты.
func NewClient(cfg config.Geocoder) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	rps := cfg.RatePerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// nominatimResult — одна запись ответа /search. Координаты приходят строками.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Lookup выполняет один внешний запрос к провайдеру.
func (c *Client) Lookup(ctx context.Context, place string) (news.Place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return news.Place{}, err
	}

	params := url.Values{}
	params.Set("q", place)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return news.Place{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return news.Place{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return news.Place{}, fmt.Errorf("geocoder status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return news.Place{}, fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return news.Place{}, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return news.Place{}, fmt.Errorf("parse lat %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return news.Place{}, fmt.Errorf("parse lon %q: %w", results[0].Lon, err)
	}

	// Место хранится под исходным именем запроса, а не display_name провайдера
	return news.Place{Name: place, Lat: lat, Lon: lon}, nil
}
