package geocode

import (
	"context"

	"github.com/adnan/news_geo_api/internal/news"
)

// Geocoder — кэширующая обёртка над провайдером геокодирования.
// Попадание в кэш не делает внешних вызовов; успешный ответ кэшируется
// под исходным именем. Ошибки и отсутствие результата кэш не отравляют:
// повторная попытка для того же имени разрешена.
type Geocoder struct {
	client LookupClient
	cache  *Cache
}

// New создаёт геокодер с пустым кэшем на время жизни процесса.
func New(client LookupClient) *Geocoder {
	return &Geocoder{client: client, cache: NewCache()}
}

// Geocode реализует app.Geocoder.
func (g *Geocoder) Geocode(ctx context.Context, place string) (news.Place, error) {
	if cached, ok := g.cache.Get(place); ok {
		return cached, nil
	}

	resolved, err := g.client.Lookup(ctx, place)
	if err != nil {
		return news.Place{}, err
	}

	g.cache.Put(place, resolved)
	return resolved, nil
}

// CacheLen возвращает размер кэша (используется в логах и тестах).
func (g *Geocoder) CacheLen() int {
	return g.cache.Len()
}

// Noop используется при SKIP_GEOCODE=1: любое имя считается ненайденным.
type Noop struct{}

// Geocode реализует app.Geocoder.
func (Noop) Geocode(ctx context.Context, place string) (news.Place, error) {
	return news.Place{}, ErrNoMatch
}
