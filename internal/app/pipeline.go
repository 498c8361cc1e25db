package app

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/adnan/news_geo_api/internal/config"
	"github.com/adnan/news_geo_api/internal/filter"
	"github.com/adnan/news_geo_api/internal/geo"
	"github.com/adnan/news_geo_api/internal/geocode"
	"github.com/adnan/news_geo_api/internal/news"
	"github.com/adnan/news_geo_api/internal/ranking"
)

// ErrNotConfigured возвращается, когда агрегатор собран без обязательных зависимостей.
var ErrNotConfigured = errors.New("aggregator dependencies not configured")

// SourceCollector агрегирует сегодняшние статьи из настроенных RSS-источников.
type SourceCollector interface {
	Collect(ctx context.Context) ([]news.Article, error)
}

// PlaceExtractor извлекает геополитические сущности из текста статьи.
type PlaceExtractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

// Geocoder превращает название места в координаты.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (news.Place, error)
}

// NoopExtractor используется при SKIP_NER=1: статьи остаются без мест.
type NoopExtractor struct{}

// Extract реализует PlaceExtractor.
func (NoopExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	return nil, nil
}

// AggregatorDeps перечисляет зависимости агрегатора.
type AggregatorDeps struct {
	Collector SourceCollector
	Extractor PlaceExtractor
	Geocoder  Geocoder
	Ranker    *ranking.Ranker
	Config    config.Pipeline
}

// Aggregator исполняет полный конвейер запроса:
// сбор → обогащение местами → ранжирование → классификация → сортировка.
// Все этапы строго последовательны; параллельной загрузки лент нет.
type Aggregator struct {
	collector SourceCollector
	extractor PlaceExtractor
	geocoder  Geocoder
	ranker    *ranking.Ranker
	cfg       config.Pipeline
}

// NewAggregator создаёт новый экземпляр агрегатора.
func NewAggregator(deps AggregatorDeps) *Aggregator {
	return &Aggregator{
		collector: deps.Collector,
		extractor: deps.Extractor,
		geocoder:  deps.Geocoder,
		ranker:    deps.Ranker,
		cfg:       deps.Config,
	}
}

// Fetch возвращает обогащённый, отранжированный и отсортированный список
// сегодняшних статей по всем источникам. Ошибки отдельных этапов логируются
// и не доходят до HTTP-слоя: результат — всегда (возможно пустой) список.
func (a *Aggregator) Fetch(ctx context.Context, location string) []news.Article {
	if err := a.validateDeps(); err != nil {
		log.Printf("aggregator misconfigured: %v", err)
		return []news.Article{}
	}

	collected, err := a.collector.Collect(ctx)
	if err != nil {
		log.Printf("collect articles: %v", err)
		collected = nil
	}
	log.Printf("Collected %d articles for today", len(collected))

	results := make([]news.Article, 0, len(collected))
	for _, article := range collected {
		// Сначала обогащение местами, затем ранг и region_type
		article.Places = a.enrich(ctx, article)
		article.Rank = a.ranker.Rank(article.Source)
		article.RegionType = filter.ClassifyRegion(article, location)
		results = append(results, article)
	}

	sortArticles(results)
	return results
}

// enrich извлекает места из текста статьи и геокодирует каждое.
// Сбой геокодирования одного места не отменяет остальные; сбой извлечения
// оставляет статью без мест.
func (a *Aggregator) enrich(ctx context.Context, article news.Article) []news.Place {
	names, err := a.extractor.Extract(ctx, article.Title+" "+article.Description)
	if err != nil {
		log.Printf("Extract places for %q: %v", article.Title, err)
		return []news.Place{}
	}

	places := make([]news.Place, 0, len(names))
	for _, name := range names {
		place, err := a.geocoder.Geocode(ctx, name)
		if err != nil {
			if !errors.Is(err, geocode.ErrNoMatch) {
				log.Printf("Geocoding error for %s: %v", name, err)
			}
			continue
		}

		place.Radius = geo.Distance(place.Lat, place.Lon, a.cfg.Reference.Lat, a.cfg.Reference.Lon)
		places = append(places, place)
	}
	return places
}

func (a *Aggregator) validateDeps() error {
	switch {
	case a.collector == nil,
		a.extractor == nil,
		a.geocoder == nil,
		a.ranker == nil:
		return ErrNotConfigured
	default:
		return nil
	}
}

// sortArticles упорядочивает статьи: ранг по убыванию, при равных рангах —
// publishedAt по возрастанию (лексикографически, что для ISO-8601 в UTC
// совпадает с хронологией).
func sortArticles(articles []news.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].Rank != articles[j].Rank {
			return articles[i].Rank > articles[j].Rank
		}
		return articles[i].PublishedAt < articles[j].PublishedAt
	})
}
