package sources

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/adnan/news_geo_api/internal/config"
	"github.com/adnan/news_geo_api/internal/news"
)

// defaultMaxEntries ограничивает число записей, читаемых из одной ленты.
const defaultMaxEntries = 20

// Используем браузерный User-Agent: часть лент отдаёт 403 ботам.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// tagPattern вырезает HTML-теги из описаний. Это простая зачистка тегов,
// а не полноценный разбор HTML — сущности не декодируются.
var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// RSSCollector загружает и нормализует сегодняшние статьи из настроенных RSS-лент.
type RSSCollector struct {
	sources    []config.Source
	parser     *gofeed.Parser
	maxEntries int
	clock      func() time.Time
}

// NewRSSCollector создаёт новый экземпляр.
func NewRSSCollector(sources []config.Source, client *http.Client, maxEntries int, clock func() time.Time) *RSSCollector {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if clock == nil {
		clock = time.Now
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = userAgent

	return &RSSCollector{
		sources:    sources,
		parser:     parser,
		maxEntries: maxEntries,
		clock:      clock,
	}
}

// Collect реализует app.SourceCollector: обходит источники последовательно.
// Ошибка одного источника логируется и не прерывает агрегацию — источник
// просто не даёт статей в этом запросе.
func (c *RSSCollector) Collect(ctx context.Context) ([]news.Article, error) {
	var results []news.Article
	for _, src := range c.sources {
		articles, err := c.fetchSource(ctx, src)
		if err != nil {
			log.Printf("Error fetching RSS feed for %s: %v", src.Name, err)
			continue
		}
		results = append(results, articles...)
	}
	return results, nil
}

func (c *RSSCollector) fetchSource(ctx context.Context, src config.Source) ([]news.Article, error) {
	feed, err := c.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	now := c.clock().UTC()

	// Берём только первые записи в порядке ленты; глобальная сортировка
	// происходит позже, в конвейере агрегации.
	items := feed.Items
	if len(items) > c.maxEntries {
		items = items[:c.maxEntries]
	}

	articles := make([]news.Article, 0, len(items))
	for _, item := range items {
		published := resolvePublished(item, now)
		if !sameUTCDay(published, now) {
			// Вчерашние и будущие записи молча отбрасываются
			continue
		}

		// Отсутствующие title/link остаются пустыми строками
		articles = append(articles, news.Article{
			Title:       item.Title,
			Description: stripTags(selectDescription(item)),
			URL:         item.Link,
			PublishedAt: published.UTC().Format(news.PublishedAtLayout),
			Source:      src.Name,
		})
	}

	return articles, nil
}

// resolvePublished выбирает время публикации: published → updated → сейчас.
func resolvePublished(item *gofeed.Item, fallback time.Time) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return fallback
}

// sameUTCDay сравнивает только календарные даты в UTC (граница — полночь UTC).
func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// selectDescription выбирает текст описания: summary/description ленты,
// затем полный контент, иначе пустая строка.
func selectDescription(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

func stripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
