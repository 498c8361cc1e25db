package filter

import (
	"strings"

	"github.com/adnan/news_geo_api/internal/news"
)

// ByMinRank возвращает статьи с рангом не ниже min. Это чистый пост-фильтр:
// порядок входного списка сохраняется, повторной загрузки и пересчёта рангов
// не происходит.
func ByMinRank(articles []news.Article, min int) []news.Article {
	filtered := make([]news.Article, 0, len(articles))
	for _, article := range articles {
		if article.Rank >= min {
			filtered = append(filtered, article)
		}
	}
	return filtered
}

// ClassifyRegion определяет region_type статьи относительно локации запроса.
// Пустая локация означает глобальный контекст. Совпадение ищется сначала в
// тексте самой статьи, затем в имени её источника.
func ClassifyRegion(article news.Article, location string) string {
	if strings.TrimSpace(location) == "" {
		return news.RegionGlobal
	}

	loc := strings.ToLower(location)
	text := strings.ToLower(article.Title + " " + article.Description)

	if strings.Contains(text, loc) {
		return news.RegionWithinCity
	}
	if strings.Contains(strings.ToLower(article.Source), loc) {
		return news.RegionWithinRegion
	}
	return news.RegionOther
}
