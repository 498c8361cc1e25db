package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adnan/news_geo_api/internal/config"
	"github.com/adnan/news_geo_api/internal/filter"
	"github.com/adnan/news_geo_api/internal/news"
)

const (
	defaultCriticalRank     = 80
	defaultMostCriticalRank = 90
)

// NewsProvider отдаёт агрегированный список сегодняшних статей.
type NewsProvider interface {
	Fetch(ctx context.Context, location string) []news.Article
}

// SourceLister отдаёт настроенные источники с их рангами.
type SourceLister interface {
	Sources() []news.SourceInfo
}

// Server — HTTP-слой поверх агрегатора. Все эндпоинты только читают:
// сервер не хранит состояния между запросами.
type Server struct {
	engine           *gin.Engine
	provider         NewsProvider
	lister           SourceLister
	criticalRank     int
	mostCriticalRank int
}

// New создаёт сервер и регистрирует маршруты.
func New(provider NewsProvider, lister SourceLister, cfg config.Pipeline) *Server {
	critical := cfg.CriticalRank
	if critical <= 0 {
		critical = defaultCriticalRank
	}
	mostCritical := cfg.MostCriticalRank
	if mostCritical <= 0 {
		mostCritical = defaultMostCriticalRank
	}

	s := &Server{
		engine:           gin.New(),
		provider:         provider,
		lister:           lister,
		criticalRank:     critical,
		mostCriticalRank: mostCritical,
	}
	s.engine.Use(gin.Logger(), gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/healthz", s.handleHealthz)
	s.engine.GET("/news/all", s.handleNews(0))
	s.engine.GET("/news/critical", s.handleNews(s.criticalRank))
	s.engine.GET("/news/most_critical", s.handleNews(s.mostCriticalRank))
	s.engine.GET("/news/sources", s.handleSources)
}

// Run запускает сервер и блокируется до его завершения.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// ServeHTTP реализует http.Handler, что позволяет тестировать сервер
// через httptest без открытия порта.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "News RSS Feed API with AI-powered Location Extraction",
		"endpoints": gin.H{
			"/news/all":           "Get all news articles",
			"/news/critical":      "Get critical news (rank >= 80)",
			"/news/most_critical": "Get most critical news (rank >= 90)",
			"/news/sources":       "Get configured sources with ranks",
		},
		"sources": s.sourceNames(),
	})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleNews возвращает обработчик списка новостей с минимальным рангом.
// minRank == 0 отдаёт все сегодняшние статьи без порога.
func (s *Server) handleNews(minRank int) gin.HandlerFunc {
	return func(c *gin.Context) {
		location := c.Query("location")

		articles := s.provider.Fetch(c.Request.Context(), location)
		if minRank > 0 {
			articles = filter.ByMinRank(articles, minRank)
		}

		c.JSON(http.StatusOK, gin.H{
			"news":     articles,
			"total":    len(articles),
			"location": location,
			"sources":  s.sourceNames(),
		})
	}
}

func (s *Server) handleSources(c *gin.Context) {
	sources := s.lister.Sources()
	c.JSON(http.StatusOK, gin.H{
		"sources": sources,
		"total":   len(sources),
	})
}

func (s *Server) sourceNames() []string {
	sources := s.lister.Sources()
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name)
	}
	return names
}
