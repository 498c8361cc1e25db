package main

import (
	"log"
	"net/http"
	"time"

	"github.com/adnan/news_geo_api/internal/app"
	"github.com/adnan/news_geo_api/internal/config"
	"github.com/adnan/news_geo_api/internal/gemini"
	"github.com/adnan/news_geo_api/internal/geocode"
	"github.com/adnan/news_geo_api/internal/ranking"
	"github.com/adnan/news_geo_api/internal/server"
	"github.com/adnan/news_geo_api/internal/sources"
)

func main() {
	// Загружаем конфигурацию из YAML
	rootCfg, err := config.LoadRoot("configs/pipeline.yaml")
	if err != nil {
		log.Fatalf("load pipeline config: %v", err)
	}

	sourcesCfg, err := config.LoadSources("configs/sources.yaml")
	if err != nil {
		log.Fatalf("load sources config: %v", err)
	}

	// Загружаем переменные окружения (токены)
	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		log.Fatalf("load env config: %v", err)
	}

	// Инициализируем модули
	fetchTimeout := time.Duration(rootCfg.Pipeline.FetchTimeoutSeconds) * time.Second
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	httpClient := &http.Client{Timeout: fetchTimeout}
	collector := sources.NewRSSCollector(sourcesCfg.Sources, httpClient, rootCfg.Pipeline.MaxEntriesPerFeed, time.Now)
	ranker := ranking.New(sourcesCfg.Sources)

	// Инициализируем Gemini клиент только если извлечение мест включено
	var extractor app.PlaceExtractor = app.NoopExtractor{}
	if !envCfg.SkipNER {
		// Клиент явно читает GEMINI_API_KEY из переменной окружения
		geminiClient, err := gemini.NewClient()
		if err != nil {
			log.Fatalf("failed to create Gemini client: %v", err)
		}
		extractor = gemini.NewExtractor(geminiClient, rootCfg.Gemini)
	}

	var geocoder app.Geocoder = geocode.Noop{}
	if !envCfg.SkipGeocode {
		geocoder = geocode.New(geocode.NewClient(rootCfg.Geocoder))
	}

	// Создаём агрегатор
	aggregator := app.NewAggregator(app.AggregatorDeps{
		Collector: collector,
		Extractor: extractor,
		Geocoder:  geocoder,
		Ranker:    ranker,
		Config:    rootCfg.Pipeline,
	})

	// Адрес: переменная окружения перекрывает YAML
	addr := rootCfg.Server.ListenAddr
	if envCfg.ListenAddr != "" {
		addr = envCfg.ListenAddr
	}
	if addr == "" {
		addr = ":8080"
	}

	srv := server.New(aggregator, ranker, rootCfg.Pipeline)
	log.Printf("listening on %s", addr)
	if err := srv.Run(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
