package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/adnan/news_geo_api/internal/app"
	"github.com/adnan/news_geo_api/internal/config"
	"github.com/adnan/news_geo_api/internal/gemini"
	"github.com/adnan/news_geo_api/internal/geocode"
	"github.com/adnan/news_geo_api/internal/ranking"
	"github.com/adnan/news_geo_api/internal/sources"
)

// Одноразовый прогон конвейера без HTTP-сервера: собирает сегодняшние
// статьи и печатает результат в stdout как JSON. Удобен для отладки
// лент и промптов (SKIP_NER=1 / SKIP_GEOCODE=1 отключают внешние API).
func main() {
	ctx := context.Background()

	rootCfg, err := config.LoadRoot("configs/pipeline.yaml")
	if err != nil {
		log.Fatalf("load pipeline config: %v", err)
	}

	sourcesCfg, err := config.LoadSources("configs/sources.yaml")
	if err != nil {
		log.Fatalf("load sources config: %v", err)
	}

	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		log.Fatalf("load env config: %v", err)
	}

	fetchTimeout := time.Duration(rootCfg.Pipeline.FetchTimeoutSeconds) * time.Second
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	httpClient := &http.Client{Timeout: fetchTimeout}
	collector := sources.NewRSSCollector(sourcesCfg.Sources, httpClient, rootCfg.Pipeline.MaxEntriesPerFeed, time.Now)
	ranker := ranking.New(sourcesCfg.Sources)

	var extractor app.PlaceExtractor = app.NoopExtractor{}
	if !envCfg.SkipNER {
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

	aggregator := app.NewAggregator(app.AggregatorDeps{
		Collector: collector,
		Extractor: extractor,
		Geocoder:  geocoder,
		Ranker:    ranker,
		Config:    rootCfg.Pipeline,
	})

	articles := aggregator.Fetch(ctx, os.Getenv("LOCATION"))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(articles); err != nil {
		log.Fatalf("encode articles: %v", err)
	}
}
