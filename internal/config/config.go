package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	// Root объединяет все конфигурационные блоки.
	Root struct {
		Server   Server   `yaml:"server"`
		Pipeline Pipeline `yaml:"pipeline"`
		Gemini   Gemini   `yaml:"gemini"`
		Geocoder Geocoder `yaml:"geocoder"`
	}

	// Server описывает параметры HTTP-сервера.
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	}

	// Pipeline описывает параметры конвейера агрегации.
	Pipeline struct {
		MaxEntriesPerFeed   int       `yaml:"max_entries_per_feed"`
		FetchTimeoutSeconds int       `yaml:"fetch_timeout_seconds"`
		CriticalRank        int       `yaml:"critical_rank"`
		MostCriticalRank    int       `yaml:"most_critical_rank"`
		Reference           Reference `yaml:"reference"`
	}

	// Reference — опорная точка, от которой считается расстояние до мест.
	Reference struct {
		Name string  `yaml:"name"`
		Lat  float64 `yaml:"lat"`
		Lon  float64 `yaml:"lon"`
	}

	// Gemini содержит настройки модели для извлечения мест.
	Gemini struct {
		ModelExtraction string `yaml:"model_extraction"`
	}

	// Geocoder содержит настройки провайдера геокодирования (Nominatim).
	Geocoder struct {
		BaseURL        string  `yaml:"base_url"`
		UserAgent      string  `yaml:"user_agent"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RatePerSecond  float64 `yaml:"rate_per_second"`
	}

	// SourcesRoot описывает список RSS-источников.
	SourcesRoot struct {
		Sources []Source `yaml:"sources"`
	}

	// Source соответствует одной записи из configs/sources.yaml.
	// Три фактора задают статический ранг источника; ранг никогда не
	// зависит от содержимого статей.
	Source struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		URL         string `yaml:"url"`
		BaseRank    int    `yaml:"base_rank"`
		Popularity  int    `yaml:"popularity"`
		Credibility int    `yaml:"credibility"`
	}
)

// LoadRoot читает основной файл конфигурации.
func LoadRoot(path string) (Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Root{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Root{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadSources читает конфиг со списком источников.
func LoadSources(path string) (SourcesRoot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SourcesRoot{}, fmt.Errorf("read sources config: %w", err)
	}

	var cfg SourcesRoot
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SourcesRoot{}, fmt.Errorf("unmarshal sources config: %w", err)
	}
	return cfg, nil
}
