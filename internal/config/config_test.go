package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadRoot(t *testing.T) {
	path := writeTempFile(t, "pipeline.yaml", `
server:
  listen_addr: ":9090"
pipeline:
  max_entries_per_feed: 20
  critical_rank: 80
  most_critical_rank: 90
  reference:
    name: "Islamabad"
    lat: 33.6844
    lon: 73.0479
gemini:
  model_extraction: "gemini-2.5-flash"
geocoder:
  base_url: "https://nominatim.openstreetmap.org"
  rate_per_second: 1
`)

	cfg, err := LoadRoot(path)
	if err != nil {
		t.Fatalf("LoadRoot() error = %v", err)
	}

	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.Server.ListenAddr, ":9090")
	}
	if cfg.Pipeline.CriticalRank != 80 || cfg.Pipeline.MostCriticalRank != 90 {
		t.Errorf("thresholds = %v/%v, want 80/90", cfg.Pipeline.CriticalRank, cfg.Pipeline.MostCriticalRank)
	}
	if cfg.Pipeline.Reference.Name != "Islamabad" || cfg.Pipeline.Reference.Lat != 33.6844 {
		t.Errorf("reference = %+v, want Islamabad at 33.6844", cfg.Pipeline.Reference)
	}
	if cfg.Gemini.ModelExtraction != "gemini-2.5-flash" {
		t.Errorf("ModelExtraction = %q, want gemini-2.5-flash", cfg.Gemini.ModelExtraction)
	}
	if cfg.Geocoder.RatePerSecond != 1 {
		t.Errorf("RatePerSecond = %v, want 1", cfg.Geocoder.RatePerSecond)
	}
}

func TestLoadRoot_MissingFile(t *testing.T) {
	if _, err := LoadRoot(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("LoadRoot() error = nil, want read error")
	}
}

func TestLoadSources(t *testing.T) {
	path := writeTempFile(t, "sources.yaml", `
sources:
  - id: "dawn"
    name: "Dawn"
    url: "https://www.dawn.com/feeds/home"
    base_rank: 85
    popularity: 70
    credibility: 80
  - id: "bbc-news"
    name: "BBC News"
    url: "http://feeds.bbci.co.uk/news/rss.xml"
    base_rank: 95
    popularity: 95
    credibility: 97
`)

	cfg, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("Sources len = %v, want 2", len(cfg.Sources))
	}

	dawn := cfg.Sources[0]
	if dawn.Name != "Dawn" || dawn.BaseRank != 85 || dawn.Popularity != 70 || dawn.Credibility != 80 {
		t.Errorf("dawn = %+v, want factors 85/70/80", dawn)
	}
}

func TestLoadSources_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "sources.yaml", "sources: [unterminated")
	if _, err := LoadSources(path); err == nil {
		t.Errorf("LoadSources() error = nil, want unmarshal error")
	}
}

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SKIP_NER", "")
	t.Setenv("SKIP_GEOCODE", "1")
	t.Setenv("LISTEN_ADDR", ":9999")

	cfg, err := LoadEnvConfig()
	if err != nil {
		t.Fatalf("LoadEnvConfig() error = %v", err)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("GeminiAPIKey = %q, want %q", cfg.GeminiAPIKey, "test-key")
	}
	if cfg.SkipNER {
		t.Errorf("SkipNER = true, want false")
	}
	if !cfg.SkipGeocode {
		t.Errorf("SkipGeocode = false, want true")
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":9999")
	}
}

func TestLoadEnvConfig_RequiresKeyUnlessSkipped(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SKIP_NER", "")
	t.Setenv("SKIP_GEOCODE", "")
	t.Setenv("LISTEN_ADDR", "")

	if _, err := LoadEnvConfig(); err == nil {
		t.Errorf("LoadEnvConfig() error = nil, want missing key error")
	}

	t.Setenv("SKIP_NER", "1")
	cfg, err := LoadEnvConfig()
	if err != nil {
		t.Fatalf("LoadEnvConfig() with SKIP_NER=1 error = %v", err)
	}
	if !cfg.SkipNER {
		t.Errorf("SkipNER = false, want true")
	}
}
