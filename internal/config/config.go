// Package config loads runtime configuration from the environment and
// the site definition from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tidewriter/pkg/log"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultPort     = "3000"
	DefaultCacheTTL = 15 * time.Minute
	DefaultAPIURL   = "http://localhost:8000"
)

// Config holds the runtime configuration.
type Config struct {
	Port          string
	LogLevel      log.Level
	CacheTTL      time.Duration
	ContentAPIURL string
	AdminAPIKey   string
	Site          Site
}

// NavItem is one entry in the site navigation.
type NavItem struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Site describes the rendered site: identity plus navigation.
type Site struct {
	Name    string    `yaml:"name"`
	Tagline string    `yaml:"tagline"`
	BaseURL string    `yaml:"base_url"`
	Nav     []NavItem `yaml:"nav"`
}

// Load reads configuration from a .env file (if present), the
// environment, and the site YAML file at sitePath.
func Load(sitePath string) (*Config, error) {
	// .env is a development convenience; its absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          envOr("PORT", DefaultPort),
		LogLevel:      logLevelFromEnv(),
		CacheTTL:      cacheTTLFromEnv(),
		ContentAPIURL: envOr("CONTENT_API_URL", DefaultAPIURL),
		AdminAPIKey:   os.Getenv("ADMIN_API_KEY"),
	}

	site, err := loadSite(sitePath)
	if err != nil {
		return nil, err
	}
	cfg.Site = site

	return cfg, nil
}

// loadSite reads the site definition. A missing file yields the
// built-in defaults so a bare checkout still serves pages.
func loadSite(path string) (Site, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultSite(), nil
	}
	if err != nil {
		return Site{}, fmt.Errorf("reading site config: %w", err)
	}

	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("parsing site config: %w", err)
	}

	if site.Name == "" {
		site.Name = defaultSite().Name
	}
	if len(site.Nav) == 0 {
		site.Nav = defaultSite().Nav
	}

	return site, nil
}

func defaultSite() Site {
	return Site{
		Name:    "Tidewriter",
		Tagline: "A daily tale woven from weather, tides, and local news",
		BaseURL: "http://localhost:3000",
		Nav: []NavItem{
			{Label: "Today", Path: "/"},
			{Label: "Archive", Path: "/archive"},
			{Label: "About", Path: "/about"},
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logLevelFromEnv() log.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return log.Info
	}

	level, err := log.ParseLevel(raw)
	if err != nil {
		log.GlobalWarn("invalid LOG_LEVEL value, using INFO", "value", raw)
		return log.Info
	}
	return level
}

// cacheTTLFromEnv returns the chapter cache TTL from the environment or
// the default.
func cacheTTLFromEnv() time.Duration {
	ttlMinutes := os.Getenv("CACHE_TTL_MINUTES")
	if ttlMinutes == "" {
		return DefaultCacheTTL
	}

	minutes, err := strconv.Atoi(ttlMinutes)
	if err != nil || minutes <= 0 {
		log.GlobalWarn("invalid CACHE_TTL_MINUTES value, using default", "value", ttlMinutes)
		return DefaultCacheTTL
	}

	return time.Duration(minutes) * time.Minute
}
