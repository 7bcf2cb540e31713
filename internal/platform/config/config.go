// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile      = ".env"
	defaultPort         = "8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 120 * time.Second
	defaultFetchTimeout = 5 * time.Second
	defaultDistDir      = "dist"
	defaultPublicDir    = "public"
	defaultSiteFile     = "site.yaml"
	defaultSearchLimit  = 20
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Firestore FirestoreConfig
	Content   ContentConfig
	Assets    AssetsConfig
	Search    SearchConfig
	SiteFile  string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// FirestoreConfig stores database parameters.
type FirestoreConfig struct {
	ProjectID    string
	EmulatorHost string
}

// ContentConfig controls the content fetch step.
type ContentConfig struct {
	ArticlesCollection   string
	CategoriesCollection string
	FetchTimeout         time.Duration
}

// AssetsConfig locates the built frontend output.
type AssetsConfig struct {
	DistDir   string
	PublicDir string
}

// SearchConfig controls the in-memory search index.
type SearchConfig struct {
	MaxResults      int
	RefreshInterval time.Duration
}

// Load reads the environment (after layering in the optional .env file) and
// returns the resolved configuration.
func Load() (Config, error) {
	if err := loadEnvFile(envOrDefault("ENV_FILE", defaultEnvFile)); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         resolvePort(),
			ReadTimeout:  durationEnv("SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationEnv("SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationEnv("SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Firestore: FirestoreConfig{
			ProjectID:    strings.TrimSpace(os.Getenv("FIRESTORE_PROJECT_ID")),
			EmulatorHost: strings.TrimSpace(os.Getenv("FIRESTORE_EMULATOR_HOST")),
		},
		Content: ContentConfig{
			ArticlesCollection:   envOrDefault("CONTENT_ARTICLES_COLLECTION", "articles"),
			CategoriesCollection: envOrDefault("CONTENT_CATEGORIES_COLLECTION", "categories"),
			FetchTimeout:         durationEnv("CONTENT_FETCH_TIMEOUT", defaultFetchTimeout),
		},
		Assets: AssetsConfig{
			DistDir:   envOrDefault("ASSETS_DIST_DIR", defaultDistDir),
			PublicDir: envOrDefault("ASSETS_PUBLIC_DIR", defaultPublicDir),
		},
		Search: SearchConfig{
			MaxResults:      intEnv("SEARCH_MAX_RESULTS", defaultSearchLimit),
			RefreshInterval: durationEnv("SEARCH_REFRESH_INTERVAL", 0),
		},
		SiteFile: envOrDefault("SITE_FILE", defaultSiteFile),
	}
	return cfg, nil
}

// resolvePort prefers NEWS_PORT, then Cloud Run's PORT, else the default.
func resolvePort() string {
	if p := strings.TrimSpace(os.Getenv("NEWS_PORT")); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		return p
	}
	return defaultPort
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// loadEnvFile sets KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is fine.
func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: open env file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("config: set %s: %w", key, err)
		}
	}
	return scanner.Err()
}
