// Package site holds the static identity of the publication: names, URLs,
// social handles, locale and the keyword tables used to enrich generated
// metadata. Everything here is a fallback value; per-page metadata always
// wins when the content record supplies its own.
package site

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the site identity consumed by the SEO generators and the
// document assembler.
type Config struct {
	Name        string `yaml:"name"`
	Tagline     string `yaml:"tagline"`
	Description string `yaml:"description"`
	Origin      string `yaml:"origin"`
	LogoPath    string `yaml:"logo_path"`
	Locale      string `yaml:"locale"`
	Language    string `yaml:"language"`
	TwitterSite string `yaml:"twitter_site"`
	FacebookURL string `yaml:"facebook_url"`
	Region      string `yaml:"region"`
	Placename   string `yaml:"placename"`
	Latitude    string `yaml:"latitude"`
	Longitude   string `yaml:"longitude"`
}

// Default returns the built-in identity for the publication.
func Default() Config {
	return Config{
		Name:        "Moradabad News",
		Tagline:     "Latest News from Moradabad, UP, India & World",
		Description: "Moradabad News brings you the latest news from Moradabad, Uttar Pradesh, India and around the world. Local coverage, current affairs, jobs and more.",
		Origin:      "https://moradabadnews.in",
		LogoPath:    "/logo.png",
		Locale:      "hi_IN",
		Language:    "hi",
		TwitterSite: "@moradabadnews",
		FacebookURL: "https://www.facebook.com/moradabadnews",
		Region:      "IN-UP",
		Placename:   "Moradabad",
		Latitude:    "28.8386",
		Longitude:   "78.7733",
	}
}

// Load returns the default identity, overridden field-by-field from the YAML
// file at path when it exists. A missing file is not an error; a malformed
// one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LogoURL returns the absolute URL of the site logo.
func (c Config) LogoURL() string {
	return c.AbsoluteURL(c.LogoPath)
}

// AbsoluteURL resolves a possibly relative path against the site origin.
// Absolute URLs pass through unchanged.
func (c Config) AbsoluteURL(p string) string {
	if p == "" {
		return c.Origin
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(c.Origin, "/") + p
}
