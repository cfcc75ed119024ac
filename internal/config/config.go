// Package config assembles the run configuration: built-in defaults, an
// optional YAML file, then environment variables (a .env file is honored).
// Environment wins. Invalid integer values never fail the run; they fall
// back to the documented defaults.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Search is one site's immutable run parameters.
type Search struct {
	Keywords string `yaml:"keywords"`
	Location string `yaml:"location"`
	// MaxJobs caps emitted records per run; MaxPages caps search pages
	// visited. Both are forced >= 1.
	MaxJobs  int `yaml:"max_jobs"`
	MaxPages int `yaml:"max_pages"`
	// Recency is a site-coded recency filter: a duration in seconds for
	// sites that take one (LinkedIn f_TPR), or the site's own coded string
	// (Seek daterange). Empty disables the filter.
	Recency string `yaml:"recency"`
}

type Config struct {
	OutputDir string `yaml:"output_dir"`
	Seek      Search `yaml:"seek"`
	LinkedIn  Search `yaml:"linkedin"`
}

// Defaults mirror the environment-variable defaults documented in the
// README: 20 jobs, 1 page, LinkedIn limited to the past day.
func Defaults() Config {
	return Config{
		OutputDir: "result",
		Seek: Search{
			Keywords: "software engineer",
			Location: "Australia",
			MaxJobs:  20,
			MaxPages: 1,
		},
		LinkedIn: Search{
			Keywords: "software engineer",
			Location: "United States",
			MaxJobs:  20,
			MaxPages: 1,
			Recency:  "86400",
		},
	}
}

// Load reads path (missing file is fine) and overlays the environment.
func Load(path string) Config {
	_ = godotenv.Load()

	cfg := Defaults()
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			log.Printf("[config] ignoring malformed %s: %v", path, err)
			cfg = Defaults()
		}
	}

	applyEnv(&cfg.Seek, "SEEK", "SEEK_DATE_FILTER")
	applyEnv(&cfg.LinkedIn, "LINKEDIN", "LINKEDIN_TIME_FILTER")
	if v := strings.TrimSpace(os.Getenv("SCRAPER_OUTPUT_DIR")); v != "" {
		cfg.OutputDir = v
	}

	clamp(&cfg.Seek)
	clamp(&cfg.LinkedIn)
	return cfg
}

func applyEnv(s *Search, prefix, recencyVar string) {
	if v := strings.TrimSpace(os.Getenv(prefix + "_KEYWORDS")); v != "" {
		s.Keywords = v
	}
	if v := strings.TrimSpace(os.Getenv(prefix + "_LOCATION")); v != "" {
		s.Location = v
	}
	s.MaxJobs = parseInt(os.Getenv(prefix+"_MAX_JOBS"), s.MaxJobs)
	s.MaxPages = parseInt(os.Getenv(prefix+"_MAX_PAGES"), s.MaxPages)
	if v, ok := os.LookupEnv(recencyVar); ok {
		s.Recency = strings.TrimSpace(v)
	}
}

// parseInt parses a positive integer, silently falling back to def on blank
// or unparsable input and clamping anything below 1.
func parseInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < 1 {
		return 1
	}
	return n
}

func clamp(s *Search) {
	if s.MaxJobs < 1 {
		s.MaxJobs = 1
	}
	if s.MaxPages < 1 {
		s.MaxPages = 1
	}
	s.Keywords = strings.TrimSpace(s.Keywords)
	s.Location = strings.TrimSpace(s.Location)
}
