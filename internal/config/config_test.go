package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir: out
seek:
  keywords: data engineer
  max_jobs: 5
`), 0o644))

	cfg := Load(path)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "data engineer", cfg.Seek.Keywords)
	assert.Equal(t, 5, cfg.Seek.MaxJobs)
	// untouched keys keep their defaults
	assert.Equal(t, "Australia", cfg.Seek.Location)
	assert.Equal(t, 1, cfg.Seek.MaxPages)
}

func TestLoadMalformedYAMLFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("seek: [not: a: mapping"), 0o644))

	cfg := Load(path)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("seek:\n  keywords: from yaml\n"), 0o644))

	t.Setenv("SEEK_KEYWORDS", "platform engineer")
	t.Setenv("SEEK_LOCATION", "  Melbourne VIC ")
	t.Setenv("SEEK_MAX_JOBS", "7")
	t.Setenv("SEEK_DATE_FILTER", "3")
	t.Setenv("LINKEDIN_TIME_FILTER", "")
	t.Setenv("SCRAPER_OUTPUT_DIR", "exports")

	cfg := Load(path)
	assert.Equal(t, "platform engineer", cfg.Seek.Keywords)
	assert.Equal(t, "Melbourne VIC", cfg.Seek.Location)
	assert.Equal(t, 7, cfg.Seek.MaxJobs)
	assert.Equal(t, "3", cfg.Seek.Recency)
	// a set-but-empty recency var clears the default filter
	assert.Equal(t, "", cfg.LinkedIn.Recency)
	assert.Equal(t, "exports", cfg.OutputDir)
}

func TestLoadIntegerClamping(t *testing.T) {
	t.Setenv("SEEK_MAX_JOBS", "0")
	t.Setenv("SEEK_MAX_PAGES", "-4")
	t.Setenv("LINKEDIN_MAX_JOBS", "many")

	cfg := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Equal(t, 1, cfg.Seek.MaxJobs)
	assert.Equal(t, 1, cfg.Seek.MaxPages)
	// unparsable keeps the default rather than clamping
	assert.Equal(t, 20, cfg.LinkedIn.MaxJobs)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 9, parseInt("", 9))
	assert.Equal(t, 9, parseInt("  ", 9))
	assert.Equal(t, 9, parseInt("abc", 9))
	assert.Equal(t, 1, parseInt("0", 9))
	assert.Equal(t, 1, parseInt("-3", 9))
	assert.Equal(t, 12, parseInt(" 12 ", 9))
}
