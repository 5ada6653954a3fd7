package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docqa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
gemini:
  model: gemini-1.5-pro
  timeout: 15s
  temperature: 0.4
research:
  seed: 42
  max_parallel: 8
scraper:
  follow_links: true
  max_depth: 3
api:
  addr: 127.0.0.1:9090
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 0.4, cfg.Gemini.Temperature)
	assert.Equal(t, uint64(42), cfg.Research.Seed)
	assert.Equal(t, 8, cfg.Research.MaxParallel)
	assert.True(t, cfg.Scraper.FollowLinks)
	assert.Equal(t, 3, cfg.Scraper.MaxDepth)
	assert.Equal(t, "127.0.0.1:9090", cfg.API.Addr)

	// untouched sections keep defaults
	assert.Equal(t, Defaults().Storage, cfg.Storage)
	assert.Equal(t, 40, cfg.Gemini.TopK)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DOCQA_GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("DOCQA_RESEARCH_SEED", "7")
	t.Setenv("DOCQA_STORAGE_BUCKET", "reports")
	t.Setenv("DOCQA_SCRAPER_DELAY", "2s")
	t.Setenv("DOCQA_MCP_ROOT", "/srv/docs")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, uint64(7), cfg.Research.Seed)
	assert.Equal(t, "reports", cfg.Storage.Bucket)
	assert.Equal(t, 2*time.Second, cfg.Scraper.Delay)
	assert.Equal(t, "/srv/docs", cfg.MCP.Root)
}

func TestLoad_APIKeyEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("conventional variable", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "from-gemini")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "from-gemini", cfg.Gemini.APIKey)
	})

	t.Run("prefixed variable wins", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "from-gemini")
		t.Setenv("DOCQA_GEMINI_API_KEY", "from-docqa")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "from-docqa", cfg.Gemini.APIKey)
	})
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
