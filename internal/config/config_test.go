package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api", c.APIBaseURL)
	assert.Equal(t, "userboard.db", c.DatabasePath)
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	assert.Equal(t, "userboard.db", cfg.DatabasePath)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("API_URL", "https://staging.example.com/api")
	t.Setenv("USERBOARD_DB", "/tmp/ub.db")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://staging.example.com/api", c.APIBaseURL)
	assert.Equal(t, "/tmp/ub.db", c.DatabasePath)
}

func TestParseEnv_UnsetKeepsDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://localhost:8000/api", c.APIBaseURL)
}

func TestParseJson_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"https://prod.example.com/api"}`), 0o600))

	origArgs := os.Args
	os.Args = []string{"userboard", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://prod.example.com/api", c.APIBaseURL)
	assert.Equal(t, "userboard.db", c.DatabasePath, "keys absent from the file keep their values")
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"userboard", "-a", "https://flagged.example.com", "-d", "flagged.db", "-c", "ignored.json"}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://flagged.example.com", c.APIBaseURL)
	assert.Equal(t, "flagged.db", c.DatabasePath)
}
