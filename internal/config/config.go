// Package config loads the CLI's runtime settings. Sources are applied in
// order, later ones overriding earlier ones:
//
//  1. built-in defaults,
//  2. a .env file plus process environment (API_URL, USERBOARD_DB),
//  3. a JSON file named via -c/-config,
//  4. command-line flags (-a, -d).
//
// The API base URL is resolved once at startup and never re-read.
package config

// Config holds runtime settings for the userboard CLI.
type Config struct {
	// APIBaseURL is the root of the backend REST API, e.g.
	// "http://localhost:8000/api". Endpoint paths are appended verbatim.
	APIBaseURL string `env:"API_URL" json:"api_base_url"`

	// DatabasePath is the sqlite file holding local client state (the
	// persisted session token).
	DatabasePath string `env:"USERBOARD_DB" json:"database_path"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DatabasePath = "userboard.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, the JSON file (if named), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
