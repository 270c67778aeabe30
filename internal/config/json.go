package config

import (
	"encoding/json"
	"os"

	"github.com/aliaa11/userboard/internal/flagx"
)

// parseJson overlays Config with values from a JSON file.
//
// The file path comes from the -c/-config flags via flagx.JsonConfigFlags;
// when neither flag is present nothing is loaded. Only keys present in the
// file override the current values. Read or unmarshal errors panic, since a
// config file that was explicitly named but cannot be used is not worth
// continuing from.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc struct {
		APIBaseURL   *string `json:"api_base_url"`
		DatabasePath *string `json:"database_path"`
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
}
