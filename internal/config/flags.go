package config

import (
	"flag"
	"os"

	"github.com/aliaa11/userboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-d string   path to the local client database
//
// Args are filtered through flagx.FilterArgs first, so flags owned by other
// layers (like -c/-config) don't trip parsing here.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local client database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
