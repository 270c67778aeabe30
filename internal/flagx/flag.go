// Package flagx contains helpers for sharing os.Args between independent
// flag owners. Each config layer parses only the flags it declares; FilterArgs
// strips everything else so unknown flags from other layers don't trip
// flag.Parse.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args belonging to the allowed flags.
// Both "-f value" and "-f=value" (or "--flag=value") spellings are kept;
// for the separated form the following argument is treated as the value
// unless it looks like another flag.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[strings.TrimLeft(f, "-")] = struct{}{}
	}
	isAllowed := func(flag string) bool {
		_, ok := allowed[strings.TrimLeft(flag, "-")]
		return ok
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if strings.Contains(arg, "=") {
			if isAllowed(strings.SplitN(arg, "=", 2)[0]) {
				filtered = append(filtered, arg)
			}
			continue
		}

		if isAllowed(arg) {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// JsonConfigFlags extracts the JSON config file path given via -c or -config.
// Only those two flags are parsed; everything else in os.Args is ignored so
// this can run before (and independently of) the main flag parsing.
// Returns "" when neither flag is present.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "path to JSON config file")
	fs.StringVar(&config, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(args)

	return config
}
