package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dsaccounts/internal/flagx"
)

var validDrivers = map[string]struct{}{
	"sqlite": {},
	"file":   {},
	"memory": {},
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   store driver (sqlite, file, memory)
//	-p string   store path
//	-l string   log level
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "store driver: sqlite, file or memory")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "path of the store database or file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if _, ok := validDrivers[cfg.StoreDriver]; !ok {
		panic(fmt.Sprintf("unsupported store driver %q", cfg.StoreDriver))
	}
}
