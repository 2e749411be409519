package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/myauthapp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database file path
//	-l string   log level
//	-f string   log format
//	-t int      storage timeout in seconds
//	-q int      persistence queue size
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-f", "-t", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")
	storageTimeout := fs.Int("t", int(cfg.StorageTimeout.Seconds()), "storage call timeout (in seconds)")
	fs.IntVar(&cfg.PersistQueueSize, "q", cfg.PersistQueueSize, "persistence queue size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t applies only when given; JSON may carry sub-second timeouts
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.StorageTimeout = time.Duration(*storageTimeout) * time.Second
		}
	})
}
