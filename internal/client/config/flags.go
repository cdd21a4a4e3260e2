package config

import (
	"flag"
	"os"
	"time"

	"github.com/krishnapriya5647/smart-asset-system/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-d string   path of the local state database
//	-i int      notification poll interval in seconds
//	-p int      rows per page in list views
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	fs.StringVar(&cfg.StateDSN, "d", cfg.StateDSN, "path of the local state database")
	pollInterval := fs.Int("i", int(cfg.NotificationPollInterval.Seconds()), "notification poll interval (in seconds)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "rows per page in list views")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotificationPollInterval = time.Duration(*pollInterval) * time.Second
}
