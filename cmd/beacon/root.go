package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"beacon/internal/data"
	"beacon/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	dataPath  string
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "beacon",
	Short: "Community-services query server over MCP",
	Long: "Beacon answers volunteer, donation, and organization questions\n" +
		"from a static data document, served over MCP or the command line.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_ = godotenv.Load()
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.dataPath, "data", "", "Path to the data document (default: $BEACON_DATA)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(donationsCmd)
	rootCmd.AddCommand(orgCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.Version = version
}

// loadStore resolves the data-file path and loads the immutable snapshot.
// A malformed document is fatal: no command serves requests without a
// valid store.
func loadStore() (*data.Store, error) {
	path := rootFlags.dataPath
	if path == "" {
		path = os.Getenv("BEACON_DATA")
	}
	if path == "" {
		return nil, fmt.Errorf("no data document: pass --data or set BEACON_DATA")
	}
	return data.Load(path)
}
