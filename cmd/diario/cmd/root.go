package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/journal"
)

var rootCmd = &cobra.Command{
	Use:   "diario",
	Short: "A day-trading journal with risk gating",
	Long: `Diario keeps a day-trading journal and computes its statistics.

It provides tools for:
  - Logging trades in points or direct P&L mode
  - Equity curve, daily aggregates and performance statistics
  - Daily risk gating (stop, target and trade-count limits)
  - JSON snapshot import/export compatible with the browser app
  - Serving a dashboard API over HTTP`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	dbPath     string
	configPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultEnv("DIARIO_DB", "./diario.sqlite"), "path to the journal database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultEnv("DIARIO_CONFIG", "./diario.yaml"), "path to the configuration file")
}

func defaultEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func openJournal() (*journal.SQLite, error) {
	return journal.NewSQLite(dbPath)
}

// loadConfigText loads the raw configuration, falling back to the
// stock defaults when no config file exists yet.
func loadConfigText() config.Text {
	if t, err := config.LoadFromFile(configPath); err == nil {
		return *t
	}
	return config.Default()
}
