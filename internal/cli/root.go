// Package cli defines the folio command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

var (
	contentDir string
	contentURL string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal site engine",
	Long: `folio serves a personal site's content root and browses it from the
terminal: about, blog, publications, projects and readings, navigated by
location fragments like #blog/my-post.`,
	SilenceUsage: true,
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "content root directory (overrides FOLIO_CONTENT_DIR)")
	rootCmd.PersistentFlags().StringVar(&contentURL, "content-url", "", "content base URL (overrides FOLIO_CONTENT_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug | info | warn | error (overrides FOLIO_LOG_LEVEL)")
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentDir = contentDir
	}
	if flags.Changed("content-url") {
		cfg.ContentURL = contentURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	return logger.NewWithOptions(logger.Options{
		Level:      cfg.LogLevel,
		Pretty:     cfg.PrettyLog,
		OutputPath: cfg.LogFile,
	})
}
