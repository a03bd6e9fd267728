package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/folio/internal/app"
)

var historyFile string

var browseCmd = &cobra.Command{
	Use:   "browse [#fragment]",
	Short: "Browse the site interactively in the terminal",
	Long: `Loads the site from the content root (or --content-url) and reads
commands from the terminal. Type help inside the session for the list.`,
	Example: `  folio browse
  folio browse '#blog/my-post' --content ./site`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if cmd.Flags().Changed("history") {
			cfg.HistoryFile = historyFile
		}

		var fragment string
		if len(args) == 1 {
			fragment = args[0]
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		b, err := app.NewBrowser(cmd.Context(), cfg, log, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return b.Run(cmd.Context(), fragment)
	},
}

func init() {
	browseCmd.Flags().StringVar(&historyFile, "history", "", "line history file (overrides FOLIO_HISTORY_FILE)")
	rootCmd.AddCommand(browseCmd)
}
