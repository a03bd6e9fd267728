package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/folio/internal/app"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Publish the content root and the theme endpoint over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if cmd.Flags().Changed("listen") {
			cfg.ListenPort = listenAddr
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		srv, err := app.NewServer(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		return srv.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides FOLIO_LISTEN_PORT)")
	rootCmd.AddCommand(serveCmd)
}
