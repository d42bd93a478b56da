package commands

import (
	"github.com/spf13/cobra"

	"github.com/williampepple1/post-inspector/internal/api"
	"github.com/williampepple1/post-inspector/internal/inspect"
	"github.com/williampepple1/post-inspector/internal/scraper"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides server.addr")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--addr <host:port>]",
	Short: "Serves POST /api/inspect over HTTP.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appConfig, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			appConfig.Server.Addr = serveAddr
		}
		if err := appConfig.ValidateServe(); err != nil {
			return err
		}

		logger, err := newLogger(appConfig)
		if err != nil {
			return err
		}
		logger.Info().
			Str("mode", appConfig.Fetcher.Mode).
			Bool("proxies", appConfig.Proxies.Enabled).
			Msg("starting inspector")

		inspector := inspect.New(scraper.New(appConfig, logger), logger)
		handler := api.NewHandler(inspector, api.NewMetrics(), logger)

		return api.Serve(cmd.Context(), appConfig.Server, handler.Routes(), logger)
	},
}
