package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/five82/satchel/internal/app"
	"github.com/five82/satchel/internal/demo"
	"github.com/five82/satchel/internal/logging"
)

func newDemoCmd() *cobra.Command {
	var (
		addr      string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Serve an in-memory storefront for trying satchel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(appOptions())
			if err != nil {
				return err
			}
			logger := logging.New(cmd.OutOrStdout(), cfg.LogLevel, logFormat)

			gin.SetMode(gin.ReleaseMode)
			router := demo.NewServer(nil, logger).Router(cfg.ProductsPath)
			return demo.Serve(cmd.Context(), addr, router, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8088", "Listen address")
	cmd.Flags().StringVar(&logFormat, "log-format", "json", "Log format (json, text)")
	return cmd
}
