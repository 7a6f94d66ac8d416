package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr, images string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if addr != "" {
				e.cfg.Addr = addr
			}
			if images != "" {
				e.cfg.ImagesDir = images
			}
			switch e.cfg.GinMode {
			case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
				gin.SetMode(e.cfg.GinMode)
			default:
				e.logger.WithField("gin_mode", e.cfg.GinMode).Warn("unknown gin mode, using release")
				gin.SetMode(gin.ReleaseMode)
			}

			engine, err := server.New(server.Options{
				Site:       e.site,
				Formatter:  e.formatter,
				Calculator: e.calculator,
				Lang:       e.cfg.Locale,
				ImagesDir:  e.cfg.ImagesDir,
				Salt:       e.cfg.HashSalt,
				Logger:     e.logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, e.cfg.Addr, engine, e.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Address to listen on (default from FOLIO_ADDR, PORT or :8080)")
	cmd.Flags().StringVar(&images, "images", "", "Directory served under /images")
	return cmd
}
