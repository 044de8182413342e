package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/feedbackhq/feedbackhq/internal/app"
	"github.com/feedbackhq/feedbackhq/internal/config"
	"github.com/feedbackhq/feedbackhq/internal/logging"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the FeedbackHQ API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, errLoad := config.Load(config.ResolveConfigPath(cfgFile))
			if errLoad != nil {
				return errLoad
			}
			logging.Setup(cfg.Log)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.RunServer(ctx, cfg)
		},
	}
}
