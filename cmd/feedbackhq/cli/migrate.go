package cli

import (
	"context"

	"github.com/feedbackhq/feedbackhq/internal/app"
	"github.com/feedbackhq/feedbackhq/internal/config"
	"github.com/feedbackhq/feedbackhq/internal/logging"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, errLoad := config.Load(config.ResolveConfigPath(cfgFile))
			if errLoad != nil {
				return errLoad
			}
			logging.Setup(cfg.Log)
			return app.Migrate(context.Background(), cfg)
		},
	}
}
