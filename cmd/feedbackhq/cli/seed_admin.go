package cli

import (
	"context"

	"github.com/feedbackhq/feedbackhq/internal/app"
	"github.com/feedbackhq/feedbackhq/internal/config"
	"github.com/feedbackhq/feedbackhq/internal/logging"
	"github.com/spf13/cobra"
)

func newSeedAdminCmd() *cobra.Command {
	var (
		email    string
		password string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create a bootstrap admin account if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, errLoad := config.Load(config.ResolveConfigPath(cfgFile))
			if errLoad != nil {
				return errLoad
			}
			logging.Setup(cfg.Log)
			return app.SeedAdmin(context.Background(), cfg, email, password, name)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (required)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (required)")
	cmd.Flags().StringVar(&name, "name", "Admin", "admin display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
