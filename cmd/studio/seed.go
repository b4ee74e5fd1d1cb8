package main

import (
	"github.com/spf13/cobra"

	"github.com/lumenstudio/studio/internal/app"
	"github.com/lumenstudio/studio/internal/pkg/config"
	"github.com/lumenstudio/studio/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo clients and portfolio items",
	Long: `Write the demo clients and portfolio into the configured store.

Collections that already hold data are left untouched. With the remote auth
backend the demo admin accounts are registered as well.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment(), Service: "studio"})

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	res, err := a.Seeder.Seed(ctx)
	if err != nil {
		seedLog := logger.Component("seed")
		seedLog.Error().Err(err).Msg("seed failed")
		return err
	}
	cmd.Printf("seeded %d clients, %d portfolio items, %d admins\n", res.Clients, res.Portfolio, res.Admins)
	return nil
}
