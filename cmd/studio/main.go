// Command studio runs the photography studio site: client galleries, the
// public portfolio and the admin dashboard.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Photography studio galleries and admin dashboard",
	Long: `studio serves client galleries, the public portfolio and the admin
dashboard over HTTP.

Configuration is read from the environment; a .env file in the working
directory is loaded first when present.

Examples:
  studio serve
  STORE_DRIVER=memory SEED_DEMO=true studio serve
  studio seed`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
