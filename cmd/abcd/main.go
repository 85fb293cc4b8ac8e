package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/abcd-backend/internal/platform/envutil"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:   "abcd",
	Short: "ABCD catalog backend",
	Long: `Serves the taxonomy catalog API and offers maintenance commands.

Available subcommands:
  serve   - Run the HTTP API
  migrate - Create tables and join indexes
  resolve - Resolve filter facets to entity ids
  facets  - Print the facet registries
  token   - Mint a bearer token for admin routes`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, resolveCmd, facetsCmd, tokenCmd)
}

func newLogger() (*logger.Logger, error) {
	return logger.New(envutil.String("LOG_MODE", "development"))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
