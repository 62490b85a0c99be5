// Package cmd provides the command-line interface for the application.
package cmd

import (
	"context"
	"os"

	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
	"github.com/jjankovic/site/cmd/favicon"
	"github.com/jjankovic/site/cmd/routes"
	"github.com/jjankovic/site/cmd/serve"
	"github.com/jjankovic/site/internal/config"
	"github.com/jjankovic/site/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd is the root command for the CLI application.
var rootCmd = &cobra.Command{
	Use:     "site",
	Short:   "site serves the personal website and arcade of Jones Jankovic",
	Long:    ``,
	Version: version.CurrentVersion,
}

// Execute runs the root command and handles any errors.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	ctx := context.Background()

	rootCmd.SetContext(ctx)
	rootCmd.AddCommand(serve.ServeCmd)
	rootCmd.AddCommand(favicon.FaviconCmd)
	rootCmd.AddCommand(routes.RoutesCmd)

	cobra.OnInitialize(commonLogger.InitDefaultLogger, config.Load)
}
