// Package serve provides the serve command implementation.
package serve

import (
	"github.com/spf13/cobra"
)

// ServeCmd represents the serve command.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website server",
	Long:  ``,
	RunE: func(cmd *cobra.Command, _ []string) error {
		server, err := NewServer()
		if err != nil {
			return err
		}
		return server.Start(cmd.Context())
	},
}
