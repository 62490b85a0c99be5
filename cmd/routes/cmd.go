// Package routes provides the routes command, which prints the route table.
package routes

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jjankovic/site/internal/router"
	"github.com/spf13/cobra"
)

// RoutesCmd represents the routes command.
var RoutesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table in resolution order",
	Long:  ``,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return Print(cmd.OutOrStdout(), router.DefaultTable())
	},
}

// Print writes table as aligned columns of path, name, view and page title.
func Print(w io.Writer, table *router.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "PATH\tNAME\tVIEW\tTITLE"); err != nil {
		return err
	}
	for _, d := range table.Descriptors() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Path, d.Name, d.View, router.FormatTitle(d.Title)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
