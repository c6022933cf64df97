package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repocards/pkg/buildinfo"
)

// versionCommand prints build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(c.out, buildinfo.String())
		},
	}
}
