// Command drawctl runs team draws and roster parsing from the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "drawctl",
		Short: "Draw balanced five-a-side teams",
		Long: `drawctl splits a player list into four balanced teams of five
using the same balancer as the team draw service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newDrawCmd(), newParseCmd())
	return root
}
