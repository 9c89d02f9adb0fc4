package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/team-draw-service/internal/roster"
)

func newParseCmd() *cobra.Command {
	var (
		file     string
		maxNames int
	)
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract player names from a pasted sign-up list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxNames < 0 {
				return errors.New("max must not be negative")
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read roster: %w", err)
			}
			res := roster.Parse(string(data), maxNames)

			out := cmd.OutOrStdout()
			for i, name := range res.Names {
				fmt.Fprintf(out, "%d. %s\n", i+1, name)
			}
			if res.Truncated {
				fmt.Fprintf(out, "(%d of %d names kept)\n", len(res.Names), res.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "text file with one name per line")
	cmd.Flags().IntVar(&maxNames, "max", roster.DefaultMax, "most names to keep (0 keeps all)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
