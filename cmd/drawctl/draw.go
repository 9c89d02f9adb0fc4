package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/team-draw-service/internal/balancer"
	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/domain/teams"
	"github.com/preston-bernstein/team-draw-service/internal/export"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type drawOptions struct {
	playersFile string
	seed        uint64
	refine      string
	format      string
}

type drawOutput struct {
	Teams      []teams.Team     `json:"teams"`
	Unassigned []players.Player `json:"unassigned"`
	Swaps      int              `json:"swaps"`
	Spread     int              `json:"spread"`
}

func newDrawCmd() *cobra.Command {
	opts := &drawOptions{}
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw teams from a JSON player list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.playersFile, "players", "", "JSON file holding an array of players")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible draw")
	cmd.Flags().StringVar(&opts.refine, "refine", string(balancer.RefineAll), "refinement mode (all|single)")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "output format (text|json)")
	_ = cmd.MarkFlagRequired("players")
	return cmd
}

func runDraw(cmd *cobra.Command, opts *drawOptions) error {
	mode, err := balancer.ParseRefineMode(opts.refine)
	if err != nil {
		return err
	}
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	input, err := loadPlayers(opts.playersFile)
	if err != nil {
		return err
	}

	bopts := []balancer.Option{balancer.WithRefineMode(mode)}
	if cmd.Flags().Changed("seed") {
		bopts = append(bopts, balancer.WithSeed(opts.seed))
	}
	res := balancer.New(bopts...).Draw(input)

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(drawOutput{
			Teams:      res.Teams,
			Unassigned: res.Unassigned,
			Swaps:      res.Swaps,
			Spread:     balancer.Spread(res.Teams),
		})
	}

	fmt.Fprint(out, export.Text(res.Teams))
	if len(res.Unassigned) > 0 {
		fmt.Fprintf(out, "\nWithout a team (%d):\n", len(res.Unassigned))
		for _, p := range res.Unassigned {
			fmt.Fprintf(out, "• %s\n", p.Name)
		}
	}
	return nil
}

func loadPlayers(path string) ([]players.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read players: %w", err)
	}
	var items []players.Player
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode players %s: %w", path, err)
	}
	for i, p := range items {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("players[%d]: %w", i, err)
		}
	}
	return items, nil
}
