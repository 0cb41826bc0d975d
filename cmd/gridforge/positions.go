package main

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/gridforge/internal/tactics"
	"github.com/samdwyer/gridforge/internal/terrain"
)

var flagPositionsTop int

var positionsCmd = &cobra.Command{
	Use:   "positions <compact-string|@file>",
	Short: "Rank tactical placement positions for a map",
	Long: `Positions decodes a compact map string and ranks every eligible cell
by tactical value: cover, flanking potential and mobility. Encounter
assembly seats adversaries from the top of this list.`,
	Args: cobra.ExactArgs(1),
	RunE: runPositions,
}

func init() {
	positionsCmd.Flags().IntVar(&flagPositionsTop, "top", 10, "Number of positions to print (0 = all)")
}

func runPositions(cmd *cobra.Command, args []string) error {
	g, _, err := decodeMapArg(args[0])
	if err != nil {
		return err
	}

	scorer := tactics.NewScorer(terrain.MustLoadCatalog())
	ranked := scorer.Rank(cmd.Context(), g)
	if flagPositionsTop > 0 && flagPositionsTop < len(ranked) {
		ranked = ranked[:flagPositionsTop]
	}
	printPositions(cmd.OutOrStdout(), ranked)
	return nil
}
