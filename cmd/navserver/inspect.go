package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qverkk/osrs-nav/internal/gridio"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <gridfile>",
	Short: "Print stats for a grid file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	grid, err := gridio.Load(args[0])
	if err != nil {
		return err
	}

	var passable int
	groupSizes := make(map[uint8]int)
	for _, v := range grid.Vertices {
		if v.Flags != 0 {
			passable++
			groupSizes[v.Group()]++
		}
	}
	var largest int
	for _, n := range groupSizes {
		if n > largest {
			largest = n
		}
	}

	var extraEdges int
	for _, edges := range grid.Edges {
		extraEdges += len(edges)
	}

	cells := int(grid.Cells())
	fmt.Printf("Grid:          %dx%d (%d cells)\n", grid.Width, grid.Height, cells)
	fmt.Printf("Passable:      %d cells (%.1f%%)\n", passable, 100*float64(passable)/float64(cells))
	fmt.Printf("Extra edges:   %d from %d cells\n", extraEdges, len(grid.Edges))
	fmt.Printf("Teleports:     %d\n", len(grid.Teleports))
	fmt.Printf("Max edge cost: %d\n", grid.MaxEdgeCost())
	if passable > 0 {
		fmt.Printf("Group ids:     %d in use, largest covers %.1f%% of passable cells\n",
			len(groupSizes), 100*float64(largest)/float64(passable))
	}
	fmt.Printf("Checksum:      %s\n", hex.EncodeToString(grid.Checksum))
	return nil
}
