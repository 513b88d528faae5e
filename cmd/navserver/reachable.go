package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qverkk/osrs-nav/internal/gridio"
	"github.com/qverkk/osrs-nav/internal/model"
	"github.com/qverkk/osrs-nav/internal/pathfinder"
)

var (
	reachX     int32
	reachY     int32
	reachLimit int
)

var reachableCmd = &cobra.Command{
	Use:   "reachable <gridfile>",
	Short: "Flood from a cell and report the reachable area",
	Args:  cobra.ExactArgs(1),
	RunE:  runReachable,
}

func init() {
	reachableCmd.Flags().Int32Var(&reachX, "x", 0, "start X")
	reachableCmd.Flags().Int32Var(&reachY, "y", 0, "start Y")
	reachableCmd.Flags().IntVar(&reachLimit, "limit", 0, "stop expanding after this many cells (0 = no limit)")
}

func runReachable(cmd *cobra.Command, args []string) error {
	grid, err := gridio.Load(args[0])
	if err != nil {
		return err
	}

	start := model.Coordinate{X: reachX, Y: reachY}
	if !grid.Contains(start) {
		return fmt.Errorf("coordinate %s outside %dx%d grid", start, grid.Width, grid.Height)
	}

	var count int
	minX, minY := start.X, start.Y
	maxX, maxY := start.X, start.Y
	pathfinder.NewFlooder().Flood(grid, start, func(index uint32) bool {
		count++
		c := grid.CoordinateAt(index)
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
		return reachLimit == 0 || count < reachLimit
	})

	fmt.Printf("Reachable from %s: %d cells\n", start, count)
	fmt.Printf("Bounding box: (%d, %d) to (%d, %d)\n", minX, minY, maxX, maxY)
	return nil
}
