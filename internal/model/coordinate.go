// Package model defines the movement grid data model: coordinates, vertices
// with passability bitmasks, requirement-gated edges and teleports, and the
// player state snapshot requirements are evaluated against.
package model

import "fmt"

// Coordinate is an absolute world position. Value type, passed by value.
// Conversion to and from linear cell indices lives on NavGrid because it
// depends on the grid's width.
type Coordinate struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Translate returns the coordinate shifted by (dx, dy).
func (c Coordinate) Translate(dx, dy int32) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}
