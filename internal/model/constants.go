package model

// Production world grid dimensions.
const (
	GridWidth  = 6400
	GridHeight = 4000
	TotalCells = GridWidth * GridHeight // 25 600 000
)

// Direction bitmask constants.
// One bit per compass direction in a vertex's flags byte, set if movement
// out of the cell in that direction is permitted. Diagonal bits are baked
// by the grid builder (both adjacent cardinals passable), not re-derived
// during search.
const (
	FlagWest      uint8 = 1 << 0 // 0x01
	FlagEast      uint8 = 1 << 1 // 0x02
	FlagSouth     uint8 = 1 << 2 // 0x04
	FlagNorth     uint8 = 1 << 3 // 0x08
	FlagSouthWest uint8 = 1 << 4 // 0x10
	FlagSouthEast uint8 = 1 << 5 // 0x20
	FlagNorthWest uint8 = 1 << 6 // 0x40
	FlagNorthEast uint8 = 1 << 7 // 0x80
)

// FlagAllCardinal is every axis-aligned direction bit.
const FlagAllCardinal = FlagWest | FlagEast | FlagSouth | FlagNorth // 0x0F

// FlagAll is every direction bit including diagonals.
const FlagAll uint8 = 0xFF

// Direction pairs a passability flag with its coordinate delta.
type Direction struct {
	Flag   uint8
	DX, DY int32
}

// Directions lists all eight compass directions in flag-bit order.
// North is +Y, east is +X.
var Directions = [8]Direction{
	{FlagWest, -1, 0},
	{FlagEast, 1, 0},
	{FlagSouth, 0, -1},
	{FlagNorth, 0, 1},
	{FlagSouthWest, -1, -1},
	{FlagSouthEast, 1, -1},
	{FlagNorthWest, -1, 1},
	{FlagNorthEast, 1, 1},
}
