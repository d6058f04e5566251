package types

// Position is a point on the blueprint grid. Entity positions may sit on
// half-tile boundaries, so coordinates are floating point.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Translate returns the position shifted by (dx, dy).
func (p Position) Translate(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// TilePosition is a tile-aligned point. Tiles always occupy whole grid cells.
type TilePosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is an entity orientation. The game encodes eight directions as
// 0..7 clockwise from north; most rotatable entities only use the four
// cardinal values.
type Direction int

// Orientation values.
const (
	DirectionNorth     Direction = 0
	DirectionNortheast Direction = 1
	DirectionEast      Direction = 2
	DirectionSoutheast Direction = 3
	DirectionSouth     Direction = 4
	DirectionSouthwest Direction = 5
	DirectionWest      Direction = 6
	DirectionNorthwest Direction = 7
)
