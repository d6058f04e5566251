package types

// Tile is a placed surface covering, such as stone brick or concrete.
// Tiles have no identity; they are never looked up or removed individually.
type Tile struct {
	Name     string       `json:"name"`
	Position TilePosition `json:"position"`
}

// SignalID names a signal used for blueprint icons.
type SignalID struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Icon is one entry of a blueprint's icon strip. The editor passes icons
// through untouched.
type Icon struct {
	Signal SignalID `json:"signal"`
	Index  int      `json:"index"`
}
