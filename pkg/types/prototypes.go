package types

// rotatablePrototypes lists common prototype names whose entities carry an
// orientation. The full game database is out of scope; this covers the
// prototypes that appear in blueprints often enough to matter, and callers
// that know better can use NewDirectionalEntity directly.
var rotatablePrototypes = map[string]bool{
	"transport-belt":           true,
	"fast-transport-belt":      true,
	"express-transport-belt":   true,
	"underground-belt":         true,
	"fast-underground-belt":    true,
	"express-underground-belt": true,
	"splitter":                 true,
	"fast-splitter":            true,
	"express-splitter":         true,
	"burner-inserter":          true,
	"inserter":                 true,
	"long-handed-inserter":     true,
	"fast-inserter":            true,
	"filter-inserter":          true,
	"stack-inserter":           true,
	"stack-filter-inserter":    true,
	"pump":                     true,
	"offshore-pump":            true,
	"boiler":                   true,
	"steam-engine":             true,
	"steam-turbine":            true,
	"burner-mining-drill":      true,
	"electric-mining-drill":    true,
	"pumpjack":                 true,
	"assembling-machine-2":     true,
	"assembling-machine-3":     true,
	"oil-refinery":             true,
	"chemical-plant":           true,
	"train-stop":               true,
	"rail-signal":              true,
	"rail-chain-signal":        true,
	"straight-rail":            true,
	"curved-rail":              true,
	"gun-turret":               true,
	"flamethrower-turret":      true,
	"arithmetic-combinator":    true,
	"decider-combinator":       true,
	"constant-combinator":      true,
}

// Rotatable reports whether the prototype catalog marks the named entity as
// carrying an orientation.
func Rotatable(name string) bool {
	return rotatablePrototypes[name]
}
