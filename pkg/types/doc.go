// Package types defines the blueprint data model: blueprints, blueprint
// books, entities, tiles, icons, and the standard errors shared across the
// editor, exchange codec, and blueprint library.
package types
