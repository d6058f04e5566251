// Package editor provides high-level editors for blueprints and blueprint
// books: entity and tile bookkeeping, metadata updates, statistics, and
// (de)serialization through the exchange codec.
//
// Editors are not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
package editor
