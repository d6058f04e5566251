// Package exchange implements the blueprint exchange-string codec.
//
// An exchange string is a single version byte ('0') followed by the
// base64-encoded, zlib-compressed JSON form of a blueprint or blueprint
// book. Encode and Decode convert between that format and the in-memory
// model in pkg/types.
package exchange
