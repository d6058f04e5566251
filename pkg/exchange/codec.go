package exchange

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// versionByte prefixes every exchange string. The game has only ever
// shipped format version 0.
const versionByte = '0'

// Decode errors.
var (
	ErrEmptyString        = errors.New("exchange string is empty")
	ErrUnsupportedVersion = errors.New("unsupported exchange format version")
	ErrUnknownPayload     = errors.New("payload is neither a blueprint nor a blueprint book")
	ErrNotBlueprint       = errors.New("exchange string does not hold a blueprint")
	ErrNotBook            = errors.New("exchange string does not hold a blueprint book")
)

// Encode serializes a blueprint or blueprint book to an exchange string.
func Encode(b types.Blueprintable) (string, error) {
	env := wireEnvelope{}
	switch v := b.(type) {
	case *types.Blueprint:
		env.Blueprint = toWireBlueprint(v)
	case *types.Book:
		env.Book = toWireBook(v)
	default:
		return "", fmt.Errorf("encode: %w", ErrUnknownPayload)
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshaling blueprint JSON: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteByte(versionByte)

	b64 := base64.NewEncoder(base64.StdEncoding, &buf)
	zw, err := zlib.NewWriterLevel(b64, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("creating zlib writer: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		return "", fmt.Errorf("compressing payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("flushing zlib stream: %w", err)
	}
	if err := b64.Close(); err != nil {
		return "", fmt.Errorf("flushing base64 stream: %w", err)
	}

	return buf.String(), nil
}

// Decode parses an exchange string and returns the blueprint or blueprint
// book it holds. The error is descriptive for every malformed layer: bad
// version byte, corrupt base64 or zlib stream, malformed JSON, or an
// unknown payload kind.
func Decode(s string) (types.Blueprintable, error) {
	if s == "" {
		return nil, ErrEmptyString
	}
	if s[0] != versionByte {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, s[0])
	}

	raw, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return nil, fmt.Errorf("decoding base64 payload: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("opening zlib stream: %w", err)
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}

	var env wireEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("unmarshaling blueprint JSON: %w", err)
	}

	switch {
	case env.Blueprint != nil:
		return fromWireBlueprint(env.Blueprint), nil
	case env.Book != nil:
		return fromWireBook(env.Book)
	default:
		return nil, ErrUnknownPayload
	}
}

// DecodeBlueprint decodes an exchange string that must hold a single
// blueprint.
func DecodeBlueprint(s string) (*types.Blueprint, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	bp, ok := b.(*types.Blueprint)
	if !ok {
		return nil, ErrNotBlueprint
	}
	return bp, nil
}

// DecodeBook decodes an exchange string that must hold a blueprint book.
func DecodeBook(s string) (*types.Book, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	book, ok := b.(*types.Book)
	if !ok {
		return nil, ErrNotBook
	}
	return book, nil
}

// MarshalJSON returns the uncompressed wire JSON for a blueprintable. The
// schema validator works on this form.
func MarshalJSON(b types.Blueprintable) ([]byte, error) {
	env := wireEnvelope{}
	switch v := b.(type) {
	case *types.Blueprint:
		env.Blueprint = toWireBlueprint(v)
	case *types.Book:
		env.Book = toWireBook(v)
	default:
		return nil, fmt.Errorf("marshal: %w", ErrUnknownPayload)
	}
	return json.Marshal(env)
}
