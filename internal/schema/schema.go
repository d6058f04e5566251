// Package schema validates the structural shape of blueprints and blueprint
// books against an embedded JSON Schema of the exchange wire format.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cbusillo/factorio-bp-editor/pkg/exchange"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

//go:embed blueprint.schema.json
var blueprintSchemaJSON string

// compiled is the schema, compiled once at init.
var compiled = jsonschema.MustCompileString("blueprint.schema.json", blueprintSchemaJSON)

// Validate materializes the wire JSON for b and checks it against the
// blueprint schema. It returns nil when the value is structurally valid.
// This is a whole-payload existence check; it does not produce field-level
// diagnostics.
func Validate(b types.Blueprintable) error {
	raw, err := exchange.MarshalJSON(b)
	if err != nil {
		return fmt.Errorf("materializing wire JSON: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("unmarshaling wire JSON: %w", err)
	}

	return compiled.Validate(doc)
}
