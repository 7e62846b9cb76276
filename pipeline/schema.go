package pipeline

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// JSONSchema describes the workflow document accepted by Parse. Step configs
// stay open objects since their keys belong to the individual agents.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}

	s := r.Reflect(&Spec{})
	s.Title = "agenthub workflow"

	return s
}

// MarshalJSONSchema renders JSONSchema as indented JSON.
func MarshalJSONSchema() ([]byte, error) {
	return json.MarshalIndent(JSONSchema(), "", "  ")
}
