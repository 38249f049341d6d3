package export

import (
	json "github.com/goccy/go-json"

	"github.com/invopop/jsonschema"
)

// DocumentSchema reflects the JSON Schema of the export document, so
// generator implementations can validate a document before consuming it.
func DocumentSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.ExpandedStruct = true
	s := r.Reflect(&Document{})
	return json.MarshalIndent(s, "", "  ")
}
