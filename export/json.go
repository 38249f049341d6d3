package export

import (
	json "github.com/goccy/go-json"

	leafbind "github.com/reoring/leafbind"
)

// JSON renders the assembly's export document as compact JSON.
func JSON(a *leafbind.Assembly) ([]byte, error) {
	return json.Marshal(Build(a))
}

// JSONIndent renders the export document indented for human diffing; the
// generator consumes either form.
func JSONIndent(a *leafbind.Assembly) ([]byte, error) {
	return json.MarshalIndent(Build(a), "", "  ")
}
