package export

import (
	leafbind "github.com/reoring/leafbind"
	"gopkg.in/yaml.v3"
)

// YAML renders the assembly's export document as YAML, for generators that
// prefer a mergeable text form.
func YAML(a *leafbind.Assembly) ([]byte, error) {
	return yaml.Marshal(Build(a))
}
