package leaflet

import (
	leafbind "github.com/reoring/leafbind"
)

// Version is the Leaflet release this surface was transcribed against.
const Version = "1.9.4"

// Resource names referenced by the generated bindings module.
const (
	StylesheetResource = "leaflet-css"
	ScriptResource     = "leaflet-js"
)

// resources declares the two ordered web resources the bindings need: the
// stylesheet, and the script that requires it to be present first.
func resources() []leafbind.Resource {
	return []leafbind.Resource{
		{
			Name: StylesheetResource,
			Kind: leafbind.ResourceStylesheet,
			URL:  "https://unpkg.com/leaflet@" + Version + "/dist/leaflet.css",
		},
		{
			Name:     ScriptResource,
			Kind:     leafbind.ResourceScript,
			URL:      "https://unpkg.com/leaflet@" + Version + "/dist/leaflet.js",
			Requires: []string{StylesheetResource},
		},
	}
}
