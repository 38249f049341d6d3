package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// interfaceTypes covers the capability contracts every layer, control, and
// interaction handler implementation must satisfy.
func interfaceTypes() []*leafbind.TypeDescriptor {
	return []*leafbind.TypeDescriptor{
		dsl.Iface("ILayer").
			Doc("Contract of everything addable to a map.").
			Method("onAdd").Param("map", leafbind.Named("Map")).
			Doc("Called by the map when the layer is added; creates DOM elements and hooks events.").
			Method("onRemove").Param("map", leafbind.Named("Map")).
			Doc("Called by the map when the layer is removed; undoes everything onAdd did.").
			MustBuild(),

		dsl.Iface("IControl").
			Doc("Contract of map UI controls occupying a corner of the map.").
			Method("onAdd").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("HTMLElement")).
			Doc("Creates and returns the control's container element.").
			Method("onRemove").Param("map", leafbind.Named("Map")).
			Method("getPosition").Returns(leafbind.String()).
			Method("setPosition").Param("position", leafbind.String()).
			MustBuild(),

		dsl.Iface("IHandler").
			Doc("Contract of togglable map interaction handlers (dragging, box zoom, keyboard).").
			Method("enable").
			Method("disable").
			Method("enabled").Returns(leafbind.Bool()).
			MustBuild(),
	}
}
