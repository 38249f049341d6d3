package leaflet_test

import (
	"testing"

	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/leaflet"
)

func mustType(t *testing.T, name string) *leafbind.TypeDescriptor {
	t.Helper()
	td, ok := leaflet.MustAssemble().Type(name)
	if !ok {
		t.Fatalf("type %s missing", name)
	}
	return td
}

func TestMap_EventAccessorsCarryLiterals(t *testing.T) {
	m := mustType(t, "Map")

	for _, ev := range []string{"mousemove", "mouseout", "click", "zoomend", "locationfound"} {
		on := m.MembersNamed("on_" + ev)
		if len(on) != 1 {
			t.Fatalf("Map: expected on_%s accessor, got %d", ev, len(on))
		}
		if on[0].EventName != ev {
			t.Fatalf("on_%s must record the literal %q, got %q", ev, ev, on[0].EventName)
		}
	}

	// The string-keyed escape hatch is present alongside the typed set.
	if len(m.MembersNamed("on")) != 2 || len(m.MembersNamed("off")) != 2 {
		t.Fatalf("Map must keep the generic on/off primitives")
	}
}

func TestMap_CtorAcceptsIdOrElement(t *testing.T) {
	m := mustType(t, "Map")

	ctors := m.MembersNamed("constructor")
	if len(ctors) != 1 {
		t.Fatalf("expected single Map ctor, got %d", len(ctors))
	}
	id := ctors[0].Params[0].Type
	if id.Kind != leafbind.KindUnion || len(id.Variants) != 2 {
		t.Fatalf("Map ctor must take a string id or an element: %+v", id)
	}
	if !ctors[0].Params[1].Optional {
		t.Fatalf("MapOptions must be optional")
	}
}

func TestMap_HandlerProperties(t *testing.T) {
	m := mustType(t, "Map")

	for _, name := range []string{"dragging", "touchZoom", "doubleClickZoom", "scrollWheelZoom", "boxZoom", "keyboard"} {
		props := m.MembersNamed(name)
		if len(props) != 1 || props[0].Kind != leafbind.MemberProperty {
			t.Fatalf("handler property %s missing: %+v", name, props)
		}
		if props[0].Type == nil || props[0].Type.Name != "IHandler" {
			t.Fatalf("handler property %s must be an IHandler: %+v", name, props[0].Type)
		}
	}
}

func TestMarker_SurfaceShape(t *testing.T) {
	marker := mustType(t, "Marker")

	if len(marker.Implements) != 1 || marker.Implements[0] != "ILayer" {
		t.Fatalf("Marker must implement ILayer, got %v", marker.Implements)
	}
	if len(marker.MembersNamed("on_dragend")) != 1 {
		t.Fatalf("Marker must expose the dragend accessor set")
	}
	bind := marker.MembersNamed("bindPopup")
	if len(bind) == 0 {
		t.Fatalf("Marker.bindPopup missing")
	}
}

func TestTileLayer_CtorTakesURLTemplate(t *testing.T) {
	tl := mustType(t, "TileLayer")

	ctors := tl.MembersNamed("constructor")
	if len(ctors) != 1 || ctors[0].Params[0].Type.Kind != leafbind.KindPrimitive {
		t.Fatalf("TileLayer ctor must take the url template string: %+v", ctors)
	}
	if len(tl.MembersNamed("on_tileload")) != 1 {
		t.Fatalf("TileLayer must expose tile lifecycle events")
	}
}

func TestGeographyAliases_UnionShapes(t *testing.T) {
	for _, tc := range []struct {
		name    string
		variant string
	}{
		{"LatLngLike", "LatLng"},
		{"PointLike", "Point"},
		{"LatLngBoundsLike", "LatLngBounds"},
	} {
		td := mustType(t, tc.name)
		if td.Kind != leafbind.TypeAlias || td.Alias == nil {
			t.Fatalf("%s must be an alias, got %+v", tc.name, td)
		}
		if td.Alias.Kind != leafbind.KindUnion {
			t.Fatalf("%s must be a union, got %v", tc.name, td.Alias.Kind)
		}
		found := false
		for _, v := range td.Alias.Variants {
			if v.Name == tc.variant {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s union must include %s: %+v", tc.name, tc.variant, td.Alias.Variants)
		}
	}
}

func TestMapOptions_DefaultsRecorded(t *testing.T) {
	opts := mustType(t, "MapOptions")

	zoomCtl := opts.MembersNamed("zoomControl")
	if len(zoomCtl) != 1 {
		t.Fatalf("MapOptions.zoomControl missing")
	}
	if v, ok := zoomCtl[0].Default.(bool); !ok || !v {
		t.Fatalf("zoomControl defaults to true, got %v", zoomCtl[0].Default)
	}

	fit := mustType(t, "FitBoundsOptions")
	if fit.Inherits != "ZoomPanOptions" {
		t.Fatalf("FitBoundsOptions must inherit ZoomPanOptions, got %q", fit.Inherits)
	}
}
