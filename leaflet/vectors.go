package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// pathEvents lists the events shared by every vector layer.
func pathEvents() []leafbind.EventDescriptor {
	mouse := leafbind.Named("MouseEvent")
	plain := leafbind.Named("Event")
	popup := leafbind.Named("PopupEvent")
	return []leafbind.EventDescriptor{
		dsl.Event("click", mouse, "Fired when the user clicks (or taps) the path."),
		dsl.Event("dblclick", mouse, "Fired when the user double-clicks the path."),
		dsl.Event("mousedown", mouse, "Fired when the user pushes a mouse button on the path."),
		dsl.Event("mouseover", mouse, "Fired when the cursor enters the path."),
		dsl.Event("mouseout", mouse, "Fired when the cursor leaves the path."),
		dsl.Event("contextmenu", mouse, "Fired on path right-click."),
		dsl.Event("add", plain, "Fired when the path is added to a map."),
		dsl.Event("remove", plain, "Fired when the path is removed from a map."),
		dsl.Event("popupopen", popup, "Fired when the bound popup opens."),
		dsl.Event("popupclose", popup, "Fired when the bound popup closes."),
	}
}

// vectorTypes covers the vector layer hierarchy rooted at Path.
func vectorTypes() []*leafbind.TypeDescriptor {
	return []*leafbind.TypeDescriptor{
		dsl.Type("Path").
			Doc("Abstract base of vector overlays; never instantiated directly.").
			Implements("ILayer").
			Method("addTo").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("Path")).
			Method("bindPopup").Param("content", leafbind.Union(leafbind.String(), leafbind.Named("HTMLElement"), leafbind.Named("Popup"))).Opt("options", leafbind.Named("PopupOptions")).Returns(leafbind.Named("Path")).
			Method("unbindPopup").Returns(leafbind.Named("Path")).
			Method("openPopup").Opt("latlng", leafbind.Named("LatLngLike")).Returns(leafbind.Named("Path")).
			Method("closePopup").Returns(leafbind.Named("Path")).
			Method("setStyle").Param("style", leafbind.Named("PathOptions")).Returns(leafbind.Named("Path")).
			Doc("Merges the given style options into the path.").
			Method("getBounds").Returns(leafbind.Named("LatLngBounds")).
			Method("bringToFront").Returns(leafbind.Named("Path")).
			Method("bringToBack").Returns(leafbind.Named("Path")).
			Method("redraw").Returns(leafbind.Named("Path")).
			Events(pathEvents()...).
			MustBuild(),

		dsl.Options("PathOptions").
			Doc("Stroke and fill styling shared by every vector layer.").
			Field("stroke", leafbind.Bool()).Default(true).
			Field("color", leafbind.String()).Default("#03f").
			Field("weight", leafbind.Int()).Default(5).Doc("Stroke width in pixels.").
			Field("opacity", leafbind.Number()).Default(0.5).
			Field("fill", leafbind.Bool()).Doc("Defaults to true except on polylines.").
			Field("fillColor", leafbind.String()).Doc("Defaults to the stroke color.").
			Field("fillOpacity", leafbind.Number()).Default(0.2).
			Field("fillRule", leafbind.String()).Default("evenodd").
			Field("dashArray", leafbind.String()).
			Field("lineCap", leafbind.String()).
			Field("lineJoin", leafbind.String()).
			Field("clickable", leafbind.Bool()).Default(true).
			Field("pointerEvents", leafbind.String()).
			Field("className", leafbind.String()).
			MustBuild(),

		dsl.Type("Polyline").
			Inherits("Path").
			Doc("A series of connected line segments.").
			Ctor(dsl.Arg("latlngs", leafbind.ArrayOf(leafbind.Named("LatLngLike"))), dsl.OptArg("options", leafbind.Named("PolylineOptions"))).
			Method("addLatLng").Param("latlng", leafbind.Named("LatLngLike")).Returns(leafbind.Named("Polyline")).
			Method("setLatLngs").Param("latlngs", leafbind.ArrayOf(leafbind.Named("LatLngLike"))).Returns(leafbind.Named("Polyline")).
			Method("getLatLngs").Returns(leafbind.ArrayOf(leafbind.Named("LatLng"))).
			Method("spliceLatLngs").Param("index", leafbind.Int()).Param("pointsToRemove", leafbind.Int()).Opt("latlngs", leafbind.Variadic(leafbind.Named("LatLngLike"))).Returns(leafbind.ArrayOf(leafbind.Named("LatLng"))).
			Doc("Array-splice semantics over the point list; returns the removed points.").
			MustBuild(),

		dsl.Options("PolylineOptions").
			Inherits("PathOptions").
			Field("smoothFactor", leafbind.Number()).Default(1.0).Doc("Simplification tolerance: higher is faster and coarser.").
			Field("noClip", leafbind.Bool()).Default(false).
			MustBuild(),

		dsl.Type("Polygon").
			Inherits("Polyline").
			Doc("A closed polygon; the first and last points are joined implicitly.").
			Ctor(dsl.Arg("latlngs", leafbind.ArrayOf(leafbind.Named("LatLngLike"))), dsl.OptArg("options", leafbind.Named("PolylineOptions"))).
			MustBuild(),

		dsl.Type("Rectangle").
			Inherits("Polygon").
			Ctor(dsl.Arg("bounds", leafbind.Named("LatLngBoundsLike")), dsl.OptArg("options", leafbind.Named("PathOptions"))).
			Method("setBounds").Param("bounds", leafbind.Named("LatLngBoundsLike")).Returns(leafbind.Named("Rectangle")).
			MustBuild(),

		dsl.Type("Circle").
			Inherits("Path").
			Doc("A circle of fixed radius in meters.").
			Ctor(dsl.Arg("latlng", leafbind.Named("LatLngLike")), dsl.Arg("radius", leafbind.Number()), dsl.OptArg("options", leafbind.Named("PathOptions"))).
			Method("getLatLng").Returns(leafbind.Named("LatLng")).
			Method("getRadius").Returns(leafbind.Number()).
			Method("setLatLng").Param("latlng", leafbind.Named("LatLngLike")).Returns(leafbind.Named("Circle")).
			Method("setRadius").Param("radius", leafbind.Number()).Returns(leafbind.Named("Circle")).
			MustBuild(),

		dsl.Type("CircleMarker").
			Inherits("Circle").
			Doc("A circle of fixed pixel radius, so it keeps its size across zooms.").
			Ctor(dsl.Arg("latlng", leafbind.Named("LatLngLike")), dsl.OptArg("options", leafbind.Named("PathOptions"))).
			MustBuild(),
	}
}
