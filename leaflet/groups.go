package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// groupTypes covers layer aggregation: plain groups, event-forwarding
// feature groups, and the GeoJSON loader.
func groupTypes() []*leafbind.TypeDescriptor {
	eachLayerFn := leafbind.Func([]leafbind.Param{dsl.Arg("layer", leafbind.Named("ILayer"))}, nil)
	featureFn := leafbind.Func([]leafbind.Param{dsl.Arg("feature", leafbind.Any()), dsl.Arg("layer", leafbind.Named("ILayer"))}, nil)
	styleFn := leafbind.Func([]leafbind.Param{dsl.Arg("feature", leafbind.Any())}, refOf(leafbind.Named("PathOptions")))
	pointToLayerFn := leafbind.Func([]leafbind.Param{dsl.Arg("feature", leafbind.Any()), dsl.Arg("latlng", leafbind.Named("LatLng"))}, refOf(leafbind.Named("ILayer")))
	filterFn := leafbind.Func([]leafbind.Param{dsl.Arg("feature", leafbind.Any()), dsl.Arg("layer", leafbind.Named("ILayer"))}, refOf(leafbind.Bool()))
	coordsFn := leafbind.Func([]leafbind.Param{dsl.Arg("coords", leafbind.ArrayOf(leafbind.Number()))}, refOf(leafbind.Named("LatLng")))

	return []*leafbind.TypeDescriptor{
		dsl.Type("LayerGroup").
			Doc("Groups layers so they can be added, removed, and iterated as one.").
			Implements("ILayer").
			Ctor(dsl.OptArg("layers", leafbind.ArrayOf(leafbind.Named("ILayer")))).
			Method("addTo").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("LayerGroup")).
			Method("addLayer").Param("layer", leafbind.Named("ILayer")).Returns(leafbind.Named("LayerGroup")).
			Method("removeLayer").Param("layer", leafbind.Named("ILayer")).Returns(leafbind.Named("LayerGroup")).
			Method("hasLayer").Param("layer", leafbind.Named("ILayer")).Returns(leafbind.Bool()).
			Method("getLayer").Param("id", leafbind.Int()).Returns(leafbind.Named("ILayer")).
			Method("getLayers").Returns(leafbind.ArrayOf(leafbind.Named("ILayer"))).
			Method("clearLayers").Returns(leafbind.Named("LayerGroup")).
			Method("eachLayer").Param("fn", eachLayerFn).Returns(leafbind.Named("LayerGroup")).
			MustBuild(),

		dsl.Type("FeatureGroup").
			Inherits("LayerGroup").
			Doc("A LayerGroup that forwards its members' events and supports popup binding and styling as one unit.").
			Ctor(dsl.OptArg("layers", leafbind.ArrayOf(leafbind.Named("ILayer")))).
			Method("bindPopup").Param("content", leafbind.Union(leafbind.String(), leafbind.Named("HTMLElement"))).Opt("options", leafbind.Named("PopupOptions")).Returns(leafbind.Named("FeatureGroup")).
			Method("setStyle").Param("style", leafbind.Named("PathOptions")).Returns(leafbind.Named("FeatureGroup")).
			Doc("Applies the style to every member that has setStyle.").
			Method("bringToFront").Returns(leafbind.Named("FeatureGroup")).
			Method("bringToBack").Returns(leafbind.Named("FeatureGroup")).
			Method("getBounds").Returns(leafbind.Named("LatLngBounds")).
			Events(
				dsl.Event("click", leafbind.Named("MouseEvent"), "Forwarded from any member layer."),
				dsl.Event("dblclick", leafbind.Named("MouseEvent"), "Forwarded from any member layer."),
				dsl.Event("mouseover", leafbind.Named("MouseEvent"), "Forwarded from any member layer."),
				dsl.Event("mouseout", leafbind.Named("MouseEvent"), "Forwarded from any member layer."),
				dsl.Event("contextmenu", leafbind.Named("MouseEvent"), "Forwarded from any member layer."),
				dsl.Event("layeradd", leafbind.Named("LayerEvent"), "Fired when a layer joins the group."),
				dsl.Event("layerremove", leafbind.Named("LayerEvent"), "Fired when a layer leaves the group."),
			).
			MustBuild(),

		dsl.Type("GeoJSON").
			Inherits("FeatureGroup").
			Doc("Parses GeoJSON data into layers and manages them as a feature group.").
			Ctor(dsl.OptArg("geojson", leafbind.Any()), dsl.OptArg("options", leafbind.Named("GeoJSONOptions"))).
			Method("addData").Param("data", leafbind.Any()).Returns(leafbind.Named("GeoJSON")).
			Doc("Adds a GeoJSON object (feature or feature collection) to the layer.").
			Method("resetStyle").Param("layer", leafbind.Named("ILayer")).Returns(leafbind.Named("GeoJSON")).
			Doc("Reverts a member's style to what the style callback produced.").
			Method("setStyle").Param("style", styleFn).Returns(leafbind.Named("GeoJSON")).
			MustBuild(),

		dsl.Options("GeoJSONOptions").
			Field("pointToLayer", pointToLayerFn).Doc("Builds the layer for a point feature; defaults to a Marker.").
			Field("style", styleFn).Doc("Computes the style applied to each vector feature.").
			Field("onEachFeature", featureFn).Doc("Called with every feature and its layer after creation.").
			Field("filter", filterFn).Doc("Features answered with false are skipped entirely.").
			Field("coordsToLatLng", coordsFn).Doc("Custom decoding of GeoJSON coordinate arrays.").
			MustBuild(),
	}
}

func refOf(t leafbind.TypeRef) *leafbind.TypeRef { return &t }
