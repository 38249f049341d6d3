package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// controlTypes covers the control base class and the four built-in
// controls, named the way the Leaflet reference names them.
func controlTypes() []*leafbind.TypeDescriptor {
	return []*leafbind.TypeDescriptor{
		dsl.Type("Control").
			Doc("Base of map UI controls; concrete controls inherit it.").
			Implements("IControl").
			Ctor(dsl.OptArg("options", leafbind.Named("ControlOptions"))).
			Method("getPosition").Returns(leafbind.String()).
			Method("setPosition").Param("position", leafbind.String()).Returns(leafbind.Named("Control")).
			Method("getContainer").Returns(leafbind.Named("HTMLElement")).
			Method("addTo").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("Control")).
			Method("removeFrom").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("Control")).
			MustBuild(),

		dsl.Options("ControlOptions").
			Field("position", leafbind.String()).Default("topright").
			Doc("Map corner: topleft, topright, bottomleft, or bottomright.").
			MustBuild(),

		dsl.Type("Control.Zoom").
			Inherits("Control").
			Doc("The +/- zoom buttons, added by default unless MapOptions.zoomControl is false.").
			Ctor(dsl.OptArg("options", leafbind.Named("Control.ZoomOptions"))).
			MustBuild(),

		dsl.Options("Control.ZoomOptions").
			Field("position", leafbind.String()).Default("topleft").
			Field("zoomInText", leafbind.String()).Default("+").
			Field("zoomInTitle", leafbind.String()).Default("Zoom in").
			Field("zoomOutText", leafbind.String()).Default("-").
			Field("zoomOutTitle", leafbind.String()).Default("Zoom out").
			MustBuild(),

		dsl.Type("Control.Attribution").
			Inherits("Control").
			Doc("Shows layer attribution texts in a corner of the map.").
			Ctor(dsl.OptArg("options", leafbind.Named("Control.AttributionOptions"))).
			Method("setPrefix").Param("prefix", leafbind.String()).Returns(leafbind.Named("Control.Attribution")).
			Method("addAttribution").Param("text", leafbind.String()).Returns(leafbind.Named("Control.Attribution")).
			Method("removeAttribution").Param("text", leafbind.String()).Returns(leafbind.Named("Control.Attribution")).
			MustBuild(),

		dsl.Options("Control.AttributionOptions").
			Field("position", leafbind.String()).Default("bottomright").
			Field("prefix", leafbind.String()).Doc("HTML shown before the attributions; set empty to disable.").
			MustBuild(),

		dsl.Type("Control.Layers").
			Inherits("Control").
			Doc("The base-layer/overlay switcher.").
			Ctor(
				dsl.OptArg("baseLayers", leafbind.DictOf(leafbind.String(), leafbind.Named("ILayer"))),
				dsl.OptArg("overlays", leafbind.DictOf(leafbind.String(), leafbind.Named("ILayer"))),
				dsl.OptArg("options", leafbind.Named("Control.LayersOptions")),
			).
			Method("addBaseLayer").Param("layer", leafbind.Named("ILayer")).Param("name", leafbind.String()).Returns(leafbind.Named("Control.Layers")).
			Method("addOverlay").Param("layer", leafbind.Named("ILayer")).Param("name", leafbind.String()).Returns(leafbind.Named("Control.Layers")).
			Method("removeLayer").Param("layer", leafbind.Named("ILayer")).Returns(leafbind.Named("Control.Layers")).
			MustBuild(),

		dsl.Options("Control.LayersOptions").
			Field("position", leafbind.String()).Default("topright").
			Field("collapsed", leafbind.Bool()).Default(true).Doc("Expand only on hover or tap when true.").
			Field("autoZIndex", leafbind.Bool()).Default(true).
			MustBuild(),

		dsl.Type("Control.Scale").
			Inherits("Control").
			Doc("A simple metric/imperial scale indicator.").
			Ctor(dsl.OptArg("options", leafbind.Named("Control.ScaleOptions"))).
			MustBuild(),

		dsl.Options("Control.ScaleOptions").
			Field("position", leafbind.String()).Default("bottomleft").
			Field("maxWidth", leafbind.Int()).Default(100).
			Field("metric", leafbind.Bool()).Default(true).
			Field("imperial", leafbind.Bool()).Default(true).
			Field("updateWhenIdle", leafbind.Bool()).Default(false).Doc("Update only on moveend instead of continuously.").
			MustBuild(),
	}
}
