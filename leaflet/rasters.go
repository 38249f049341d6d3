package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// rasterTypes covers tile and image layers.
func rasterTypes() []*leafbind.TypeDescriptor {
	return []*leafbind.TypeDescriptor{
		dsl.Type("TileLayer").
			Doc("Renders map imagery as a grid of image tiles fetched from a URL template.").
			Implements("ILayer").
			Ctor(dsl.Arg("urlTemplate", leafbind.String()), dsl.OptArg("options", leafbind.Named("TileLayerOptions"))).
			Method("addTo").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("TileLayer")).
			Method("setUrl").Param("urlTemplate", leafbind.String()).Opt("noRedraw", leafbind.Bool()).Returns(leafbind.Named("TileLayer")).
			Doc("Swaps the URL template and redraws the visible tiles.").
			Method("setOpacity").Param("opacity", leafbind.Number()).Returns(leafbind.Named("TileLayer")).
			Method("setZIndex").Param("zIndex", leafbind.Int()).Returns(leafbind.Named("TileLayer")).
			Method("bringToFront").Returns(leafbind.Named("TileLayer")).
			Method("bringToBack").Returns(leafbind.Named("TileLayer")).
			Method("redraw").Returns(leafbind.Named("TileLayer")).
			Doc("Discards every tile and refetches.").
			Method("getContainer").Returns(leafbind.Named("HTMLElement")).
			Events(
				dsl.Event("loading", leafbind.Named("Event"), "Fired when the layer starts loading the visible grid."),
				dsl.Event("load", leafbind.Named("Event"), "Fired when every visible tile finished loading."),
				dsl.Event("tileloadstart", leafbind.Named("TileEvent"), "Fired when a tile request begins."),
				dsl.Event("tileload", leafbind.Named("TileEvent"), "Fired when one tile loads."),
				dsl.Event("tileunload", leafbind.Named("TileEvent"), "Fired when a tile leaves the visible grid."),
				dsl.Event("tileerror", leafbind.Named("TileErrorEvent"), "Fired when a tile fails to load."),
			).
			MustBuild(),

		dsl.Options("TileLayerOptions").
			Doc("Configuration bag for TileLayer.").
			Field("minZoom", leafbind.Int()).Default(0).
			Field("maxZoom", leafbind.Int()).Default(18).
			Field("maxNativeZoom", leafbind.Int()).Doc("Above this zoom, tiles from this level are upscaled instead of fetched.").
			Field("tileSize", leafbind.Int()).Default(256).
			Field("subdomains", leafbind.Union(leafbind.String(), leafbind.ArrayOf(leafbind.String()))).Doc("Values substituted for {s} in the URL template.").
			Field("errorTileUrl", leafbind.String()).Doc("Image shown in place of tiles that failed to load.").
			Field("attribution", leafbind.String()).Doc("Text for the attribution control.").
			Field("tms", leafbind.Bool()).Default(false).Doc("Invert the Y axis numbering for TMS services.").
			Field("noWrap", leafbind.Bool()).Default(false).
			Field("zoomOffset", leafbind.Int()).Default(0).
			Field("zoomReverse", leafbind.Bool()).Default(false).
			Field("opacity", leafbind.Number()).Default(1.0).
			Field("zIndex", leafbind.Int()).
			Field("updateWhenIdle", leafbind.Bool()).Doc("Defer tile loading until panning ends; defaults to true on mobile.").
			Field("detectRetina", leafbind.Bool()).Default(false).
			Field("crossOrigin", leafbind.Bool()).Default(false).
			Field("bounds", leafbind.Named("LatLngBoundsLike")).Doc("Only fetch tiles inside this area.").
			MustBuild(),

		dsl.Type("ImageOverlay").
			Doc("Stretches a single image over geographical bounds.").
			Implements("ILayer").
			Ctor(dsl.Arg("imageUrl", leafbind.String()), dsl.Arg("bounds", leafbind.Named("LatLngBoundsLike")), dsl.OptArg("options", leafbind.Named("ImageOverlayOptions"))).
			Method("addTo").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("ImageOverlay")).
			Method("setOpacity").Param("opacity", leafbind.Number()).Returns(leafbind.Named("ImageOverlay")).
			Method("setUrl").Param("imageUrl", leafbind.String()).Returns(leafbind.Named("ImageOverlay")).
			Method("bringToFront").Returns(leafbind.Named("ImageOverlay")).
			Method("bringToBack").Returns(leafbind.Named("ImageOverlay")).
			MustBuild(),

		dsl.Options("ImageOverlayOptions").
			Field("opacity", leafbind.Number()).Default(1.0).
			Field("alt", leafbind.String()).
			Field("attribution", leafbind.String()).
			Field("crossOrigin", leafbind.Bool()).Default(false).
			MustBuild(),
	}
}
