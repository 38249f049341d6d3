package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// mapEvents enumerates everything a map instance emits. The accessor
// combinator turns each entry into on_/once_/off_/fire_ members.
func mapEvents() []leafbind.EventDescriptor {
	mouse := leafbind.Named("MouseEvent")
	plain := leafbind.Named("Event")
	layer := leafbind.Named("LayerEvent")
	layersCtl := leafbind.Named("LayersControlEvent")
	popup := leafbind.Named("PopupEvent")
	return []leafbind.EventDescriptor{
		dsl.Event("click", mouse, "Fired when the user clicks (or taps) the map."),
		dsl.Event("dblclick", mouse, "Fired when the user double-clicks the map."),
		dsl.Event("mousedown", mouse, "Fired when the user pushes a mouse button on the map."),
		dsl.Event("mouseup", mouse, "Fired when the user releases a mouse button on the map."),
		dsl.Event("mouseover", mouse, "Fired when the cursor enters the map."),
		dsl.Event("mouseout", mouse, "Fired when the cursor leaves the map."),
		dsl.Event("mousemove", mouse, "Fired while the cursor moves over the map."),
		dsl.Event("contextmenu", mouse, "Fired on right-click; suppresses the browser menu when handled."),
		dsl.Event("focus", plain, "Fired when the map gets focus."),
		dsl.Event("blur", plain, "Fired when the map loses focus."),
		dsl.Event("preclick", mouse, "Fired before a click, useful for closing popups first."),
		dsl.Event("load", plain, "Fired once the center and zoom are set for the first time."),
		dsl.Event("unload", plain, "Fired when the map is destroyed with remove."),
		dsl.Event("viewreset", plain, "Fired when the view changes enough to recompute layer positions."),
		dsl.Event("movestart", plain, "Fired when the view starts changing."),
		dsl.Event("move", plain, "Fired repeatedly while the view changes."),
		dsl.Event("moveend", plain, "Fired when the view stops changing."),
		dsl.Event("dragstart", plain, "Fired when the user starts dragging the map."),
		dsl.Event("drag", plain, "Fired repeatedly while the user drags the map."),
		dsl.Event("dragend", leafbind.Named("DragEndEvent"), "Fired when map dragging ends."),
		dsl.Event("zoomstart", plain, "Fired when a zoom change starts."),
		dsl.Event("zoomend", plain, "Fired when a zoom change completes."),
		dsl.Event("zoomlevelschange", plain, "Fired when the available zoom range changes."),
		dsl.Event("resize", leafbind.Named("ResizeEvent"), "Fired when the map container is resized."),
		dsl.Event("autopanstart", plain, "Fired when the map starts panning to fit an opened popup."),
		dsl.Event("layeradd", layer, "Fired when a layer is added to the map."),
		dsl.Event("layerremove", layer, "Fired when a layer is removed from the map."),
		dsl.Event("baselayerchange", layersCtl, "Fired when the active base layer changes via the layers control."),
		dsl.Event("overlayadd", layersCtl, "Fired when an overlay is enabled via the layers control."),
		dsl.Event("overlayremove", layersCtl, "Fired when an overlay is disabled via the layers control."),
		dsl.Event("locationfound", leafbind.Named("LocationEvent"), "Fired when geolocation succeeds."),
		dsl.Event("locationerror", leafbind.Named("ErrorEvent"), "Fired when geolocation fails."),
		dsl.Event("popupopen", popup, "Fired when a popup is opened on the map."),
		dsl.Event("popupclose", popup, "Fired when a popup on the map is closed."),
	}
}

// mapTypes covers the central Map class and its option records.
func mapTypes() []*leafbind.TypeDescriptor {
	eachLayerFn := leafbind.Func([]leafbind.Param{dsl.Arg("layer", leafbind.Named("ILayer"))}, nil)
	whenReadyFn := leafbind.Func(nil, nil)

	mapType := dsl.Type("Map").
		Doc("The central class: instantiated on a page div, it ties layers, handlers, and controls together.").
		Ctor(dsl.Arg("id", leafbind.Union(leafbind.String(), leafbind.Named("HTMLElement"))), dsl.OptArg("options", leafbind.Named("MapOptions"))).
		// View state.
		Method("setView").Param("center", leafbind.Named("LatLngLike")).Opt("zoom", leafbind.Int()).Opt("options", leafbind.Named("ZoomPanOptions")).Returns(leafbind.Named("Map")).
		Doc("Sets the view of the map with the given center and zoom.").
		Method("setZoom").Param("zoom", leafbind.Int()).Opt("options", leafbind.Named("ZoomPanOptions")).Returns(leafbind.Named("Map")).
		Method("zoomIn").Opt("delta", leafbind.Int()).Opt("options", leafbind.Named("ZoomPanOptions")).Returns(leafbind.Named("Map")).
		Method("zoomOut").Opt("delta", leafbind.Int()).Opt("options", leafbind.Named("ZoomPanOptions")).Returns(leafbind.Named("Map")).
		Method("setZoomAround").Param("fixedPoint", leafbind.Named("LatLngLike")).Param("zoom", leafbind.Int()).Opt("options", leafbind.Named("ZoomPanOptions")).Returns(leafbind.Named("Map")).
		Doc("Zooms while keeping the given geographical point fixed on screen.").
		Method("fitBounds").Param("bounds", leafbind.Named("LatLngBoundsLike")).Opt("options", leafbind.Named("FitBoundsOptions")).Returns(leafbind.Named("Map")).
		Method("fitWorld").Opt("options", leafbind.Named("FitBoundsOptions")).Returns(leafbind.Named("Map")).
		Method("panTo").Param("latlng", leafbind.Named("LatLngLike")).Opt("options", leafbind.Named("ZoomPanOptions")).Returns(leafbind.Named("Map")).
		Method("panBy").Param("offset", leafbind.Named("PointLike")).Opt("options", leafbind.Named("ZoomPanOptions")).Returns(leafbind.Named("Map")).
		Method("setMaxBounds").Param("bounds", leafbind.Named("LatLngBoundsLike")).Returns(leafbind.Named("Map")).
		Method("invalidateSize").Opt("options", leafbind.Named("ZoomPanOptions")).Returns(leafbind.Named("Map")).
		Doc("Rechecks the container size and updates the view; call after changing the div's dimensions.").
		Method("remove").Returns(leafbind.Named("Map")).
		Doc("Destroys the map and clears the container.").
		// Geolocation.
		Method("locate").Opt("options", leafbind.Named("LocateOptions")).Returns(leafbind.Named("Map")).
		Doc("Requests the user's position; answers arrive as locationfound or locationerror events.").
		Method("stopLocate").Returns(leafbind.Named("Map")).
		// Getters.
		Method("getCenter").Returns(leafbind.Named("LatLng")).
		Method("getZoom").Returns(leafbind.Int()).
		Method("getMinZoom").Returns(leafbind.Int()).
		Method("getMaxZoom").Returns(leafbind.Int()).
		Method("getBounds").Returns(leafbind.Named("LatLngBounds")).
		Method("getBoundsZoom").Param("bounds", leafbind.Named("LatLngBoundsLike")).Opt("inside", leafbind.Bool()).Returns(leafbind.Int()).
		Method("getSize").Returns(leafbind.Named("Point")).
		Method("getPixelBounds").Returns(leafbind.Named("Bounds")).
		Method("getPixelOrigin").Returns(leafbind.Named("Point")).
		Method("getContainer").Returns(leafbind.Named("HTMLElement")).
		// Layers and controls.
		Method("addLayer").Param("layer", leafbind.Named("ILayer")).Returns(leafbind.Named("Map")).
		Method("removeLayer").Param("layer", leafbind.Named("ILayer")).Returns(leafbind.Named("Map")).
		Method("hasLayer").Param("layer", leafbind.Named("ILayer")).Returns(leafbind.Bool()).
		Method("eachLayer").Param("fn", eachLayerFn).Returns(leafbind.Named("Map")).
		Method("addControl").Param("control", leafbind.Named("IControl")).Returns(leafbind.Named("Map")).
		Method("removeControl").Param("control", leafbind.Named("IControl")).Returns(leafbind.Named("Map")).
		// Popups.
		Method("openPopup").Param("popup", leafbind.Named("Popup")).Returns(leafbind.Named("Map")).
		Method("openPopup").Param("content", leafbind.String()).Param("latlng", leafbind.Named("LatLngLike")).Opt("options", leafbind.Named("PopupOptions")).Returns(leafbind.Named("Map")).
		Doc("Shorthand that creates the popup, too.").
		Method("closePopup").Opt("popup", leafbind.Named("Popup")).Returns(leafbind.Named("Map")).
		// Conversions.
		Method("latLngToLayerPoint").Param("latlng", leafbind.Named("LatLngLike")).Returns(leafbind.Named("Point")).
		Method("layerPointToLatLng").Param("point", leafbind.Named("PointLike")).Returns(leafbind.Named("LatLng")).
		Method("latLngToContainerPoint").Param("latlng", leafbind.Named("LatLngLike")).Returns(leafbind.Named("Point")).
		Method("containerPointToLatLng").Param("point", leafbind.Named("PointLike")).Returns(leafbind.Named("LatLng")).
		Method("containerPointToLayerPoint").Param("point", leafbind.Named("PointLike")).Returns(leafbind.Named("Point")).
		Method("layerPointToContainerPoint").Param("point", leafbind.Named("PointLike")).Returns(leafbind.Named("Point")).
		Method("project").Param("latlng", leafbind.Named("LatLngLike")).Opt("zoom", leafbind.Int()).Returns(leafbind.Named("Point")).
		Method("unproject").Param("point", leafbind.Named("PointLike")).Opt("zoom", leafbind.Int()).Returns(leafbind.Named("LatLng")).
		Method("mouseEventToLatLng").Param("event", leafbind.Any()).Returns(leafbind.Named("LatLng")).
		Method("whenReady").Param("fn", whenReadyFn).Returns(leafbind.Named("Map")).
		Doc("Runs fn once the map is initialized, immediately if it already is.").
		// Interaction handlers exposed as properties.
		Property("dragging", leafbind.Named("IHandler")).Doc("Map panning by mouse or touch drag.").
		Property("touchZoom", leafbind.Named("IHandler")).
		Property("doubleClickZoom", leafbind.Named("IHandler")).
		Property("scrollWheelZoom", leafbind.Named("IHandler")).
		Property("boxZoom", leafbind.Named("IHandler")).Doc("Shift-drag rectangle zoom.").
		Property("keyboard", leafbind.Named("IHandler")).
		Property("zoomControl", leafbind.Named("Control.Zoom")).Doc("The default zoom control, unless disabled in MapOptions.").
		Property("attributionControl", leafbind.Named("Control.Attribution")).
		Events(mapEvents()...).
		MustBuild()

	return []*leafbind.TypeDescriptor{
		mapType,

		dsl.Options("MapOptions").
			Doc("Configuration bag for the Map constructor.").
			Field("center", leafbind.Named("LatLngLike")).Doc("Initial geographical center.").
			Field("zoom", leafbind.Int()).Doc("Initial zoom level.").
			Field("minZoom", leafbind.Int()).
			Field("maxZoom", leafbind.Int()).
			Field("maxBounds", leafbind.Named("LatLngBoundsLike")).Doc("Restricts panning to the given area.").
			Field("layers", leafbind.ArrayOf(leafbind.Named("ILayer"))).Doc("Layers added right after construction.").
			Field("dragging", leafbind.Bool()).Default(true).
			Field("touchZoom", leafbind.Bool()).Default(true).
			Field("scrollWheelZoom", leafbind.Bool()).Default(true).
			Field("doubleClickZoom", leafbind.Bool()).Default(true).
			Field("boxZoom", leafbind.Bool()).Default(true).
			Field("keyboard", leafbind.Bool()).Default(true).
			Field("keyboardPanOffset", leafbind.Int()).Default(80).
			Field("inertia", leafbind.Bool()).Default(true).
			Field("inertiaDeceleration", leafbind.Number()).Default(3000).
			Field("inertiaMaxSpeed", leafbind.Number()).Default(1500).
			Field("zoomControl", leafbind.Bool()).Default(true).
			Field("attributionControl", leafbind.Bool()).Default(true).
			Field("closePopupOnClick", leafbind.Bool()).Default(true).
			Field("trackResize", leafbind.Bool()).Default(true).Doc("Update the map on window resize.").
			Field("worldCopyJump", leafbind.Bool()).Default(false).
			Field("fadeAnimation", leafbind.Bool()).Default(true).
			Field("zoomAnimation", leafbind.Bool()).Default(true).
			Field("zoomAnimationThreshold", leafbind.Int()).Default(4).
			Field("markerZoomAnimation", leafbind.Bool()).Default(true).
			MustBuild(),

		dsl.Options("ZoomPanOptions").
			Doc("Animation knobs for view changes.").
			Field("animate", leafbind.Bool()).Doc("Force or forbid animating; unset lets the library decide by distance.").
			Field("duration", leafbind.Number()).Default(0.25).Doc("Animation duration in seconds.").
			Field("easeLinearity", leafbind.Number()).Default(0.25).
			Field("noMoveStart", leafbind.Bool()).Default(false).Doc("Suppress the movestart event on this change.").
			MustBuild(),

		dsl.Options("FitBoundsOptions").
			Inherits("ZoomPanOptions").
			Field("paddingTopLeft", leafbind.Named("PointLike")).
			Field("paddingBottomRight", leafbind.Named("PointLike")).
			Field("padding", leafbind.Named("PointLike")).Doc("Sets both corner paddings at once.").
			Field("maxZoom", leafbind.Int()).
			MustBuild(),

		dsl.Options("LocateOptions").
			Doc("Configuration bag for Map.locate.").
			Field("watch", leafbind.Bool()).Default(false).Doc("Keep watching the position instead of answering once.").
			Field("setView", leafbind.Bool()).Default(false).Doc("Center the map on the answer automatically.").
			Field("maxZoom", leafbind.Int()).
			Field("timeout", leafbind.Int()).Default(10000).Doc("Milliseconds before locationerror fires.").
			Field("maximumAge", leafbind.Int()).Default(0).
			Field("enableHighAccuracy", leafbind.Bool()).Default(false).
			MustBuild(),
	}
}
