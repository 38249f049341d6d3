package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// markerEvents lists what a marker emits; drag events only matter when
// MarkerOptions.draggable is set, but the surface declares them regardless.
func markerEvents() []leafbind.EventDescriptor {
	mouse := leafbind.Named("MouseEvent")
	plain := leafbind.Named("Event")
	popup := leafbind.Named("PopupEvent")
	return []leafbind.EventDescriptor{
		dsl.Event("click", mouse, "Fired when the user clicks (or taps) the marker."),
		dsl.Event("dblclick", mouse, "Fired when the user double-clicks the marker."),
		dsl.Event("mousedown", mouse, "Fired when the user pushes a mouse button on the marker."),
		dsl.Event("mouseover", mouse, "Fired when the cursor enters the marker."),
		dsl.Event("mouseout", mouse, "Fired when the cursor leaves the marker."),
		dsl.Event("contextmenu", mouse, "Fired on marker right-click."),
		dsl.Event("dragstart", plain, "Fired when the user starts dragging the marker."),
		dsl.Event("drag", plain, "Fired repeatedly while the user drags the marker."),
		dsl.Event("dragend", leafbind.Named("DragEndEvent"), "Fired when marker dragging ends."),
		dsl.Event("move", plain, "Fired when the marker's position changes via setLatLng or drag."),
		dsl.Event("add", plain, "Fired when the marker is added to a map."),
		dsl.Event("remove", plain, "Fired when the marker is removed from a map."),
		dsl.Event("popupopen", popup, "Fired when the bound popup opens."),
		dsl.Event("popupclose", popup, "Fired when the bound popup closes."),
	}
}

// uiTypes covers icons, markers, and popups.
func uiTypes() []*leafbind.TypeDescriptor {
	content := leafbind.Union(leafbind.String(), leafbind.Named("HTMLElement"))
	return []*leafbind.TypeDescriptor{
		dsl.Type("Icon").
			Doc("An image-based marker icon.").
			Ctor(dsl.Arg("options", leafbind.Named("IconOptions"))).
			Method("createIcon").Opt("oldIcon", leafbind.Named("HTMLElement")).Returns(leafbind.Named("HTMLElement")).
			Doc("Builds (or reuses) the icon's DOM element; called by the marker, not user code.").
			Method("createShadow").Opt("oldIcon", leafbind.Named("HTMLElement")).Returns(leafbind.Named("HTMLElement")).
			MustBuild(),

		dsl.Options("IconOptions").
			Field("iconUrl", leafbind.String()).Doc("URL of the icon image.").
			Field("iconRetinaUrl", leafbind.String()).
			Field("iconSize", leafbind.Named("PointLike")).Doc("Size of the image in pixels.").
			Field("iconAnchor", leafbind.Named("PointLike")).Doc("Pixel of the image placed exactly at the marker position.").
			Field("popupAnchor", leafbind.Named("PointLike")).Doc("Where popups open, measured from the icon anchor.").
			Field("shadowUrl", leafbind.String()).
			Field("shadowRetinaUrl", leafbind.String()).
			Field("shadowSize", leafbind.Named("PointLike")).
			Field("shadowAnchor", leafbind.Named("PointLike")).
			Field("className", leafbind.String()).Doc("Custom class for the icon and shadow elements.").
			MustBuild(),

		dsl.Type("DivIcon").
			Inherits("Icon").
			Doc("A lightweight icon drawn with a styled div instead of an image.").
			Ctor(dsl.Arg("options", leafbind.Named("DivIconOptions"))).
			MustBuild(),

		dsl.Options("DivIconOptions").
			Field("html", leafbind.String()).Doc("Custom HTML placed inside the div.").
			Field("bgPos", leafbind.Named("PointLike")).Doc("Background position offset.").
			Field("iconSize", leafbind.Named("PointLike")).
			Field("iconAnchor", leafbind.Named("PointLike")).
			Field("className", leafbind.String()).Default("leaflet-div-icon").
			MustBuild(),

		dsl.Type("Marker").
			Doc("A clickable, optionally draggable icon placed at a geographical point.").
			Implements("ILayer").
			Ctor(dsl.Arg("latlng", leafbind.Named("LatLngLike")), dsl.OptArg("options", leafbind.Named("MarkerOptions"))).
			Method("addTo").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("Marker")).
			Method("getLatLng").Returns(leafbind.Named("LatLng")).
			Method("setLatLng").Param("latlng", leafbind.Named("LatLngLike")).Returns(leafbind.Named("Marker")).
			Method("setIcon").Param("icon", leafbind.Named("Icon")).Returns(leafbind.Named("Marker")).
			Method("setZIndexOffset").Param("offset", leafbind.Int()).Returns(leafbind.Named("Marker")).
			Method("setOpacity").Param("opacity", leafbind.Number()).Returns(leafbind.Named("Marker")).
			Method("update").Returns(leafbind.Named("Marker")).
			Doc("Repositions the DOM element after external coordinate changes.").
			Method("bindPopup").Param("content", leafbind.Union(leafbind.String(), leafbind.Named("HTMLElement"), leafbind.Named("Popup"))).Opt("options", leafbind.Named("PopupOptions")).Returns(leafbind.Named("Marker")).
			Doc("Binds a popup that opens on marker click.").
			Method("unbindPopup").Returns(leafbind.Named("Marker")).
			Method("openPopup").Returns(leafbind.Named("Marker")).
			Method("closePopup").Returns(leafbind.Named("Marker")).
			Method("togglePopup").Returns(leafbind.Named("Marker")).
			Method("getPopup").Returns(leafbind.Named("Popup")).
			Property("dragging", leafbind.Named("IHandler")).Doc("The marker drag handler; present once added to a map.").
			Events(markerEvents()...).
			MustBuild(),

		dsl.Options("MarkerOptions").
			Field("icon", leafbind.Named("Icon")).Doc("Icon instance; unset uses the library's blue default.").
			Field("clickable", leafbind.Bool()).Default(true).
			Field("draggable", leafbind.Bool()).Default(false).
			Field("keyboard", leafbind.Bool()).Default(true).Doc("Focusable and activatable by keyboard.").
			Field("title", leafbind.String()).Doc("Browser tooltip text.").
			Field("alt", leafbind.String()).
			Field("zIndexOffset", leafbind.Int()).Default(0).
			Field("opacity", leafbind.Number()).Default(1.0).
			Field("riseOnHover", leafbind.Bool()).Default(false).Doc("Bring the marker on top while hovered.").
			Field("riseOffset", leafbind.Int()).Default(250).
			MustBuild(),

		dsl.Type("Popup").
			Doc("A small overlay that opens over a point, usually bound to a layer.").
			Implements("ILayer").
			Ctor(dsl.OptArg("options", leafbind.Named("PopupOptions")), dsl.OptArg("source", leafbind.Named("ILayer"))).
			Method("addTo").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("Popup")).
			Method("openOn").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("Popup")).
			Doc("Adds and opens the popup, closing the previously opened one.").
			Method("setLatLng").Param("latlng", leafbind.Named("LatLngLike")).Returns(leafbind.Named("Popup")).
			Method("getLatLng").Returns(leafbind.Named("LatLng")).
			Method("setContent").Param("content", content).Returns(leafbind.Named("Popup")).
			Method("getContent").Returns(content).
			Method("update").Returns(leafbind.Named("Popup")).
			Doc("Recomputes size and position after content changes.").
			MustBuild(),

		dsl.Options("PopupOptions").
			Field("maxWidth", leafbind.Int()).Default(300).
			Field("minWidth", leafbind.Int()).Default(50).
			Field("maxHeight", leafbind.Int()).Doc("Scroll the content above this height.").
			Field("autoPan", leafbind.Bool()).Default(true).Doc("Pan the map so the whole popup is visible.").
			Field("autoPanPaddingTopLeft", leafbind.Named("PointLike")).
			Field("autoPanPaddingBottomRight", leafbind.Named("PointLike")).
			Field("autoPanPadding", leafbind.Named("PointLike")).
			Field("keepInView", leafbind.Bool()).Default(false).
			Field("closeButton", leafbind.Bool()).Default(true).
			Field("closeOnClick", leafbind.Bool()).Doc("Override the map-level closePopupOnClick for this popup.").
			Field("offset", leafbind.Named("PointLike")).
			Field("className", leafbind.String()).
			Field("zoomAnimation", leafbind.Bool()).Default(true).
			MustBuild(),
	}
}
