package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// eventTypes covers the event payload shapes. Every payload extends the
// base Event shape (type tag plus originating object); richer payloads add
// coordinates, the affected layer, an error code, and so on.
func eventTypes() []*leafbind.TypeDescriptor {
	return []*leafbind.TypeDescriptor{
		dsl.Type("Event").
			Doc("The base payload carried by every Leaflet event.").
			Property("type", leafbind.String()).Doc("The literal event name that fired.").
			Property("target", leafbind.Any()).Doc("The object that emitted the event.").
			MustBuild(),

		dsl.Type("MouseEvent").
			Inherits("Event").
			Doc("Payload of mouse interaction events.").
			Property("latlng", leafbind.Named("LatLng")).Doc("Geographical coordinate of the cursor.").
			Property("layerPoint", leafbind.Named("Point")).Doc("Cursor position relative to the map layer.").
			Property("containerPoint", leafbind.Named("Point")).Doc("Cursor position relative to the map container.").
			Property("originalEvent", leafbind.Any()).Doc("The DOM MouseEvent that triggered it.").
			MustBuild(),

		dsl.Type("LocationEvent").
			Inherits("Event").
			Doc("Payload of a successful geolocation request.").
			Property("latlng", leafbind.Named("LatLng")).
			Property("bounds", leafbind.Named("LatLngBounds")).Doc("Area of certainty around the detected position.").
			Property("accuracy", leafbind.Number()).Doc("Accuracy of the location in meters.").
			Property("altitude", leafbind.Number()).
			Property("altitudeAccuracy", leafbind.Number()).
			Property("heading", leafbind.Number()).
			Property("speed", leafbind.Number()).
			Property("timestamp", leafbind.Number()).
			MustBuild(),

		dsl.Type("ErrorEvent").
			Inherits("Event").
			Doc("Payload of a failed operation, e.g. a geolocation denial.").
			Property("message", leafbind.String()).
			Property("code", leafbind.Number()).Doc("Library or browser error code.").
			MustBuild(),

		dsl.Type("LayerEvent").
			Inherits("Event").
			Property("layer", leafbind.Named("ILayer")).Doc("The layer that was added or removed.").
			MustBuild(),

		dsl.Type("LayersControlEvent").
			Inherits("Event").
			Property("layer", leafbind.Named("ILayer")).
			Property("name", leafbind.String()).Doc("The layer's label in the layers control.").
			MustBuild(),

		dsl.Type("TileEvent").
			Inherits("Event").
			Property("tile", leafbind.Named("HTMLElement")).Doc("The tile image element.").
			Property("url", leafbind.String()).
			MustBuild(),

		dsl.Type("TileErrorEvent").
			Inherits("TileEvent").
			Property("error", leafbind.Any()).
			MustBuild(),

		dsl.Type("ResizeEvent").
			Inherits("Event").
			Property("oldSize", leafbind.Named("Point")).
			Property("newSize", leafbind.Named("Point")).
			MustBuild(),

		dsl.Type("DragEndEvent").
			Inherits("Event").
			Property("distance", leafbind.Number()).Doc("Distance in pixels the object was dragged.").
			MustBuild(),

		dsl.Type("PopupEvent").
			Inherits("Event").
			Property("popup", leafbind.Named("Popup")).
			MustBuild(),

		dsl.Type("GeoJSONEvent").
			Inherits("Event").
			Property("layer", leafbind.Named("ILayer")).Doc("The layer created for the feature.").
			Property("properties", leafbind.Any()).Doc("GeoJSON properties of the feature.").
			Property("geometryType", leafbind.String()).
			Property("id", leafbind.String()).
			MustBuild(),
	}
}
