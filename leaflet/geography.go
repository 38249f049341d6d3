package leaflet

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/dsl"
)

// geographyTypes covers the basic value types: geographic and pixel
// coordinates, their bounds, and the shorthand unions Leaflet accepts
// wherever a coordinate is expected.
func geographyTypes() []*leafbind.TypeDescriptor {
	return []*leafbind.TypeDescriptor{
		dsl.Alias("LatLngLike",
			leafbind.Union(leafbind.Named("LatLng"), leafbind.ArrayOf(leafbind.Number())),
			"A LatLng instance or the raw [lat, lng] pair shorthand."),
		dsl.Alias("PointLike",
			leafbind.Union(leafbind.Named("Point"), leafbind.ArrayOf(leafbind.Number())),
			"A Point instance or the raw [x, y] pair shorthand."),
		dsl.Alias("LatLngBoundsLike",
			leafbind.Union(leafbind.Named("LatLngBounds"), leafbind.ArrayOf(leafbind.Named("LatLngLike"))),
			"A LatLngBounds instance or an array of coordinates to span."),

		dsl.Type("LatLng").
			Doc("A geographical point with latitude, longitude, and an optional altitude.").
			Ctor(dsl.Arg("lat", leafbind.Number()), dsl.Arg("lng", leafbind.Number()), dsl.OptArg("alt", leafbind.Number())).
			Property("lat", leafbind.Number()).Doc("Latitude in degrees.").
			Property("lng", leafbind.Number()).Doc("Longitude in degrees.").
			Property("alt", leafbind.Number()).Doc("Altitude in meters, when given.").
			Method("equals").Param("other", leafbind.Named("LatLngLike")).Opt("maxMargin", leafbind.Number()).Returns(leafbind.Bool()).
			Doc("Compares coordinates up to a margin of error.").
			Method("distanceTo").Param("other", leafbind.Named("LatLngLike")).Returns(leafbind.Number()).
			Doc("Distance to the other point in meters.").
			Method("wrap").Returns(leafbind.Named("LatLng")).
			Doc("Returns a copy with longitude wrapped to the -180..180 range.").
			Method("toBounds").Param("sizeInMeters", leafbind.Number()).Returns(leafbind.Named("LatLngBounds")).
			Method("toString").Returns(leafbind.String()).
			MustBuild(),

		dsl.Type("LatLngBounds").
			Doc("A rectangular area in geographical coordinates.").
			Ctor(dsl.Arg("corner1", leafbind.Named("LatLngLike")), dsl.Arg("corner2", leafbind.Named("LatLngLike"))).
			Ctor(dsl.Arg("latlngs", leafbind.ArrayOf(leafbind.Named("LatLngLike")))).
			Method("extend").Param("latlng", leafbind.Union(leafbind.Named("LatLngLike"), leafbind.Named("LatLngBoundsLike"))).Returns(leafbind.Named("LatLngBounds")).
			Doc("Widens the bounds to contain the given point or bounds.").
			Method("pad").Param("bufferRatio", leafbind.Number()).Returns(leafbind.Named("LatLngBounds")).
			Method("getCenter").Returns(leafbind.Named("LatLng")).
			Method("getSouthWest").Returns(leafbind.Named("LatLng")).
			Method("getNorthEast").Returns(leafbind.Named("LatLng")).
			Method("getNorthWest").Returns(leafbind.Named("LatLng")).
			Method("getSouthEast").Returns(leafbind.Named("LatLng")).
			Method("getWest").Returns(leafbind.Number()).
			Method("getSouth").Returns(leafbind.Number()).
			Method("getEast").Returns(leafbind.Number()).
			Method("getNorth").Returns(leafbind.Number()).
			Method("contains").Param("other", leafbind.Union(leafbind.Named("LatLngLike"), leafbind.Named("LatLngBoundsLike"))).Returns(leafbind.Bool()).
			Method("intersects").Param("other", leafbind.Named("LatLngBoundsLike")).Returns(leafbind.Bool()).
			Method("equals").Param("other", leafbind.Named("LatLngBoundsLike")).Returns(leafbind.Bool()).
			Method("isValid").Returns(leafbind.Bool()).
			Method("toBBoxString").Returns(leafbind.String()).
			Doc("Renders 'southwest_lng,southwest_lat,northeast_lng,northeast_lat' for WMS-style requests.").
			MustBuild(),

		dsl.Type("Point").
			Doc("A point in pixel coordinates.").
			Ctor(dsl.Arg("x", leafbind.Number()), dsl.Arg("y", leafbind.Number()), dsl.OptArg("round", leafbind.Bool())).
			Property("x", leafbind.Number()).
			Property("y", leafbind.Number()).
			Method("add").Param("other", leafbind.Named("PointLike")).Returns(leafbind.Named("Point")).
			Method("subtract").Param("other", leafbind.Named("PointLike")).Returns(leafbind.Named("Point")).
			Method("multiplyBy").Param("number", leafbind.Number()).Returns(leafbind.Named("Point")).
			Method("divideBy").Param("number", leafbind.Number()).Opt("round", leafbind.Bool()).Returns(leafbind.Named("Point")).
			Method("distanceTo").Param("other", leafbind.Named("PointLike")).Returns(leafbind.Number()).
			Method("equals").Param("other", leafbind.Named("PointLike")).Returns(leafbind.Bool()).
			Method("contains").Param("other", leafbind.Named("PointLike")).Returns(leafbind.Bool()).
			Doc("True when both coordinates of other are not greater in absolute value.").
			Method("round").Returns(leafbind.Named("Point")).
			Method("floor").Returns(leafbind.Named("Point")).
			Method("ceil").Returns(leafbind.Named("Point")).
			Method("toString").Returns(leafbind.String()).
			MustBuild(),

		dsl.Type("Bounds").
			Doc("A rectangular area in pixel coordinates.").
			Ctor(dsl.Arg("corner1", leafbind.Named("PointLike")), dsl.Arg("corner2", leafbind.Named("PointLike"))).
			Ctor(dsl.Arg("points", leafbind.ArrayOf(leafbind.Named("PointLike")))).
			Property("min", leafbind.Named("Point")).Doc("Top-left corner.").
			Property("max", leafbind.Named("Point")).Doc("Bottom-right corner.").
			Method("extend").Param("point", leafbind.Named("PointLike")).Returns(leafbind.Named("Bounds")).
			Method("getCenter").Opt("round", leafbind.Bool()).Returns(leafbind.Named("Point")).
			Method("getBottomLeft").Returns(leafbind.Named("Point")).
			Method("getTopRight").Returns(leafbind.Named("Point")).
			Method("getSize").Returns(leafbind.Named("Point")).
			Method("contains").Param("other", leafbind.Union(leafbind.Named("PointLike"), leafbind.Named("Bounds"))).Returns(leafbind.Bool()).
			Method("intersects").Param("other", leafbind.Named("Bounds")).Returns(leafbind.Bool()).
			MustBuild(),
	}
}
