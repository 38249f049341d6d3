// Package dsl provides the fluent builders that declare a bound type's
// surface for leafbind.
//
// Overview
//   - Builder API: declare a class with Type()/Ctor()/Method()/Property(),
//     chain Param/Opt/Returns/Static/Doc on the current member, then
//     Build()/MustBuild().
//   - Iface() declares a capability contract (ILayer, IControl, IHandler);
//     Options() declares an all-optional argument bag and synthesizes its
//     zero-argument constructor; Alias() names a TypeRef shorthand.
//   - Events(base, events...) is the event-accessor combinator: for every
//     declared event it derives on_<name>, once_<name>, off_<name> (two
//     overloads) and fire_<name>, and grafts the generic string-keyed
//     on/once/off/fire primitives once per type. The builder-level
//     Events(...) chain applies the same combinator at Build time.
//
// Entry points
//   - Type(name): class builder; Iface(name): interface builder.
//   - Options(name): options-record builder; each Field is optional and may
//     carry a library-side Default.
//   - Alias(name, target, doc): named shorthand, usually for the
//     LatLng-or-coordinate-pair union.
//   - Event(name, payload, doc): one event declaration for the combinator.
//
// Design guidelines
//   - Builders accumulate diagnostics instead of panicking; Build returns
//     leafbind.Issues, MustBuild panics on them. Duplicate event names and
//     duplicate options fields are configuration errors caught here, never
//     at call time.
//   - The combinator is a pure transformation over descriptors: the input
//     descriptor is never mutated, derived member names are deterministic
//     functions of the event name.
//
// Example (quickstart)
//
//	marker := dsl.Type("Marker").
//	    Doc("A clickable, draggable icon on the map.").
//	    Implements("ILayer").
//	    Ctor(dsl.Arg("latlng", leafbind.Named("LatLngLike")), dsl.OptArg("options", leafbind.Named("MarkerOptions"))).
//	    Method("addTo").Param("map", leafbind.Named("Map")).Returns(leafbind.Named("Marker")).
//	    Method("getLatLng").Returns(leafbind.Named("LatLng")).
//	    Events(
//	        dsl.Event("click", leafbind.Named("MouseEvent"), "Fired when the user clicks the marker."),
//	        dsl.Event("dragend", leafbind.Named("DragEndEvent"), "Fired when dragging ends."),
//	    ).
//	    MustBuild()
package dsl
