package dsl_test

import (
	"testing"

	leafbind "github.com/reoring/leafbind"
	g "github.com/reoring/leafbind/dsl"
)

func TestTypeBuilder_Basic(t *testing.T) {
	td := g.Type("Marker").
		Doc("A clickable icon on the map.").
		Implements("ILayer").
		Ctor(g.Arg("latlng", leafbind.Named("LatLngLike")), g.OptArg("options", leafbind.Named("MarkerOptions"))).
		Method("getLatLng").Returns(leafbind.Named("LatLng")).
		Method("setOpacity").Param("opacity", leafbind.Number()).Returns(leafbind.Named("Marker")).
		Property("dragging", leafbind.Named("IHandler")).
		MustBuild()

	if td.Kind != leafbind.TypeClass || td.Name != "Marker" {
		t.Fatalf("unexpected identity: %+v", td)
	}
	if len(td.Implements) != 1 || td.Implements[0] != "ILayer" {
		t.Fatalf("unexpected implements: %v", td.Implements)
	}

	ctors := td.MembersNamed("constructor")
	if len(ctors) != 1 || len(ctors[0].Params) != 2 {
		t.Fatalf("unexpected ctor set: %+v", ctors)
	}
	if !ctors[0].Params[1].Optional {
		t.Fatalf("options parameter should be optional")
	}

	ms := td.MembersNamed("setOpacity")
	if len(ms) != 1 || ms[0].Result == nil || ms[0].Result.Name != "Marker" {
		t.Fatalf("unexpected setOpacity: %+v", ms)
	}
	props := td.MembersNamed("dragging")
	if len(props) != 1 || props[0].Kind != leafbind.MemberProperty {
		t.Fatalf("unexpected dragging property: %+v", props)
	}
}

func TestTypeBuilder_OverloadsKeepDeclarationOrder(t *testing.T) {
	td := g.Type("Map").
		Method("openPopup").Param("popup", leafbind.Named("Popup")).Returns(leafbind.Named("Map")).
		Method("openPopup").Param("content", leafbind.String()).Param("latlng", leafbind.Named("LatLngLike")).Returns(leafbind.Named("Map")).
		MustBuild()

	ms := td.MembersNamed("openPopup")
	if len(ms) != 2 {
		t.Fatalf("expected overload set of 2, got %d", len(ms))
	}
	if len(ms[0].Params) != 1 || len(ms[1].Params) != 2 {
		t.Fatalf("overload order not preserved: %+v", ms)
	}
}

func TestTypeBuilder_EmptyNameFails(t *testing.T) {
	_, err := g.Type("").Build()
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeEmptyName {
		t.Fatalf("expected empty_name, got %v", err)
	}
}

func TestOptionsBuilder_SynthesizesZeroCtor(t *testing.T) {
	td := g.Options("MarkerOptions").
		Field("draggable", leafbind.Bool()).Default(false).
		Field("title", leafbind.String()).Doc("Browser tooltip text.").
		MustBuild()

	if td.Kind != leafbind.TypeOptions {
		t.Fatalf("unexpected kind: %v", td.Kind)
	}
	if !td.HasZeroCtor() {
		t.Fatalf("options record must expose a zero-argument constructor")
	}
	if td.Members[0].Kind != leafbind.MemberCtor || len(td.Members[0].Params) != 0 {
		t.Fatalf("synthesized ctor must come first: %+v", td.Members[0])
	}

	fields := td.MembersNamed("draggable")
	if len(fields) != 1 || fields[0].Kind != leafbind.MemberField {
		t.Fatalf("unexpected field: %+v", fields)
	}
	if !fields[0].Optional {
		t.Fatalf("options fields are always optional")
	}
	if v, ok := fields[0].Default.(bool); !ok || v {
		t.Fatalf("unexpected default: %v", fields[0].Default)
	}
}

func TestOptionsBuilder_DuplicateFieldFails(t *testing.T) {
	_, err := g.Options("PopupOptions").
		Field("maxWidth", leafbind.Int()).
		Field("maxWidth", leafbind.Int()).
		Build()
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeDuplicateField {
		t.Fatalf("expected duplicate_field, got %v", err)
	}
}

func TestAlias_CarriesTarget(t *testing.T) {
	td := g.Alias("LatLngLike",
		leafbind.Union(leafbind.Named("LatLng"), leafbind.ArrayOf(leafbind.Number())),
		"A LatLng or the raw [lat, lng] shorthand.")

	if td.Kind != leafbind.TypeAlias || td.Alias == nil {
		t.Fatalf("unexpected alias descriptor: %+v", td)
	}
	if td.Alias.Kind != leafbind.KindUnion || len(td.Alias.Variants) != 2 {
		t.Fatalf("unexpected alias target: %+v", td.Alias)
	}
}
