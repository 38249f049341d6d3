package leafbind_test

import (
	"testing"

	leafbind "github.com/reoring/leafbind"
)

func newTestRegistry(t *testing.T) *leafbind.Registry {
	t.Helper()
	return leafbind.NewRegistry("leaflet", "0.0.0-test")
}

func TestRegistry_TwoPhaseRegistration(t *testing.T) {
	r := newTestRegistry(t)

	// Phase one: identities, including a forward reference target.
	if err := r.Declare("Map", "LatLng"); err != nil {
		t.Fatalf("declare err: %v", err)
	}

	// Phase two: Map's member list references LatLng before LatLng is defined.
	mapType := &leafbind.TypeDescriptor{
		Name: "Map",
		Kind: leafbind.TypeClass,
		Members: []leafbind.Member{
			{Kind: leafbind.MemberMethod, Name: "getCenter", Result: ref(leafbind.Named("LatLng"))},
		},
	}
	if err := r.Define(mapType); err != nil {
		t.Fatalf("define with declared forward ref should pass: %v", err)
	}
	if err := r.Define(&leafbind.TypeDescriptor{Name: "LatLng", Kind: leafbind.TypeClass}); err != nil {
		t.Fatalf("define LatLng err: %v", err)
	}

	a, err := r.Assembly()
	if err != nil {
		t.Fatalf("assembly err: %v", err)
	}
	if _, ok := a.Type("Map"); !ok {
		t.Fatalf("Map missing from assembly")
	}
}

func TestRegistry_DefineBeforeDeclareFails(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Define(&leafbind.TypeDescriptor{Name: "Marker", Kind: leafbind.TypeClass})
	if err == nil {
		t.Fatalf("expected error for define without declare")
	}
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeUndeclaredType {
		t.Fatalf("expected undeclared_type, got %v", err)
	}
}

func TestRegistry_UnresolvedReference(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Declare("Popup"); err != nil {
		t.Fatalf("declare err: %v", err)
	}

	popup := &leafbind.TypeDescriptor{
		Name: "Popup",
		Kind: leafbind.TypeClass,
		Members: []leafbind.Member{
			{Kind: leafbind.MemberMethod, Name: "openOn", Params: []leafbind.Param{
				{Name: "map", Type: leafbind.Named("Map")},
			}},
		},
	}
	err := r.Define(popup)
	if err == nil {
		t.Fatalf("expected error for undeclared reference target")
	}
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues error, got %v", err)
	}
	if iss[0].Code != leafbind.CodeUnresolvedRef || iss[0].Hint != "Map" {
		t.Fatalf("expected unresolved_ref for Map, got %+v", iss[0])
	}
	if iss[0].Path != "/Popup/members/openOn" {
		t.Fatalf("unexpected issue path: %q", iss[0].Path)
	}
}

func TestRegistry_ExternalSatisfiesReference(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.DeclareExternal("HTMLElement"); err != nil {
		t.Fatalf("declare external err: %v", err)
	}
	if err := r.Declare("Icon"); err != nil {
		t.Fatalf("declare err: %v", err)
	}
	icon := &leafbind.TypeDescriptor{
		Name: "Icon",
		Kind: leafbind.TypeClass,
		Members: []leafbind.Member{
			{Kind: leafbind.MemberMethod, Name: "createIcon", Result: ref(leafbind.Named("HTMLElement"))},
		},
	}
	if err := r.Define(icon); err != nil {
		t.Fatalf("external ref should resolve: %v", err)
	}
	a, err := r.Assembly()
	if err != nil {
		t.Fatalf("assembly err: %v", err)
	}
	if !a.External("HTMLElement") {
		t.Fatalf("HTMLElement should be marked external")
	}
}

func TestRegistry_DuplicateDefinition(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Declare("LatLng"); err != nil {
		t.Fatalf("declare err: %v", err)
	}
	td := &leafbind.TypeDescriptor{Name: "LatLng", Kind: leafbind.TypeClass}
	if err := r.Define(td); err != nil {
		t.Fatalf("first define err: %v", err)
	}
	err := r.Define(td)
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeDuplicateType {
		t.Fatalf("expected duplicate_type, got %v", err)
	}
}

func TestRegistry_DeclaredButNeverDefined(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Declare("Ghost"); err != nil {
		t.Fatalf("declare err: %v", err)
	}
	err := r.Verify()
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeUndefinedType {
		t.Fatalf("expected undefined_type, got %v", err)
	}
	if _, aerr := r.Assembly(); aerr == nil {
		t.Fatalf("assembly must refuse an unverified graph")
	}
}

func TestRegistry_DuplicateEventWithinType(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Declare("Map", "MouseEvent"); err != nil {
		t.Fatalf("declare err: %v", err)
	}
	td := &leafbind.TypeDescriptor{
		Name: "Map",
		Kind: leafbind.TypeClass,
		Events: []leafbind.EventDescriptor{
			{Name: "click", Payload: leafbind.Named("MouseEvent")},
			{Name: "click", Payload: leafbind.Named("MouseEvent")},
		},
	}
	err := r.Define(td)
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeDuplicateEvent {
		t.Fatalf("expected duplicate_event, got %v", err)
	}
}

func TestRegistry_OptionsRequireZeroCtor(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Declare("MarkerOptions"); err != nil {
		t.Fatalf("declare err: %v", err)
	}
	td := &leafbind.TypeDescriptor{
		Name: "MarkerOptions",
		Kind: leafbind.TypeOptions,
		Members: []leafbind.Member{
			{Kind: leafbind.MemberField, Name: "draggable", Type: ref(leafbind.Bool()), Optional: true},
		},
	}
	err := r.Define(td)
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeMissingZeroCtor {
		t.Fatalf("expected missing_zero_ctor, got %v", err)
	}
}

func TestRegistry_ResourceDependencies(t *testing.T) {
	r := newTestRegistry(t)

	if err := r.AddResource(leafbind.Resource{Name: "css", Kind: leafbind.ResourceStylesheet, URL: "x"}); err != nil {
		t.Fatalf("add css err: %v", err)
	}
	if err := r.AddResource(leafbind.Resource{Name: "js", Kind: leafbind.ResourceScript, URL: "y", Requires: []string{"css"}}); err != nil {
		t.Fatalf("add js err: %v", err)
	}
	if err := r.AddResource(leafbind.Resource{Name: "css", Kind: leafbind.ResourceStylesheet, URL: "z"}); err == nil {
		t.Fatalf("expected duplicate_resource")
	}
	if err := r.Verify(); err != nil {
		t.Fatalf("verify err: %v", err)
	}

	// Unknown dependency surfaces at Verify, not at AddResource.
	if err := r.AddResource(leafbind.Resource{Name: "plugin", Kind: leafbind.ResourceScript, URL: "p", Requires: []string{"missing"}}); err != nil {
		t.Fatalf("add plugin err: %v", err)
	}
	err := r.Verify()
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeUnknownResourceDep {
		t.Fatalf("expected unknown_resource_dep, got %v", err)
	}
}

func TestAssembly_StableTypeOrder(t *testing.T) {
	r := newTestRegistry(t)
	names := []string{"C", "A", "B"}
	if err := r.Declare(names...); err != nil {
		t.Fatalf("declare err: %v", err)
	}
	for _, n := range names {
		if err := r.Define(&leafbind.TypeDescriptor{Name: n, Kind: leafbind.TypeClass}); err != nil {
			t.Fatalf("define %s err: %v", n, err)
		}
	}
	a, err := r.Assembly()
	if err != nil {
		t.Fatalf("assembly err: %v", err)
	}
	got := a.Types()
	for i, n := range names {
		if got[i].Name != n {
			t.Fatalf("declaration order not preserved: got %s at %d, want %s", got[i].Name, i, n)
		}
	}
}

func ref(t leafbind.TypeRef) *leafbind.TypeRef { return &t }
