package leafbind_test

import (
	"sort"
	"testing"

	leafbind "github.com/reoring/leafbind"
)

func TestTypeRef_NamedRefsTraversal(t *testing.T) {
	// bindPopup-style signature: union parameter, callback, dictionary.
	r := leafbind.Func([]leafbind.Param{
		{Name: "content", Type: leafbind.Union(leafbind.String(), leafbind.Named("Popup"))},
		{Name: "handlers", Type: leafbind.DictOf(leafbind.String(), leafbind.Func([]leafbind.Param{
			{Name: "e", Type: leafbind.Named("MouseEvent")},
		}, nil))},
		{Name: "rest", Type: leafbind.Variadic(leafbind.ArrayOf(leafbind.Named("LatLng")))},
	}, refOf(leafbind.Named("Marker")))

	got := r.NamedRefs(nil)
	sort.Strings(got)
	want := []string{"LatLng", "Marker", "MouseEvent", "Popup"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestTypeRef_PrimitivesCarryNoRefs(t *testing.T) {
	for _, r := range []leafbind.TypeRef{
		leafbind.String(), leafbind.Number(), leafbind.Int(), leafbind.Bool(), leafbind.Any(),
	} {
		if refs := r.NamedRefs(nil); len(refs) != 0 {
			t.Fatalf("primitive %q should carry no named refs, got %v", r.Name, refs)
		}
	}
}

func refOf(t leafbind.TypeRef) *leafbind.TypeRef { return &t }
