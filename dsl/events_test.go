package dsl_test

import (
	"testing"

	leafbind "github.com/reoring/leafbind"
	g "github.com/reoring/leafbind/dsl"
)

func baseWithEvents(t *testing.T, events ...leafbind.EventDescriptor) *leafbind.TypeDescriptor {
	t.Helper()
	td, err := g.Events(g.Type("Widget").MustBuild(), events...)
	if err != nil {
		t.Fatalf("events err: %v", err)
	}
	return td
}

func TestEvents_DerivesFourAccessorsPerEvent(t *testing.T) {
	td := baseWithEvents(t,
		g.Event("click", leafbind.Named("MouseEvent"), "Fired on click."),
		g.Event("resize", leafbind.Named("ResizeEvent"), "Fired on resize."),
	)

	for _, name := range []string{"click", "resize"} {
		on := td.MembersNamed("on_" + name)
		once := td.MembersNamed("once_" + name)
		off := td.MembersNamed("off_" + name)
		fire := td.MembersNamed("fire_" + name)

		if len(on) != 1 || len(once) != 1 || len(fire) != 1 {
			t.Fatalf("%s: expected single on/once/fire accessors, got %d/%d/%d", name, len(on), len(once), len(fire))
		}
		// off has two overloads: remove one handler, remove them all.
		if len(off) != 2 {
			t.Fatalf("%s: expected two off overloads, got %d", name, len(off))
		}
		if len(off[0].Params) != 1 || len(off[1].Params) != 0 {
			t.Fatalf("%s: off overloads out of order: %+v", name, off)
		}
		for _, m := range [][]leafbind.Member{on, once, off, fire} {
			for _, mm := range m {
				if mm.EventName != name {
					t.Fatalf("accessor %s must forward the literal %q, got %q", mm.Name, name, mm.EventName)
				}
			}
		}
	}
}

func TestEvents_HandlerAndFirePayloadShapes(t *testing.T) {
	td := baseWithEvents(t, g.Event("mousemove", leafbind.Named("MouseEvent"), ""))

	on := td.MembersNamed("on_mousemove")[0]
	if len(on.Params) != 1 || on.Params[0].Type.Kind != leafbind.KindFunc {
		t.Fatalf("on accessor must take a callback, got %+v", on.Params)
	}
	handler := on.Params[0].Type
	if len(handler.Params) != 1 || handler.Params[0].Type.Name != "MouseEvent" {
		t.Fatalf("handler must receive the payload type, got %+v", handler.Params)
	}
	if handler.Result != nil {
		t.Fatalf("handlers return void")
	}

	fire := td.MembersNamed("fire_mousemove")[0]
	if len(fire.Params) != 1 || fire.Params[0].Type.Name != "MouseEvent" {
		t.Fatalf("fire must take the payload itself, got %+v", fire.Params)
	}
}

func TestEvents_GraftsGenericPrimitivesOnce(t *testing.T) {
	td := baseWithEvents(t, g.Event("click", leafbind.Named("MouseEvent"), ""))

	// A second augmentation must not duplicate the escape hatch.
	td2, err := g.Events(td, g.Event("dblclick", leafbind.Named("MouseEvent"), ""))
	if err != nil {
		t.Fatalf("second events err: %v", err)
	}

	for _, name := range []string{"fire", "addEventListener", "removeEventListener", "hasEventListeners", "clearAllEventListeners"} {
		if len(td2.MembersNamed(name)) == 0 {
			t.Fatalf("generic primitive %s missing", name)
		}
	}
	// on/once: string form plus batch-map overload.
	if got := td2.MembersNamed("on"); len(got) != 2 {
		t.Fatalf("expected 2 on overloads, got %d", len(got))
	}
	if got := td2.MembersNamed("once"); len(got) != 2 {
		t.Fatalf("expected 2 once overloads, got %d", len(got))
	}
	// off: (type, fn?) plus the remove-everything bare form.
	if got := td2.MembersNamed("off"); len(got) != 2 {
		t.Fatalf("expected 2 off overloads, got %d", len(got))
	}

	// Generic primitives take a runtime event-name string, not a literal.
	on := td2.MembersNamed("on")[0]
	if on.EventName != "" || on.Params[0].Type.Kind != leafbind.KindPrimitive {
		t.Fatalf("generic on must be string-keyed: %+v", on)
	}
	// Batch overload takes an event-name keyed map of handlers.
	batch := td2.MembersNamed("on")[1]
	if len(batch.Params) != 1 || batch.Params[0].Type.Kind != leafbind.KindDict {
		t.Fatalf("batch on must take an event map: %+v", batch)
	}
}

func TestEvents_DuplicateNameIsBuildError(t *testing.T) {
	_, err := g.Events(g.Type("Widget").MustBuild(),
		g.Event("click", leafbind.Named("MouseEvent"), ""),
		g.Event("click", leafbind.Named("MouseEvent"), ""),
	)
	iss, ok := leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeDuplicateEvent {
		t.Fatalf("expected duplicate_event, got %v", err)
	}

	// Also across successive augmentations of the same type.
	td := baseWithEvents(t, g.Event("click", leafbind.Named("MouseEvent"), ""))
	_, err = g.Events(td, g.Event("click", leafbind.Named("MouseEvent"), ""))
	iss, ok = leafbind.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != leafbind.CodeDuplicateEvent {
		t.Fatalf("expected duplicate_event across augmentations, got %v", err)
	}
}

func TestEvents_PureOverInput(t *testing.T) {
	base := g.Type("Widget").Method("noop").MustBuild()
	before := len(base.Members)

	if _, err := g.Events(base, g.Event("click", leafbind.Named("MouseEvent"), "")); err != nil {
		t.Fatalf("events err: %v", err)
	}
	if len(base.Members) != before || len(base.Events) != 0 {
		t.Fatalf("combinator must not mutate its input")
	}
}

func TestTypeBuilder_EventsChainAppliesCombinator(t *testing.T) {
	td := g.Type("Widget").
		Events(g.Event("close", leafbind.Named("Event"), "Fired on close.")).
		MustBuild()

	if len(td.Events) != 1 || td.Events[0].Name != "close" {
		t.Fatalf("event list not recorded: %+v", td.Events)
	}
	if len(td.MembersNamed("on_close")) != 1 {
		t.Fatalf("builder Events chain must derive accessors")
	}
}
