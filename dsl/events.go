package dsl

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/i18n"
)

// Event declares one event a type emits: its literal wire name, its payload
// shape (always extending the base Event shape), and a description.
func Event(name string, payload leafbind.TypeRef, doc string) leafbind.EventDescriptor {
	return leafbind.EventDescriptor{Name: name, Payload: payload, Doc: doc}
}

// Events is the event-accessor combinator. For each declared event it
// derives exactly four members on a copy of base:
//
//	on_<name>(fn)    register fn for events literally named <name>
//	once_<name>(fn)  same, auto-unregistered after the first invocation
//	off_<name>(fn)   remove exactly fn; the bare overload removes them all
//	fire_<name>(e)   synchronously invoke every registered handler
//
// Each derived member records the literal event name so the generator
// forwards the exact string to the library's generic subscribe/fire
// primitives. The first application also grafts those generic primitives
// (on/once/off/fire, the addEventListener aliases, hasEventListeners,
// clearAllEventListeners) onto the type, including the batch map overloads.
//
// The transformation is pure: base is never mutated. Duplicate event names
// within one type are a configuration error reported here, at registry
// build time, never at call time.
func Events(base *leafbind.TypeDescriptor, events ...leafbind.EventDescriptor) (*leafbind.TypeDescriptor, error) {
	td := base.Clone()

	var iss leafbind.Issues
	seen := make(map[string]struct{}, len(td.Events)+len(events))
	for _, ev := range td.Events {
		seen[ev.Name] = struct{}{}
	}
	for _, ev := range events {
		if ev.Name == "" {
			iss = leafbind.AppendIssues(iss, leafbind.Issue{Path: "/" + td.Name + "/events", Code: leafbind.CodeEmptyName, Message: i18n.T(leafbind.CodeEmptyName, nil)})
			continue
		}
		if _, dup := seen[ev.Name]; dup {
			iss = leafbind.AppendIssues(iss, leafbind.Issue{Path: "/" + td.Name + "/events/" + ev.Name, Code: leafbind.CodeDuplicateEvent, Message: i18n.T(leafbind.CodeDuplicateEvent, nil), Hint: ev.Name})
			continue
		}
		seen[ev.Name] = struct{}{}
	}
	if len(iss) > 0 {
		return nil, iss
	}

	if len(td.Events) == 0 {
		td.Members = append(td.Members, genericEventMembers()...)
	}
	for _, ev := range events {
		td.Members = append(td.Members, deriveAccessors(ev)...)
	}
	td.Events = append(td.Events, events...)
	return td, nil
}

// MustEvents is like Events but panics on error.
func MustEvents(base *leafbind.TypeDescriptor, events ...leafbind.EventDescriptor) *leafbind.TypeDescriptor {
	td, err := Events(base, events...)
	if err != nil {
		panic(err)
	}
	return td
}

// deriveAccessors emits the four uniformly named members for one event.
func deriveAccessors(ev leafbind.EventDescriptor) []leafbind.Member {
	handler := handlerOf(ev.Payload)
	return []leafbind.Member{
		{
			Kind:      leafbind.MemberMethod,
			Name:      "on_" + ev.Name,
			Doc:       ev.Doc,
			Params:    []leafbind.Param{Arg("fn", handler)},
			EventName: ev.Name,
		},
		{
			Kind:      leafbind.MemberMethod,
			Name:      "once_" + ev.Name,
			Doc:       "Like on_" + ev.Name + ", but fn is unregistered after its first invocation.",
			Params:    []leafbind.Param{Arg("fn", handler)},
			EventName: ev.Name,
		},
		{
			Kind:      leafbind.MemberMethod,
			Name:      "off_" + ev.Name,
			Doc:       "Removes fn from the '" + ev.Name + "' handlers.",
			Params:    []leafbind.Param{Arg("fn", handler)},
			EventName: ev.Name,
		},
		{
			Kind:      leafbind.MemberMethod,
			Name:      "off_" + ev.Name,
			Doc:       "Removes every handler registered for '" + ev.Name + "' on this instance.",
			EventName: ev.Name,
		},
		{
			Kind:      leafbind.MemberMethod,
			Name:      "fire_" + ev.Name,
			Doc:       "Synchronously invokes every handler registered for '" + ev.Name + "', passing e.",
			Params:    []leafbind.Param{Arg("e", ev.Payload)},
			EventName: ev.Name,
		},
	}
}

// genericEventMembers lists the string-keyed escape hatch grafted once per
// type: Leaflet's own subscribe primitives, taking a runtime event name
// instead of a fixed literal.
func genericEventMembers() []leafbind.Member {
	handler := handlerOf(leafbind.Named("Event"))
	eventMap := leafbind.DictOf(leafbind.String(), handler)
	return []leafbind.Member{
		{
			Kind:   leafbind.MemberMethod,
			Name:   "on",
			Doc:    "Registers fn for events named type. Prefer the typed on_* accessors for enumerated events.",
			Params: []leafbind.Param{Arg("type", leafbind.String()), Arg("fn", handler)},
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "on",
			Doc:    "Batch form: registers every handler in the event-name keyed map.",
			Params: []leafbind.Param{Arg("eventMap", eventMap)},
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "once",
			Doc:    "Registers fn for a single invocation of events named type.",
			Params: []leafbind.Param{Arg("type", leafbind.String()), Arg("fn", handler)},
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "once",
			Doc:    "Batch form of once.",
			Params: []leafbind.Param{Arg("eventMap", eventMap)},
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "off",
			Doc:    "Removes fn from events named type; without fn, removes every handler for type.",
			Params: []leafbind.Param{Arg("type", leafbind.String()), OptArg("fn", handler)},
		},
		{
			Kind: leafbind.MemberMethod,
			Name: "off",
			Doc:  "Removes every handler for every event on this instance.",
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "fire",
			Doc:    "Synchronously fires an event named type, passing data to each handler.",
			Params: []leafbind.Param{Arg("type", leafbind.String()), OptArg("data", leafbind.Any())},
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "addEventListener",
			Doc:    "Alias of on.",
			Params: []leafbind.Param{Arg("type", leafbind.String()), Arg("fn", handler)},
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "addEventListener",
			Doc:    "Batch alias of on.",
			Params: []leafbind.Param{Arg("eventMap", eventMap)},
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "removeEventListener",
			Doc:    "Alias of off.",
			Params: []leafbind.Param{Arg("type", leafbind.String()), OptArg("fn", handler)},
		},
		{
			Kind:   leafbind.MemberMethod,
			Name:   "hasEventListeners",
			Doc:    "Reports whether any handler is registered for events named type.",
			Params: []leafbind.Param{Arg("type", leafbind.String())},
			Result: refOf(leafbind.Bool()),
		},
		{
			Kind: leafbind.MemberMethod,
			Name: "clearAllEventListeners",
			Doc:  "Alias of the bare off overload.",
		},
	}
}

func handlerOf(payload leafbind.TypeRef) leafbind.TypeRef {
	return leafbind.Func([]leafbind.Param{Arg("e", payload)}, nil)
}

func refOf(t leafbind.TypeRef) *leafbind.TypeRef { return &t }
