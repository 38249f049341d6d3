package dsl

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/i18n"
)

// TypeBuilder accumulates one class or interface descriptor. Diagnostics
// are collected as the chain runs and surfaced by Build.
type TypeBuilder struct {
	td     leafbind.TypeDescriptor
	events []leafbind.EventDescriptor
	iss    leafbind.Issues
}

// MemberStep continues the chain while targeting the most recent member.
type MemberStep struct {
	b *TypeBuilder
	i int
}

// Type creates a class builder.
func Type(name string) *TypeBuilder {
	b := &TypeBuilder{td: leafbind.TypeDescriptor{Name: name, Kind: leafbind.TypeClass}}
	if name == "" {
		b.iss = leafbind.AppendIssues(b.iss, leafbind.Issue{Path: "/", Code: leafbind.CodeEmptyName, Message: i18n.T(leafbind.CodeEmptyName, nil)})
	}
	return b
}

// Iface creates a capability-contract builder. Contracts carry method
// members only; the generator emits them as interfaces.
func Iface(name string) *TypeBuilder {
	b := Type(name)
	b.td.Kind = leafbind.TypeInterface
	return b
}

// Alias declares a named shorthand for a type expression. No builder is
// needed: an alias has no members.
func Alias(name string, target leafbind.TypeRef, doc string) *leafbind.TypeDescriptor {
	return &leafbind.TypeDescriptor{Name: name, Kind: leafbind.TypeAlias, Doc: doc, Alias: &target}
}

// Arg builds a required parameter.
func Arg(name string, t leafbind.TypeRef) leafbind.Param {
	return leafbind.Param{Name: name, Type: t}
}

// OptArg builds an optional parameter.
func OptArg(name string, t leafbind.TypeRef) leafbind.Param {
	return leafbind.Param{Name: name, Type: t, Optional: true}
}

// Doc sets the type-level description.
func (b *TypeBuilder) Doc(s string) *TypeBuilder {
	b.td.Doc = s
	return b
}

// Inherits names the single supertype for member inheritance.
func (b *TypeBuilder) Inherits(name string) *TypeBuilder {
	b.td.Inherits = name
	return b
}

// Implements appends capability contracts the type satisfies.
func (b *TypeBuilder) Implements(names ...string) *TypeBuilder {
	b.td.Implements = append(b.td.Implements, names...)
	return b
}

// Ctor appends a constructor overload with the given parameters.
func (b *TypeBuilder) Ctor(params ...leafbind.Param) *MemberStep {
	return b.push(leafbind.Member{Kind: leafbind.MemberCtor, Name: "constructor", Params: params})
}

// Method appends a method member; Param/Opt/Returns continue it. Repeating
// a name forms an overload set, preserved in declaration order.
func (b *TypeBuilder) Method(name string) *MemberStep {
	return b.push(leafbind.Member{Kind: leafbind.MemberMethod, Name: name})
}

// Property appends a readable instance property.
func (b *TypeBuilder) Property(name string, t leafbind.TypeRef) *MemberStep {
	return b.push(leafbind.Member{Kind: leafbind.MemberProperty, Name: name, Type: &t})
}

// Events queues event declarations; Build runs the accessor combinator
// over them.
func (b *TypeBuilder) Events(events ...leafbind.EventDescriptor) *TypeBuilder {
	b.events = append(b.events, events...)
	return b
}

// Build validates the accumulated chain and derives the event accessors.
func (b *TypeBuilder) Build() (*leafbind.TypeDescriptor, error) {
	if len(b.iss) > 0 {
		return nil, b.iss
	}
	if len(b.events) == 0 {
		return b.td.Clone(), nil
	}
	return Events(&b.td, b.events...)
}

// MustBuild is like Build but panics on error.
func (b *TypeBuilder) MustBuild() *leafbind.TypeDescriptor {
	td, err := b.Build()
	if err != nil {
		panic(err)
	}
	return td
}

func (b *TypeBuilder) push(m leafbind.Member) *MemberStep {
	if m.Name == "" {
		b.iss = leafbind.AppendIssues(b.iss, leafbind.Issue{Path: "/" + b.td.Name + "/members", Code: leafbind.CodeEmptyName, Message: i18n.T(leafbind.CodeEmptyName, nil)})
	}
	b.td.Members = append(b.td.Members, m)
	return &MemberStep{b: b, i: len(b.td.Members) - 1}
}

// Param appends a required parameter to the current member.
func (s *MemberStep) Param(name string, t leafbind.TypeRef) *MemberStep {
	s.b.td.Members[s.i].Params = append(s.b.td.Members[s.i].Params, Arg(name, t))
	return s
}

// Opt appends an optional parameter to the current member.
func (s *MemberStep) Opt(name string, t leafbind.TypeRef) *MemberStep {
	s.b.td.Members[s.i].Params = append(s.b.td.Members[s.i].Params, OptArg(name, t))
	return s
}

// Returns sets the current member's return type (unset means void).
func (s *MemberStep) Returns(t leafbind.TypeRef) *MemberStep {
	s.b.td.Members[s.i].Result = &t
	return s
}

// Static marks the current member as attached to the class object.
func (s *MemberStep) Static() *MemberStep {
	s.b.td.Members[s.i].Static = true
	return s
}

// Doc sets the current member's description.
func (s *MemberStep) Doc(d string) *MemberStep {
	s.b.td.Members[s.i].Doc = d
	return s
}

// Chain forwarding back to the builder.
func (s *MemberStep) Ctor(params ...leafbind.Param) *MemberStep { return s.b.Ctor(params...) }
func (s *MemberStep) Method(name string) *MemberStep            { return s.b.Method(name) }
func (s *MemberStep) Property(name string, t leafbind.TypeRef) *MemberStep {
	return s.b.Property(name, t)
}
func (s *MemberStep) Inherits(name string) *TypeBuilder { return s.b.Inherits(name) }
func (s *MemberStep) Implements(names ...string) *TypeBuilder {
	return s.b.Implements(names...)
}
func (s *MemberStep) Events(events ...leafbind.EventDescriptor) *TypeBuilder {
	return s.b.Events(events...)
}
func (s *MemberStep) Build() (*leafbind.TypeDescriptor, error) { return s.b.Build() }
func (s *MemberStep) MustBuild() *leafbind.TypeDescriptor      { return s.b.MustBuild() }
