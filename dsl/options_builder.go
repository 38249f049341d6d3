package dsl

import (
	leafbind "github.com/reoring/leafbind"
	"github.com/reoring/leafbind/i18n"
)

// OptionsBuilder accumulates an options record: an argument bag whose
// fields are all optional and independently defaulted by the underlying
// library. Build synthesizes the zero-argument constructor so an empty
// options value is always constructible.
type OptionsBuilder struct {
	td   leafbind.TypeDescriptor
	seen map[string]struct{}
	iss  leafbind.Issues
}

// FieldStep continues the chain while targeting the most recent field.
type FieldStep struct {
	b *OptionsBuilder
	i int
}

// Options creates an options-record builder.
func Options(name string) *OptionsBuilder {
	b := &OptionsBuilder{
		td:   leafbind.TypeDescriptor{Name: name, Kind: leafbind.TypeOptions},
		seen: map[string]struct{}{},
	}
	if name == "" {
		b.iss = leafbind.AppendIssues(b.iss, leafbind.Issue{Path: "/", Code: leafbind.CodeEmptyName, Message: i18n.T(leafbind.CodeEmptyName, nil)})
	}
	return b
}

// Doc sets the record-level description.
func (b *OptionsBuilder) Doc(s string) *OptionsBuilder {
	b.td.Doc = s
	return b
}

// Inherits names a parent options record whose fields carry over.
func (b *OptionsBuilder) Inherits(name string) *OptionsBuilder {
	b.td.Inherits = name
	return b
}

// Field appends one optional, settable option.
func (b *OptionsBuilder) Field(name string, t leafbind.TypeRef) *FieldStep {
	if name == "" {
		b.iss = leafbind.AppendIssues(b.iss, leafbind.Issue{Path: "/" + b.td.Name + "/members", Code: leafbind.CodeEmptyName, Message: i18n.T(leafbind.CodeEmptyName, nil)})
	} else if _, dup := b.seen[name]; dup {
		b.iss = leafbind.AppendIssues(b.iss, leafbind.Issue{Path: "/" + b.td.Name + "/members/" + name, Code: leafbind.CodeDuplicateField, Message: i18n.T(leafbind.CodeDuplicateField, nil), Hint: name})
	} else {
		b.seen[name] = struct{}{}
	}
	b.td.Members = append(b.td.Members, leafbind.Member{
		Kind:     leafbind.MemberField,
		Name:     name,
		Type:     &t,
		Optional: true,
	})
	return &FieldStep{b: b, i: len(b.td.Members) - 1}
}

// Build validates the record and prepends the synthesized zero-argument
// constructor.
func (b *OptionsBuilder) Build() (*leafbind.TypeDescriptor, error) {
	if len(b.iss) > 0 {
		return nil, b.iss
	}
	td := b.td.Clone()
	ctor := leafbind.Member{
		Kind: leafbind.MemberCtor,
		Name: "constructor",
		Doc:  "Creates an empty options value; every field stays on the library default.",
	}
	td.Members = append([]leafbind.Member{ctor}, td.Members...)
	return td, nil
}

// MustBuild is like Build but panics on error.
func (b *OptionsBuilder) MustBuild() *leafbind.TypeDescriptor {
	td, err := b.Build()
	if err != nil {
		panic(err)
	}
	return td
}

// Doc sets the current field's description.
func (s *FieldStep) Doc(d string) *FieldStep {
	s.b.td.Members[s.i].Doc = d
	return s
}

// Default records the library-side default applied when the field is left
// unset.
func (s *FieldStep) Default(v any) *FieldStep {
	s.b.td.Members[s.i].Default = v
	return s
}

// Chain forwarding back to the builder.
func (s *FieldStep) Field(name string, t leafbind.TypeRef) *FieldStep { return s.b.Field(name, t) }
func (s *FieldStep) Inherits(name string) *OptionsBuilder             { return s.b.Inherits(name) }
func (s *FieldStep) Build() (*leafbind.TypeDescriptor, error)         { return s.b.Build() }
func (s *FieldStep) MustBuild() *leafbind.TypeDescriptor              { return s.b.MustBuild() }
