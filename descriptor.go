package leafbind

// TypeKind discriminates what a TypeDescriptor stands for on the JS side.
type TypeKind string

const (
	TypeClass     TypeKind = "class"
	TypeInterface TypeKind = "interface" // capability contract (ILayer, IControl, IHandler)
	TypeOptions   TypeKind = "options"   // all-optional argument bag
	TypeAlias     TypeKind = "alias"     // named shorthand for a TypeRef (usually a union)
)

// MemberKind discriminates the members attached to a type.
type MemberKind string

const (
	MemberCtor     MemberKind = "constructor"
	MemberMethod   MemberKind = "method"
	MemberProperty MemberKind = "property"
	MemberField    MemberKind = "field" // options-record entry, independently settable
)

// Member is one constructor, method, property, or options field of a type.
// Overload sets (same Name, different parameter lists) are allowed and kept
// in declaration order; the downstream generator resolves them by arity.
type Member struct {
	Kind   MemberKind
	Name   string
	Doc    string
	Static bool

	// Constructor / method shape.
	Params []Param
	Result *TypeRef // nil means void

	// Property / field shape.
	Type     *TypeRef
	Optional bool // options fields are always optional
	Default  any  // library-side default, recorded for documentation

	// EventName carries the literal event-name string a derived accessor
	// forwards to the library's generic on/once/off/fire primitives. Empty
	// for ordinary members.
	EventName string
}

// EventDescriptor names one event a type emits together with its payload
// shape. Payload types always extend the base Event shape.
type EventDescriptor struct {
	Name    string
	Payload TypeRef
	Doc     string
}

// TypeDescriptor describes one bound type. Instances are assembled once via
// dsl builders and never mutated after registration.
type TypeDescriptor struct {
	Name       string
	Kind       TypeKind
	Doc        string
	Inherits   string   // single supertype for method/property inheritance
	Implements []string // capability contracts satisfied

	Members []Member
	Events  []EventDescriptor

	Alias *TypeRef // KindAlias only
}

// HasZeroCtor reports whether the type exposes a zero-argument constructor.
// Every options record must: an empty options value is always constructible.
func (t *TypeDescriptor) HasZeroCtor() bool {
	for _, m := range t.Members {
		if m.Kind == MemberCtor && len(m.Params) == 0 {
			return true
		}
	}
	return false
}

// MembersNamed returns the overload set for name in declaration order.
func (t *TypeDescriptor) MembersNamed(name string) []Member {
	var out []Member
	for _, m := range t.Members {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}

// Clone returns a deep-enough copy for the builders: member and event slices
// are fresh, the referenced TypeRefs are shared (they are value-built and
// never mutated).
func (t *TypeDescriptor) Clone() *TypeDescriptor {
	cp := *t
	cp.Implements = append([]string(nil), t.Implements...)
	cp.Members = append([]Member(nil), t.Members...)
	cp.Events = append([]EventDescriptor(nil), t.Events...)
	return &cp
}

// ResourceKind discriminates the web resources the generated bindings need.
type ResourceKind string

const (
	ResourceStylesheet ResourceKind = "stylesheet"
	ResourceScript     ResourceKind = "script"
)

// Resource is one ordered web resource the generated module depends on.
// Requires lists resource names that must be loaded first (the Leaflet
// script requires the Leaflet stylesheet).
type Resource struct {
	Name     string
	Kind     ResourceKind
	URL      string
	Requires []string
}
