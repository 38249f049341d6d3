package leafbind

// Assembly is the aggregate value handed from this module's build step to
// the external binding generator: a namespace of resource declarations plus
// a namespace of verified type declarations. It is read-only after
// Registry.Assembly returns it.
type Assembly struct {
	library string
	version string

	order     []string
	types     map[string]*TypeDescriptor
	externals map[string]struct{}
	resources []Resource
}

// Library returns the bound library's name ("leaflet").
func (a *Assembly) Library() string { return a.library }

// Version returns the pinned library release the surface was transcribed
// against.
func (a *Assembly) Version() string { return a.version }

// Type looks up one descriptor by name.
func (a *Assembly) Type(name string) (*TypeDescriptor, bool) {
	td, ok := a.types[name]
	return td, ok
}

// Types returns every descriptor in declaration order.
func (a *Assembly) Types() []*TypeDescriptor {
	out := make([]*TypeDescriptor, 0, len(a.order))
	for _, n := range a.order {
		out = append(out, a.types[n])
	}
	return out
}

// External reports whether name was declared as an ambient host type.
func (a *Assembly) External(name string) bool {
	_, ok := a.externals[name]
	return ok
}

// Resource looks up one resource declaration by name.
func (a *Assembly) Resource(name string) (Resource, bool) {
	for _, r := range a.resources {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}

// Resources returns the resource declarations in registration order.
func (a *Assembly) Resources() []Resource {
	return append([]Resource(nil), a.resources...)
}
