package leaflet

import (
	leafbind "github.com/reoring/leafbind"
)

// externals lists the ambient host types member signatures reference but no
// descriptor defines; the browser provides them.
func externals() []string {
	return []string{"HTMLElement"}
}

// surface concatenates every descriptor group in reference order.
func surface() []*leafbind.TypeDescriptor {
	var out []*leafbind.TypeDescriptor
	out = append(out, geographyTypes()...)
	out = append(out, eventTypes()...)
	out = append(out, interfaceTypes()...)
	out = append(out, mapTypes()...)
	out = append(out, rasterTypes()...)
	out = append(out, uiTypes()...)
	out = append(out, vectorTypes()...)
	out = append(out, groupTypes()...)
	out = append(out, controlTypes()...)
	return out
}

// Assemble registers the whole Leaflet surface and returns the verified
// aggregate. Registration is two-phase: every identity is declared first so
// member lists may reference siblings and supertypes regardless of file
// order, then each member list is defined against the declared set.
func Assemble() (*leafbind.Assembly, error) {
	types := surface()

	r := leafbind.NewRegistry("leaflet", Version)
	if err := r.DeclareExternal(externals()...); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(types))
	for _, td := range types {
		names = append(names, td.Name)
	}
	if err := r.Declare(names...); err != nil {
		return nil, err
	}
	for _, td := range types {
		if err := r.Define(td); err != nil {
			return nil, err
		}
	}
	for _, res := range resources() {
		if err := r.AddResource(res); err != nil {
			return nil, err
		}
	}
	return r.Assembly()
}

// MustAssemble is like Assemble but panics on error. The surface is static
// data, so a failure here is a defect in this package, not in the caller.
func MustAssemble() *leafbind.Assembly {
	a, err := Assemble()
	if err != nil {
		panic(err)
	}
	return a
}
