package leafbind

import (
	"github.com/reoring/leafbind/i18n"
)

// Registry collects type descriptors and resource declarations in two
// phases: Declare reserves a type's identity, Define attaches its member
// list. Declaration must precede any member list that references the name,
// because most members reference sibling or supertypes (map methods
// returning LatLng, popups referencing ILayer, and so on).
//
// The registry is assembled single-threaded at build time and has no query
// API beyond Assembly(), its hand-off to the binding generator.
type Registry struct {
	library string
	version string

	order     []string // declaration order, drives stable output
	declared  map[string]struct{}
	externals map[string]struct{}
	types     map[string]*TypeDescriptor

	resOrder []string
	res      map[string]Resource
}

// NewRegistry starts an empty registry for the named library release.
func NewRegistry(library, version string) *Registry {
	return &Registry{
		library:   library,
		version:   version,
		declared:  map[string]struct{}{},
		externals: map[string]struct{}{},
		types:     map[string]*TypeDescriptor{},
		res:       map[string]Resource{},
	}
}

// Declare reserves identities. Re-declaring a name is a no-op; the member
// list arrives later via Define.
func (r *Registry) Declare(names ...string) error {
	var iss Issues
	for _, n := range names {
		if n == "" {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeEmptyName, Message: i18n.T(CodeEmptyName, nil)})
			continue
		}
		if _, ok := r.declared[n]; ok {
			continue
		}
		r.declared[n] = struct{}{}
		r.order = append(r.order, n)
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// DeclareExternal registers ambient host types (HTMLElement and friends)
// that member signatures may reference but that no descriptor defines.
func (r *Registry) DeclareExternal(names ...string) error {
	var iss Issues
	for _, n := range names {
		if n == "" {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeEmptyName, Message: i18n.T(CodeEmptyName, nil)})
			continue
		}
		r.externals[n] = struct{}{}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Define attaches a member list to a previously declared identity. Every
// type name the descriptor references must already be declared (or
// external); unresolved references fail here, not at generator hand-off.
func (r *Registry) Define(td *TypeDescriptor) error {
	if td == nil || td.Name == "" {
		return Issues{{Path: "/", Code: CodeEmptyName, Message: i18n.T(CodeEmptyName, nil)}}
	}
	path := "/" + td.Name
	if _, ok := r.declared[td.Name]; !ok {
		return Issues{{Path: path, Code: CodeUndeclaredType, Message: i18n.T(CodeUndeclaredType, nil), Hint: td.Name}}
	}
	if _, ok := r.types[td.Name]; ok {
		return Issues{{Path: path, Code: CodeDuplicateType, Message: i18n.T(CodeDuplicateType, nil), Hint: td.Name}}
	}

	var iss Issues
	iss = append(iss, r.checkRefs(path, td)...)
	iss = append(iss, checkEvents(path, td.Events)...)
	if td.Kind == TypeOptions && !td.HasZeroCtor() {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeMissingZeroCtor, Message: i18n.T(CodeMissingZeroCtor, nil), Hint: td.Name})
	}
	if td.Kind == TypeAlias && td.Alias == nil {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeMissingAlias, Message: i18n.T(CodeMissingAlias, nil), Hint: td.Name})
	}
	if len(iss) > 0 {
		return iss
	}

	r.types[td.Name] = td.Clone()
	return nil
}

// AddResource declares one web resource the generated bindings depend on.
// Dependency names are resolved at Verify so resources may arrive in any
// order.
func (r *Registry) AddResource(res Resource) error {
	if res.Name == "" {
		return Issues{{Path: "/resources", Code: CodeEmptyName, Message: i18n.T(CodeEmptyName, nil)}}
	}
	if _, ok := r.res[res.Name]; ok {
		return Issues{{Path: "/resources/" + res.Name, Code: CodeDuplicateResource, Message: i18n.T(CodeDuplicateResource, nil), Hint: res.Name}}
	}
	r.res[res.Name] = res
	r.resOrder = append(r.resOrder, res.Name)
	return nil
}

// Verify checks the whole registration graph: every declared identity must
// have been defined, and every resource dependency must name a known
// resource. Reference resolution inside member lists already happened at
// Define time.
func (r *Registry) Verify() error {
	var iss Issues
	for _, n := range r.order {
		if _, ok := r.types[n]; !ok {
			iss = AppendIssues(iss, Issue{Path: "/" + n, Code: CodeUndefinedType, Message: i18n.T(CodeUndefinedType, nil), Hint: n})
		}
	}
	for _, rn := range r.resOrder {
		for _, dep := range r.res[rn].Requires {
			if _, ok := r.res[dep]; !ok {
				iss = AppendIssues(iss, Issue{Path: "/resources/" + rn, Code: CodeUnknownResourceDep, Message: i18n.T(CodeUnknownResourceDep, nil), Hint: dep})
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Assembly verifies the graph and freezes it into the immutable aggregate
// handed to the generator.
func (r *Registry) Assembly() (*Assembly, error) {
	if err := r.Verify(); err != nil {
		return nil, err
	}
	a := &Assembly{
		library:   r.library,
		version:   r.version,
		order:     append([]string(nil), r.order...),
		types:     make(map[string]*TypeDescriptor, len(r.types)),
		externals: make(map[string]struct{}, len(r.externals)),
	}
	for n, td := range r.types {
		a.types[n] = td
	}
	for n := range r.externals {
		a.externals[n] = struct{}{}
	}
	for _, rn := range r.resOrder {
		a.resources = append(a.resources, r.res[rn])
	}
	return a, nil
}

// checkRefs resolves every type name the descriptor mentions against the
// declared and external identity sets.
func (r *Registry) checkRefs(path string, td *TypeDescriptor) Issues {
	var iss Issues
	check := func(at string, names []string) {
		for _, n := range names {
			if _, ok := r.declared[n]; ok {
				continue
			}
			if _, ok := r.externals[n]; ok {
				continue
			}
			iss = AppendIssues(iss, Issue{Path: at, Code: CodeUnresolvedRef, Message: i18n.T(CodeUnresolvedRef, nil), Hint: n})
		}
	}
	if td.Inherits != "" {
		check(path, []string{td.Inherits})
	}
	check(path, td.Implements)
	if td.Alias != nil {
		check(path, td.Alias.NamedRefs(nil))
	}
	for _, m := range td.Members {
		at := path + "/members/" + m.Name
		var names []string
		for _, p := range m.Params {
			names = p.Type.NamedRefs(names)
		}
		if m.Result != nil {
			names = m.Result.NamedRefs(names)
		}
		if m.Type != nil {
			names = m.Type.NamedRefs(names)
		}
		check(at, names)
	}
	for _, ev := range td.Events {
		check(path+"/events/"+ev.Name, ev.Payload.NamedRefs(nil))
	}
	return iss
}

// checkEvents rejects duplicate event names within one type's event list.
func checkEvents(path string, events []EventDescriptor) Issues {
	var iss Issues
	seen := make(map[string]struct{}, len(events))
	for _, ev := range events {
		if ev.Name == "" {
			iss = AppendIssues(iss, Issue{Path: path + "/events", Code: CodeEmptyName, Message: i18n.T(CodeEmptyName, nil)})
			continue
		}
		if _, ok := seen[ev.Name]; ok {
			iss = AppendIssues(iss, Issue{Path: path + "/events/" + ev.Name, Code: CodeDuplicateEvent, Message: i18n.T(CodeDuplicateEvent, nil), Hint: ev.Name})
			continue
		}
		seen[ev.Name] = struct{}{}
	}
	return iss
}
