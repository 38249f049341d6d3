package leafbind

// RefKind discriminates the TypeRef sum.
type RefKind string

const (
	KindNamed     RefKind = "named"     // reference to a registered (or external) type by name
	KindPrimitive RefKind = "primitive" // string / number / integer / boolean / any
	KindArray     RefKind = "array"     // homogeneous array of Elem
	KindDict      RefKind = "dictionary"
	KindFunc      RefKind = "function" // callback signature
	KindUnion     RefKind = "union"    // closed set of alternative shapes
	KindVariadic  RefKind = "variadic" // trailing rest parameter of Elem
)

// TypeRef is a type expression appearing in member signatures. It is a small
// sum over the shapes the underlying library actually uses; only the fields
// relevant to Kind are populated.
type TypeRef struct {
	Kind     RefKind
	Name     string   // KindNamed: target type name; KindPrimitive: primitive name
	Elem     *TypeRef // KindArray, KindVariadic
	Key      *TypeRef // KindDict
	Value    *TypeRef // KindDict
	Params   []Param  // KindFunc
	Result   *TypeRef // KindFunc; nil means void
	Variants []TypeRef
}

// Param is one parameter of a constructor, method, or callback signature.
type Param struct {
	Name     string
	Type     TypeRef
	Optional bool
}

// Named references a registered type (forward references are fine; the
// registry resolves them at Define time).
func Named(name string) TypeRef { return TypeRef{Kind: KindNamed, Name: name} }

// String is the JS string primitive.
func String() TypeRef { return TypeRef{Kind: KindPrimitive, Name: "string"} }

// Number is the JS number primitive.
func Number() TypeRef { return TypeRef{Kind: KindPrimitive, Name: "number"} }

// Int is a number constrained to integral values (zoom levels, pixel sizes).
func Int() TypeRef { return TypeRef{Kind: KindPrimitive, Name: "integer"} }

// Bool is the JS boolean primitive.
func Bool() TypeRef { return TypeRef{Kind: KindPrimitive, Name: "boolean"} }

// Any is an untyped passthrough value (GeoJSON payloads, event data bags).
func Any() TypeRef { return TypeRef{Kind: KindPrimitive, Name: "any"} }

// ArrayOf builds an array type over elem.
func ArrayOf(elem TypeRef) TypeRef { return TypeRef{Kind: KindArray, Elem: &elem} }

// DictOf builds a string-keyed (or otherwise keyed) dictionary type.
func DictOf(key, value TypeRef) TypeRef {
	return TypeRef{Kind: KindDict, Key: &key, Value: &value}
}

// Func builds a callback signature. A nil result means void.
func Func(params []Param, result *TypeRef) TypeRef {
	return TypeRef{Kind: KindFunc, Params: params, Result: result}
}

// Union builds a closed alternative over two or more shapes, e.g. the
// "LatLng or raw coordinate pair" shorthand that runs through the whole
// Leaflet surface.
func Union(variants ...TypeRef) TypeRef {
	return TypeRef{Kind: KindUnion, Variants: variants}
}

// Variadic marks a trailing rest parameter of elem.
func Variadic(elem TypeRef) TypeRef { return TypeRef{Kind: KindVariadic, Elem: &elem} }

// NamedRefs appends every KindNamed target reachable from r to dst. Used by
// the registry to resolve member signatures against declared identities.
func (r TypeRef) NamedRefs(dst []string) []string {
	switch r.Kind {
	case KindNamed:
		dst = append(dst, r.Name)
	case KindArray, KindVariadic:
		if r.Elem != nil {
			dst = r.Elem.NamedRefs(dst)
		}
	case KindDict:
		if r.Key != nil {
			dst = r.Key.NamedRefs(dst)
		}
		if r.Value != nil {
			dst = r.Value.NamedRefs(dst)
		}
	case KindFunc:
		for _, p := range r.Params {
			dst = p.Type.NamedRefs(dst)
		}
		if r.Result != nil {
			dst = r.Result.NamedRefs(dst)
		}
	case KindUnion:
		for _, v := range r.Variants {
			dst = v.NamedRefs(dst)
		}
	}
	return dst
}
