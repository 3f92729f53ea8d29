package params

// Source is an options object produced by an external argument parser. The
// resolver performs a structural "does it expose this named field" check and
// returns matching values unchanged; no type coercion happens at this layer
// because the parser is assumed to have produced correctly typed values.
type Source interface {
	// Field returns the value stored under name and whether the source
	// exposes that field at all.
	Field(name string) (any, bool)
}

// MapSource adapts a plain map to the Source contract.
type MapSource map[string]any

// Field implements Source.
func (m MapSource) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}
