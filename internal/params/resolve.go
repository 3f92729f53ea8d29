package params

import "fmt"

// Option adjusts a single Resolve call.
type Option func(*request)

// request is the ephemeral state of one Resolve call.
type request struct {
	source       Source
	override     any
	hasOverride  bool
	allowMissing bool
}

// WithSource consults src before any override or default. A field exposed
// under the key (or the definition's alias) wins unconditionally.
func WithSource(src Source) Option {
	return func(q *request) { q.source = src }
}

// WithDefault supplies an explicit override returned whenever the source
// exposes no field for the key. Passing WithDefault(nil) is distinct from
// omitting the option: an explicit nil override is authoritative and
// resolves to nil rather than falling through to the registry default.
func WithDefault(v any) Option {
	return func(q *request) {
		q.override = v
		q.hasOverride = true
	}
}

// AllowMissing makes Resolve return nil instead of failing when no value and
// no default exist. This also covers keys absent from the registry, so
// optional parameters can be probed without distinguishing "unregistered"
// from "registered but valueless".
func AllowMissing() Option {
	return func(q *request) { q.allowMissing = true }
}

// Resolve computes the effective value for key. Precedence, first match
// wins: source field (key, then alias), explicit override, declared registry
// default, implicit false for store-true flags, nil when AllowMissing is
// set. Resolution fails with ErrUnknownParameter when the key reaches the
// registry step unregistered, or ErrMissingDefault when every step comes up
// empty.
func (r *Registry) Resolve(key string, opts ...Option) (any, error) {
	var q request
	for _, opt := range opts {
		opt(&q)
	}

	if q.source != nil {
		if v, ok := q.source.Field(key); ok {
			return v, nil
		}
		if def, ok := r.defs[key]; ok && def.Alias != "" {
			if v, ok := q.source.Field(def.Alias); ok {
				return v, nil
			}
		}
	}

	if q.hasOverride {
		return q.override, nil
	}

	def, ok := r.defs[key]
	if !ok {
		if q.allowMissing {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, key)
	}

	if def.HasDefault {
		return def.Default, nil
	}
	if def.Action == ActionStoreTrue {
		return false, nil
	}
	if q.allowMissing {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingDefault, key)
}

// Int resolves key and asserts the effective value is an int.
func (r *Registry) Int(key string, opts ...Option) (int, error) {
	v, err := r.Resolve(key, opts...)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("parameter %s: expected int, got %T", key, v)
	}
	return n, nil
}

// String resolves key and asserts the effective value is a string.
func (r *Registry) String(key string, opts ...Option) (string, error) {
	v, err := r.Resolve(key, opts...)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s: expected string, got %T", key, v)
	}
	return s, nil
}

// Bool resolves key and asserts the effective value is a bool.
func (r *Registry) Bool(key string, opts ...Option) (bool, error) {
	v, err := r.Resolve(key, opts...)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %s: expected bool, got %T", key, v)
	}
	return b, nil
}

// Resolve computes the effective value for key against the default registry.
func Resolve(key string, opts ...Option) (any, error) {
	return Default().Resolve(key, opts...)
}
