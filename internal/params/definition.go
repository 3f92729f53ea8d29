package params

// Action describes how the external argument parser treats a flag-style
// parameter.
type Action int

const (
	// ActionNone marks a regular value-bearing parameter.
	ActionNone Action = iota
	// ActionStoreTrue marks a flag that stores true when supplied. When the
	// definition carries no declared default, the implicit default is false.
	ActionStoreTrue
	// ActionStoreFalse marks an inverted flag that stores false when
	// supplied. The external parser conventionally initialises the options
	// field to true; the catalogue records that convention as a declared
	// default so resolution does not depend on parser behaviour.
	ActionStoreFalse
)

// Definition describes a single named pipeline parameter.
type Definition struct {
	// Key is the stable identifier shared by the CLI flag name and internal
	// lookups.
	Key string

	// Default is the hard-coded fallback value. It is meaningful only when
	// HasDefault is true; a nil Default with HasDefault set means the
	// parameter deliberately defaults to no value.
	Default any

	// HasDefault reports whether Default was declared at all.
	HasDefault bool

	// Action marks boolean-flag parameters.
	Action Action

	// Alias is an alternate field name consulted when probing an options
	// source, for parameters whose external flag name differs from the field
	// the parser stores into.
	Alias string

	// Help is descriptive only and never affects resolution.
	Help string
}
