// Package params holds the pipeline's parameter catalogue and the resolver
// that computes effective parameter values. The registry is populated once at
// startup from a hard-coded catalogue and treated as immutable afterwards.
// Resolve walks a fixed precedence chain: options-source field > explicit
// override > declared default > implicit boolean default > optional nil
// fallback.
package params
