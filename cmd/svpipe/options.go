package main

import (
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/strandline/svpipe/internal/params"
)

// flagHost abstracts kingpin applications and commands for flag registration.
type flagHost interface {
	Flag(name, help string) *kingpin.FlagClause
}

// optionSet accumulates kingpin bindings and produces the options source the
// resolver consumes. Only values the user actually supplied become source
// fields, so registry defaults stay authoritative for everything else.
type optionSet struct {
	bindings []*binding
}

type binding struct {
	field     string
	setByUser bool
	isSet     func() bool
	value     func() any
}

func newOptionSet() *optionSet {
	return &optionSet{}
}

// bindFlags registers one flag per key, named and documented from the
// catalogue definition.
func (o *optionSet) bindFlags(host flagHost, reg *params.Registry, keys ...string) error {
	for _, key := range keys {
		def, err := reg.Lookup(key)
		if err != nil {
			return err
		}
		o.bindFlag(host.Flag(flagName(def.Key), def.Help), def)
	}
	return nil
}

func (o *optionSet) bindFlag(clause *kingpin.FlagClause, def params.Definition) {
	b := &binding{field: fieldName(def)}
	clause.IsSetByUser(&b.setByUser)
	b.isSet = func() bool { return b.setByUser }

	switch def.Action {
	case params.ActionStoreTrue:
		v := clause.Bool()
		b.value = func() any { return *v }
	case params.ActionStoreFalse:
		// Supplying the inverted flag stores false into the aliased field.
		v := clause.Bool()
		b.value = func() any { return !*v }
	default:
		switch d := def.Default.(type) {
		case int:
			v := clause.Default(strconv.Itoa(d)).Int()
			b.value = func() any { return *v }
		case string:
			v := clause.Default(d).String()
			b.value = func() any { return *v }
		default:
			v := clause.String()
			b.value = func() any { return *v }
		}
	}

	o.bindings = append(o.bindings, b)
}

// bindArg registers an optional positional argument. An empty value is
// treated as not supplied.
func (o *optionSet) bindArg(clause *kingpin.ArgClause, def params.Definition) {
	b := &binding{field: fieldName(def)}
	v := clause.String()
	b.isSet = func() bool { return *v != "" }
	b.value = func() any { return *v }
	o.bindings = append(o.bindings, b)
}

// Source builds the options object for the parsed invocation.
func (o *optionSet) Source() params.MapSource {
	src := make(params.MapSource, len(o.bindings))
	for _, b := range o.bindings {
		if b.isSet() {
			src[b.field] = b.value()
		}
	}
	return src
}

// fieldName returns the options-object field a parsed flag stores into: the
// alias when the external flag name differs from the internal one.
func fieldName(def params.Definition) string {
	if def.Alias != "" {
		return def.Alias
	}
	return def.Key
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
