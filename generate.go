// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"go.uber.org/zap"
)

// Options tunes a Generate call. The zero value uses the built-in generators,
// always picks the first union branch and draws from the unseeded source.
type Options struct {
	// Generators are merged over the defaults; an entry replaces the
	// default generator of the same tag.
	Generators Generators

	// PickUnion lists branch names (bare or namespace-qualified) to prefer
	// when resolving unions.
	PickUnion []string

	// Seed, when set, makes the output deterministic.
	Seed *int64

	// Logger receives debug traces of dispatch decisions. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Seed returns a pointer to seed, for use in Options.
func Seed(seed int64) *int64 {
	return &seed
}

// Generate synthesizes one value for schema.
//
// The alias table and generator registry are built from scratch on every
// call. A failure anywhere in the tree aborts the call; no partial value is
// returned.
func Generate(schema Node, opts *Options) (any, error) {
	if opts == nil {
		opts = &Options{}
	}
	source := DefaultSource()
	if opts.Seed != nil {
		source = NewSeededSource(*opts.Seed)
	}
	return generate(schema, opts, source)
}

// MakeSeeded returns a generate function bound to one deterministic source
// for seed. Successive calls continue the same sequence instead of
// restarting it; Options.Seed is ignored. The returned function is not safe
// for concurrent use.
func MakeSeeded(seed int64) func(schema Node, opts *Options) (any, error) {
	source := NewSeededSource(seed)
	return func(schema Node, opts *Options) (any, error) {
		if opts == nil {
			opts = &Options{}
		}
		return generate(schema, opts, source)
	}
}

func generate(schema Node, opts *Options, source Source) (any, error) {
	ctx := newContext(schema, opts, source)
	v, err := ctx.Synthesize(schema)
	if err != nil {
		return nil, err
	}
	return v, nil
}
