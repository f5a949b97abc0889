// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"go.uber.org/zap"
)

// Context carries everything a generator needs to produce a value. It is a
// value type: deriving a context (WithNamespace) never affects the one it was
// derived from, so sibling subtrees cannot observe each other's namespace.
type Context struct {
	generators Generators
	aliases    AliasTable
	source     Source
	namespace  string
	pickUnion  []string
	logger     *zap.Logger
}

func newContext(schema Node, opts *Options, source Source) Context {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return Context{
		generators: MergeGenerators(DefaultGenerators(), opts.Generators),
		aliases:    BuildAliasTable(schema),
		source:     source,
		pickUnion:  opts.PickUnion,
		logger:     logger,
	}
}

// Namespace returns the namespace inherited at this point of the traversal.
func (c Context) Namespace() string {
	return c.namespace
}

// WithNamespace returns a copy of the context with namespace replaced.
func (c Context) WithNamespace(namespace string) Context {
	c.namespace = namespace
	return c
}

// Aliases returns the named types of the schema being generated.
func (c Context) Aliases() AliasTable {
	return c.aliases
}

// Random returns the next number in [0,1) from the context's source.
func (c Context) Random() float64 {
	return c.source.Float64()
}

// UUID returns the next UUID-shaped string from the context's source.
func (c Context) UUID() string {
	return c.source.UUID()
}

// Logger returns the logger generation decisions are traced to.
func (c Context) Logger() *zap.Logger {
	return c.logger
}
