// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"go.uber.org/zap"
)

// Synthesize produces one value for n. Resolution order:
//
//  1. unions are handed to the union resolver;
//  2. a bare name matching a generator tag;
//  3. a descriptor's logicalType matching a generator tag;
//  4. a descriptor's type matching a generator tag;
//  5. the name (or descriptor type) looked up in the alias table.
//
// Anything else is an *UnknownTypeError.
func (c Context) Synthesize(n Node) (any, error) {
	switch v := n.(type) {
	case Union:
		return c.resolveUnion(v)

	case Name:
		if g, ok := c.generators[string(v)]; ok {
			return g.Generate(v, c)
		}
		return c.resolveAlias(string(v), n)

	case *Descriptor:
		if v == nil {
			break
		}
		if v.LogicalType != "" {
			if g, ok := c.generators[v.LogicalType]; ok {
				c.logger.Debug("logical type", zap.String("tag", v.LogicalType))
				return g.Generate(v, c)
			}
		}
		tag := v.Tag()
		if tag == "" {
			if v.Type == nil {
				break
			}
			return c.Synthesize(v.Type)
		}
		if g, ok := c.generators[tag]; ok {
			return g.Generate(v, c)
		}
		return c.resolveAlias(tag, n)
	}

	return nil, &UnknownTypeError{Node: n}
}

// resolveAlias synthesizes the named type registered under key. The
// definition is generated under the namespace it was declared in.
func (c Context) resolveAlias(key string, n Node) (any, error) {
	entry, ok := c.aliases.lookupEntry(key)
	if !ok {
		return nil, &UnknownTypeError{Node: n}
	}
	c.logger.Debug("alias", zap.String("name", key), zap.String("namespace", entry.namespace))
	return c.WithNamespace(entry.namespace).Synthesize(entry.node)
}
