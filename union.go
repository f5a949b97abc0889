// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"errors"
	"slices"

	"go.uber.org/zap"
)

// errEmptyUnion is returned for a union without branches.
var errEmptyUnion = errors.New("union has no branches")

// branchInfo describes a union branch for selection and output keying.
type branchInfo struct {
	name     string // bare name
	fullName string // namespace-qualified name, or name when no namespace applies
	record   bool
}

// resolveUnion materializes one branch of a union. The first branch whose
// bare or qualified name appears in the pick hints is chosen, else the first
// branch. When two or more branches are records the value is nested under
// the chosen branch's qualified name so same-shaped records stay apart.
func (c Context) resolveUnion(branches Union) (any, error) {
	if len(branches) == 0 {
		return nil, errEmptyUnion
	}

	infos := make([]branchInfo, len(branches))
	records := 0
	for i, b := range branches {
		infos[i] = c.describeBranch(b)
		if infos[i].record {
			records++
		}
	}

	chosen := c.pickBranch(infos)
	c.logger.Debug("union branch",
		zap.String("branch", infos[chosen].fullName),
		zap.Int("index", chosen),
		zap.Int("records", records))

	v, err := c.Synthesize(branches[chosen])
	if err != nil {
		return nil, err
	}
	if records < 2 {
		return v, nil
	}

	return map[string]any{infos[chosen].fullName: v}, nil
}

func (c Context) pickBranch(infos []branchInfo) int {
	if len(c.pickUnion) == 0 {
		return 0
	}
	for i, info := range infos {
		if info.fullName != "" && slices.Contains(c.pickUnion, info.fullName) {
			return i
		}
		if info.name != "" && slices.Contains(c.pickUnion, info.name) {
			return i
		}
	}
	return 0
}

// describeBranch names a branch. Named descriptors use their own name and
// namespace; references to named types use the referenced definition.
// Branches handled by a generator tag are never treated as references.
func (c Context) describeBranch(b Node) branchInfo {
	switch v := b.(type) {
	case Name:
		if _, ok := c.generators[string(v)]; !ok {
			if entry, ok := c.aliases.lookupEntry(string(v)); ok {
				return branchInfo{
					name:     string(v),
					fullName: entry.node.FullName(entry.namespace),
					record:   entry.node.IsRecord(),
				}
			}
		}
		return branchInfo{name: string(v), fullName: string(v)}

	case *Descriptor:
		if v == nil {
			return branchInfo{}
		}
		if v.Name != "" {
			return branchInfo{
				name:     v.ShortName(),
				fullName: v.FullName(c.namespace),
				record:   v.IsRecord(),
			}
		}
		tag := v.Tag()
		if tag != "" && v.LogicalType == "" {
			if _, ok := c.generators[tag]; !ok {
				return c.describeBranch(Name(tag))
			}
		}
		name := tag
		if v.LogicalType != "" {
			name = v.LogicalType
		}
		return branchInfo{name: name, fullName: name, record: v.IsRecord()}
	}
	return branchInfo{}
}
