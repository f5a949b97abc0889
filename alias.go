// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import "slices"

// aliasEntry is a named definition together with the namespace its
// descendants inherit.
type aliasEntry struct {
	node      *Descriptor
	namespace string
}

// AliasTable maps type names, both bare and namespace-qualified, to their
// definitions. It is built once per Generate call and never mutated after.
type AliasTable struct {
	entries map[string]aliasEntry
}

// BuildAliasTable walks the schema tree once and registers every named
// descriptor under its name and, when a namespace applies, under
// namespace.name. Anonymous records are not registered. When two
// definitions share a key the first one encountered wins.
func BuildAliasTable(schema Node) AliasTable {
	t := AliasTable{entries: make(map[string]aliasEntry)}
	for d, namespace := range Traverse(schema) {
		if d.Name == "" {
			continue
		}
		entry := aliasEntry{node: d, namespace: d.EffectiveNamespace(namespace)}
		t.add(d.ShortName(), entry)
		t.add(d.FullName(namespace), entry)
	}
	return t
}

func (t AliasTable) add(key string, entry aliasEntry) {
	if _, exists := t.entries[key]; exists {
		return
	}
	t.entries[key] = entry
}

// Lookup returns the definition registered under key.
func (t AliasTable) Lookup(key string) (*Descriptor, bool) {
	e, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return e.node, true
}

// Names returns the fully-qualified names of the registered definitions,
// sorted.
func (t AliasTable) Names() []string {
	seen := make(map[*Descriptor]struct{}, len(t.entries))
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if _, ok := seen[e.node]; ok {
			continue
		}
		seen[e.node] = struct{}{}
		names = append(names, e.node.FullName(e.namespace))
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered keys.
func (t AliasTable) Len() int {
	return len(t.entries)
}

func (t AliasTable) lookupEntry(key string) (aliasEntry, bool) {
	e, ok := t.entries[key]
	return e, ok
}
