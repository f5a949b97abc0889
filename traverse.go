// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import "iter"

// Traverse returns an iterator over every descriptor in the schema tree,
// depth-first in declaration order, paired with the namespace it inherits
// from its ancestors. It follows descriptor types, record fields, array
// items, map values and union branches; names are not resolved. A
// descriptor reachable twice (a Go value shared by pointer) is visited once.
func Traverse(schema Node) iter.Seq2[*Descriptor, string] {
	return func(yield func(*Descriptor, string) bool) {
		visited := make(map[*Descriptor]struct{})
		traverseWithVisited(schema, "", yield, visited)
	}
}

func traverseWithVisited(n Node, namespace string, yield func(*Descriptor, string) bool, visited map[*Descriptor]struct{}) bool {
	switch v := n.(type) {
	case Union:
		for _, branch := range v {
			if !traverseWithVisited(branch, namespace, yield, visited) {
				return false
			}
		}
	case *Descriptor:
		if v == nil {
			return true
		}
		if _, ok := visited[v]; ok {
			return true
		}
		visited[v] = struct{}{}

		if !yield(v, namespace) {
			return false
		}

		inner := v.EffectiveNamespace(namespace)
		if !traverseWithVisited(v.Type, inner, yield, visited) {
			return false
		}
		for _, f := range v.Fields {
			if !traverseWithVisited(f.Type, inner, yield, visited) {
				return false
			}
		}
		if !traverseWithVisited(v.Items, inner, yield, visited) {
			return false
		}
		if !traverseWithVisited(v.Values, inner, yield, visited) {
			return false
		}
	}
	return true
}
