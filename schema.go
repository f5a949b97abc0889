// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avromock synthesizes sample values for Avro-style schemas.
//
// A schema is a tree of [Node] values: bare type names ([Name]), descriptor
// objects ([Descriptor]) and unions ([Union]). [Generate] walks the tree
// depth-first and returns a value mirroring the schema's field structure.
package avromock

import (
	"fmt"
	"strings"
)

// Complex type tags understood by the built-in generators.
const (
	TypeRecord = "record"
	TypeArray  = "array"
	TypeMap    = "map"
	TypeEnum   = "enum"
	TypeFixed  = "fixed"
)

// Node is a type node of a schema tree. It is one of Name, *Descriptor or Union.
type Node interface {
	node()
}

// Name is a bare type name: a primitive, a logical-type shorthand, or a
// reference to a named type defined elsewhere in the schema.
type Name string

// Union is an ordered set of alternative types; exactly one is materialized.
type Union []Node

// Descriptor is a type described as an object carrying a type tag and
// tag-specific attributes.
type Descriptor struct {
	// Type is the primitive or complex tag, or the name of a named type.
	Type        Node
	LogicalType string
	Name        string
	Namespace   string
	Doc         string

	Fields  []Field  // record
	Items   Node     // array
	Values  Node     // map
	Symbols []string // enum
	Size    int      // fixed, decimal over fixed

	// Attrs holds attributes not modeled above (precision, scale, ...).
	Attrs map[string]any
}

// Field is a single named member of a record.
type Field struct {
	Name string
	Type Node
	Doc  string
}

func (Name) node()        {}
func (*Descriptor) node() {}
func (Union) node()       {}

// Tag returns the descriptor's type tag when it is a bare name, or "" when
// the type is itself a nested descriptor or union. A descriptor without a
// type that lists fields is a record.
func (d *Descriptor) Tag() string {
	if n, ok := d.Type.(Name); ok {
		return string(n)
	}
	if d.Type == nil && d.Fields != nil {
		return TypeRecord
	}
	return ""
}

// IsRecord reports whether the descriptor declares a record.
func (d *Descriptor) IsRecord() bool {
	return d.Tag() == TypeRecord
}

// FullName returns the namespace-qualified name of the descriptor, using
// inherited as the namespace when the descriptor has none of its own.
// A name that already contains a dot is treated as fully qualified.
func (d *Descriptor) FullName(inherited string) string {
	if d.Name == "" || strings.Contains(d.Name, ".") {
		return d.Name
	}
	if ns := d.EffectiveNamespace(inherited); ns != "" {
		return ns + "." + d.Name
	}
	return d.Name
}

// EffectiveNamespace returns the namespace descendants of this descriptor
// inherit: the one embedded in a dotted name, else its own, else inherited.
func (d *Descriptor) EffectiveNamespace(inherited string) string {
	if i := strings.LastIndex(d.Name, "."); i > 0 {
		return d.Name[:i]
	}
	if d.Namespace != "" {
		return d.Namespace
	}
	return inherited
}

// ShortName returns the last segment of the descriptor's name.
func (d *Descriptor) ShortName() string {
	if i := strings.LastIndex(d.Name, "."); i >= 0 {
		return d.Name[i+1:]
	}
	return d.Name
}

// Describe renders a node for diagnostics.
func Describe(n Node) string {
	switch v := n.(type) {
	case nil:
		return "<nil>"
	case Name:
		return fmt.Sprintf("%q", string(v))
	case Union:
		parts := make([]string, len(v))
		for i, b := range v {
			parts[i] = Describe(b)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Descriptor:
		if v == nil {
			return "<nil>"
		}
		var b strings.Builder
		b.WriteString("{type: ")
		b.WriteString(Describe(v.Type))
		if v.LogicalType != "" {
			fmt.Fprintf(&b, ", logicalType: %q", v.LogicalType)
		}
		if v.Name != "" {
			fmt.Fprintf(&b, ", name: %q", v.Name)
		}
		if v.Namespace != "" {
			fmt.Fprintf(&b, ", namespace: %q", v.Namespace)
		}
		b.WriteString("}")
		return b.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
