// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"encoding/binary"
	"fmt"
	"maps"
	"math"
	"time"
)

// maxSafeInteger is the largest integer exactly representable as a float64.
const maxSafeInteger = 1<<53 - 1

// maxDateMillis is the last millisecond of year 9999 UTC, so generated dates
// always have a four-digit year.
const maxDateMillis = 253402300799999

// defaultDecimalSize is the byte width of decimals that do not declare a size.
const defaultDecimalSize = 16

// Generator produces one value for a type node.
type Generator interface {
	Generate(n Node, ctx Context) (any, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(n Node, ctx Context) (any, error)

// Generate calls f(n, ctx).
func (f GeneratorFunc) Generate(n Node, ctx Context) (any, error) {
	return f(n, ctx)
}

// Const returns a generator that always produces v.
func Const(v any) Generator {
	return GeneratorFunc(func(Node, Context) (any, error) {
		return v, nil
	})
}

// Generators maps a type tag (primitive, complex or logical) to its generator.
type Generators map[string]Generator

// DefaultGenerators returns a fresh copy of the built-in generators.
func DefaultGenerators() Generators {
	return Generators{
		// primitives
		"int":     GeneratorFunc(generateSafeInt),
		"long":    GeneratorFunc(generateSafeInt),
		"double":  GeneratorFunc(generateFloat),
		"float":   GeneratorFunc(generateFloat),
		"boolean": GeneratorFunc(generateBoolean),
		"null":    GeneratorFunc(generateNull),
		"string":  GeneratorFunc(generateUUID),
		"bytes":   GeneratorFunc(generateBytes),

		// complex
		TypeRecord: GeneratorFunc(generateRecord),
		TypeArray:  GeneratorFunc(generateArray),
		TypeMap:    GeneratorFunc(generateMap),
		TypeEnum:   GeneratorFunc(generateEnum),
		TypeFixed:  GeneratorFunc(generateFixed),

		// logical
		"uuid":                   GeneratorFunc(generateUUID),
		"decimal":                GeneratorFunc(generateDecimal),
		"time-millis":            GeneratorFunc(generateSafeInt),
		"time-micros":            GeneratorFunc(generateSafeInt),
		"timestamp-millis":       GeneratorFunc(generateSafeInt),
		"timestamp-micros":       GeneratorFunc(generateSafeInt),
		"local-timestamp-millis": GeneratorFunc(generateSafeInt),
		"local-timestamp-micros": GeneratorFunc(generateSafeInt),
		"duration":               GeneratorFunc(generateDuration),
		"date":                   GeneratorFunc(generateDate),
	}
}

// MergeGenerators returns a new registry holding defaults overlaid with
// overrides. An override replaces the default registered under the same tag.
// Neither input is modified.
func MergeGenerators(defaults, overrides Generators) Generators {
	merged := make(Generators, len(defaults)+len(overrides))
	maps.Copy(merged, defaults)
	maps.Copy(merged, overrides)
	return merged
}

// Tags returns the registered tags.
func (g Generators) Tags() []string {
	tags := make([]string, 0, len(g))
	for tag := range g {
		tags = append(tags, tag)
	}
	return tags
}

func generateSafeInt(_ Node, ctx Context) (any, error) {
	return int64(math.Floor(ctx.Random() * maxSafeInteger)), nil
}

func generateFloat(_ Node, ctx Context) (any, error) {
	return ctx.Random(), nil
}

func generateBoolean(_ Node, ctx Context) (any, error) {
	return ctx.Random() < 0.5, nil
}

func generateNull(Node, Context) (any, error) {
	return nil, nil
}

func generateUUID(_ Node, ctx Context) (any, error) {
	return ctx.UUID(), nil
}

func generateBytes(_ Node, ctx Context) (any, error) {
	return []byte(ctx.UUID()), nil
}

func generateRecord(n Node, ctx Context) (any, error) {
	d, err := descriptorOf(TypeRecord, n)
	if err != nil {
		return nil, err
	}

	inner := ctx.WithNamespace(d.EffectiveNamespace(ctx.Namespace()))
	record := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		v, err := inner.Synthesize(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		record[f.Name] = v
	}
	return record, nil
}

func generateArray(n Node, ctx Context) (any, error) {
	d, err := descriptorOf(TypeArray, n)
	if err != nil {
		return nil, err
	}
	if d.Items == nil {
		return nil, fmt.Errorf("array: missing items")
	}
	item, err := ctx.Synthesize(d.Items)
	if err != nil {
		return nil, err
	}
	return []any{item}, nil
}

func generateMap(n Node, ctx Context) (any, error) {
	d, err := descriptorOf(TypeMap, n)
	if err != nil {
		return nil, err
	}
	if d.Values == nil {
		return nil, fmt.Errorf("map: missing values")
	}
	key := ctx.UUID()
	value, err := ctx.Synthesize(d.Values)
	if err != nil {
		return nil, err
	}
	return map[string]any{key: value}, nil
}

func generateEnum(n Node, _ Context) (any, error) {
	d, err := descriptorOf(TypeEnum, n)
	if err != nil {
		return nil, err
	}
	if len(d.Symbols) == 0 {
		return nil, fmt.Errorf("enum %q: no symbols", d.Name)
	}
	return d.Symbols[0], nil
}

func generateFixed(n Node, ctx Context) (any, error) {
	d, err := descriptorOf(TypeFixed, n)
	if err != nil {
		return nil, err
	}
	if d.Size < 0 {
		return nil, fmt.Errorf("fixed %q: invalid size %d", d.Name, d.Size)
	}
	return randomBytes(ctx, d.Size), nil
}

func generateDecimal(n Node, ctx Context) (any, error) {
	size := defaultDecimalSize
	if d, ok := n.(*Descriptor); ok && d.Size > 0 {
		size = d.Size
	}
	return randomBytes(ctx, size), nil
}

// generateDuration produces months, days and milliseconds as three
// little-endian unsigned 32-bit integers.
func generateDuration(_ Node, ctx Context) (any, error) {
	b := make([]byte, 12)
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(b[i*4:], uint32(math.Floor(ctx.Random()*(1<<32))))
	}
	return b, nil
}

func generateDate(_ Node, ctx Context) (any, error) {
	ms := int64(math.Floor(ctx.Random() * maxDateMillis))
	return time.UnixMilli(ms).UTC(), nil
}

func randomBytes(ctx Context, size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(math.Floor(ctx.Random() * 256))
	}
	return b
}

func descriptorOf(tag string, n Node) (*Descriptor, error) {
	d, ok := n.(*Descriptor)
	if !ok || d == nil {
		return nil, fmt.Errorf("%s: expected a type descriptor, got %s", tag, Describe(n))
	}
	return d, nil
}
