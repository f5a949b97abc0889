// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, doc string) Node {
	t.Helper()
	var raw any
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	n, err := Decode(raw)
	require.NoError(t, err)
	return n
}

func TestDecode_Record(t *testing.T) {
	n := decodeJSON(t, `{
		"type": "record",
		"name": "Farm",
		"namespace": "com.farms",
		"doc": "a farm",
		"fields": [
			{"name": "nbChickens", "type": "int", "doc": "how many"},
			{"name": "kind", "type": {"type": "enum", "name": "Kind", "symbols": ["DAIRY", "POULTRY"]}},
			{"name": "hash", "type": {"type": "fixed", "name": "Hash", "size": 16}},
			{"name": "price", "type": {"type": "bytes", "logicalType": "decimal", "precision": 4, "scale": 2}},
			{"name": "tags", "type": {"type": "array", "items": "string"}},
			{"name": "meta", "type": {"type": "map", "values": ["null", "long"]}}
		]
	}`)

	d, ok := n.(*Descriptor)
	require.True(t, ok)
	assert.Equal(t, Name("record"), d.Type)
	assert.Equal(t, "Farm", d.Name)
	assert.Equal(t, "com.farms", d.Namespace)
	assert.Equal(t, "a farm", d.Doc)
	require.Len(t, d.Fields, 6)

	assert.Equal(t, Field{Name: "nbChickens", Type: Name("int"), Doc: "how many"}, d.Fields[0])

	kind := d.Fields[1].Type.(*Descriptor)
	assert.Equal(t, []string{"DAIRY", "POULTRY"}, kind.Symbols)

	hash := d.Fields[2].Type.(*Descriptor)
	assert.Equal(t, 16, hash.Size)

	price := d.Fields[3].Type.(*Descriptor)
	assert.Equal(t, "decimal", price.LogicalType)
	assert.Equal(t, map[string]any{"precision": float64(4), "scale": float64(2)}, price.Attrs)

	tags := d.Fields[4].Type.(*Descriptor)
	assert.Equal(t, Name("string"), tags.Items)

	meta := d.Fields[5].Type.(*Descriptor)
	assert.Equal(t, Union{Name("null"), Name("long")}, meta.Values)
}

func TestDecode_TypelessRecord(t *testing.T) {
	n := decodeJSON(t, `{"namespace": "com.farms", "fields": [{"name": "a", "type": "int"}]}`)

	d := n.(*Descriptor)
	assert.Nil(t, d.Type)
	assert.True(t, d.IsRecord())
}

func TestDecode_YAMLStyleKeys(t *testing.T) {
	n, err := Decode(map[any]any{"type": "fixed", "name": "f", "size": 4})
	require.NoError(t, err)
	assert.Equal(t, 4, n.(*Descriptor).Size)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr string
	}{
		{"nil", nil, "empty type node"},
		{"number", 42, "unsupported type node"},
		{"non-string name", map[string]any{"type": "record", "name": 1}, "name: expected a string"},
		{"fields not a list", map[string]any{"type": "record", "fields": "a"}, "fields: expected a list"},
		{"field without name", map[string]any{"type": "record", "fields": []any{map[string]any{"type": "int"}}}, "missing name"},
		{"field not an object", map[string]any{"type": "record", "fields": []any{"int"}}, "expected an object"},
		{"fractional size", map[string]any{"type": "fixed", "size": 1.5}, "expected an integer"},
		{"bad symbol", map[string]any{"type": "enum", "symbols": []any{1}}, "symbols[0]"},
		{"bad union branch", []any{"null", 3}, "union branch 1"},
		{"non-string yaml key", map[any]any{1: "x"}, "non-string key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecode_GeneratesFromDecodedSchema(t *testing.T) {
	n := decodeJSON(t, `{
		"namespace": "com.farms",
		"fields": [{"name": "farms", "type": [
			{"type": "record", "name": "CountryFarm", "fields": [{"name": "nbChickens", "type": "int"}]},
			{"type": "record", "name": "CityFarm", "fields": [{"name": "nbChickens", "type": "int"}]}
		]}]
	}`)

	v, err := Generate(n, nil)
	require.NoError(t, err)

	farms := v.(map[string]any)["farms"].(map[string]any)
	country := farms["com.farms.CountryFarm"].(map[string]any)
	assert.IsType(t, int64(0), country["nbChickens"])
}
