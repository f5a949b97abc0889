// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func farm(name string) *Descriptor {
	return record(name, Field{Name: "nbChickens", Type: Name("int")})
}

func farmsSchema(branches ...Node) *Descriptor {
	return &Descriptor{
		Namespace: "com.farms",
		Fields:    []Field{{Name: "farms", Type: Union(branches)}},
	}
}

func TestUnion_SingleRecordBranchIsUnwrapped(t *testing.T) {
	v, err := Generate(farmsSchema(farm("CountryFarm")), nil)
	require.NoError(t, err)

	farms := v.(map[string]any)["farms"].(map[string]any)
	assert.Len(t, farms, 1)
	assert.IsType(t, int64(0), farms["nbChickens"])
}

func TestUnion_RecordAndPrimitiveIsUnwrapped(t *testing.T) {
	v, err := Generate(farmsSchema(farm("CountryFarm"), Name("null")), nil)
	require.NoError(t, err)

	farms := v.(map[string]any)["farms"].(map[string]any)
	assert.Contains(t, farms, "nbChickens")
}

func TestUnion_SeveralRecordBranchesAreNamespaced(t *testing.T) {
	v, err := Generate(farmsSchema(farm("CountryFarm"), farm("CityFarm")), nil)
	require.NoError(t, err)

	farms := v.(map[string]any)["farms"].(map[string]any)
	require.Len(t, farms, 1)
	inner, ok := farms["com.farms.CountryFarm"].(map[string]any)
	require.True(t, ok, "got %v", farms)
	assert.IsType(t, int64(0), inner["nbChickens"])
}

func TestUnion_PickUnion(t *testing.T) {
	tests := []struct {
		name    string
		pick    []string
		wantKey string
	}{
		{"default is first", nil, "com.farms.CountryFarm"},
		{"bare name", []string{"CityFarm"}, "com.farms.CityFarm"},
		{"qualified name", []string{"com.farms.CityFarm"}, "com.farms.CityFarm"},
		{"no match falls back to first", []string{"Barn"}, "com.farms.CountryFarm"},
		{"declaration order wins over hint order", []string{"CityFarm", "CountryFarm"}, "com.farms.CountryFarm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Generate(farmsSchema(farm("CountryFarm"), farm("CityFarm")), &Options{PickUnion: tt.pick})
			require.NoError(t, err)

			farms := v.(map[string]any)["farms"].(map[string]any)
			require.Len(t, farms, 1)
			assert.Contains(t, farms, tt.wantKey)
		})
	}
}

func TestUnion_PickSelectsLaterSingleBranch(t *testing.T) {
	schema := farmsSchema(Name("null"), farm("CountryFarm"))

	v, err := Generate(schema, nil)
	require.NoError(t, err)
	assert.Nil(t, v.(map[string]any)["farms"])

	v, err = Generate(schema, &Options{PickUnion: []string{"CountryFarm"}})
	require.NoError(t, err)
	farms := v.(map[string]any)["farms"].(map[string]any)
	assert.Contains(t, farms, "nbChickens")
}

func TestUnion_PrimitiveBranches(t *testing.T) {
	u := Union{Name("null"), Name("string")}

	v, err := Generate(u, nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Generate(u, &Options{PickUnion: []string{"string"}})
	require.NoError(t, err)
	assert.IsType(t, "", v)
}

func TestUnion_BranchNamespaceOverridesInherited(t *testing.T) {
	city := farm("CityFarm")
	city.Namespace = "org.city"

	v, err := Generate(farmsSchema(farm("CountryFarm"), city), &Options{PickUnion: []string{"org.city.CityFarm"}})
	require.NoError(t, err)

	farms := v.(map[string]any)["farms"].(map[string]any)
	assert.Contains(t, farms, "org.city.CityFarm")
}

func TestUnion_NamedReferencesCountAsRecords(t *testing.T) {
	schema := &Descriptor{
		Type:      Name(TypeRecord),
		Name:      "Region",
		Namespace: "com.farms",
		Fields: []Field{
			{Name: "first", Type: farm("CountryFarm")},
			{Name: "second", Type: farm("CityFarm")},
			{Name: "either", Type: Union{Name("null"), Name("CountryFarm"), Name("CityFarm")}},
		},
	}

	v, err := Generate(schema, &Options{PickUnion: []string{"CityFarm"}})
	require.NoError(t, err)

	either := v.(map[string]any)["either"].(map[string]any)
	assert.Contains(t, either, "com.farms.CityFarm")
}

func TestUnion_TopLevel(t *testing.T) {
	v, err := Generate(Union{farm("A"), farm("B")}, &Options{PickUnion: []string{"B"}})
	require.NoError(t, err)

	out := v.(map[string]any)
	assert.Contains(t, out, "B")
}

func TestUnion_Empty(t *testing.T) {
	_, err := Generate(farmsSchema(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errEmptyUnion)
}

func TestUnion_NamespaceDoesNotLeakToSiblings(t *testing.T) {
	inner := farm("Inner")
	inner.Namespace = "org.elsewhere"
	inner.Fields = append(inner.Fields, Field{Name: "nested", Type: Union{farm("X"), farm("Y")}})

	schema := &Descriptor{
		Namespace: "com.farms",
		Fields: []Field{
			{Name: "inner", Type: inner},
			{Name: "sibling", Type: Union{farm("X2"), farm("Y2")}},
		},
	}

	v, err := Generate(schema, nil)
	require.NoError(t, err)

	out := v.(map[string]any)
	nested := out["inner"].(map[string]any)["nested"].(map[string]any)
	assert.Contains(t, nested, "org.elsewhere.X")
	sibling := out["sibling"].(map[string]any)
	assert.Contains(t, sibling, "com.farms.X2")
}
