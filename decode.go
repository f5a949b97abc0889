// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"fmt"
	"math"
)

// Decode converts a generically decoded schema document (the result of
// json.Unmarshal or yaml.Unmarshal into an any) into a schema tree.
//
// Strings become Names, sequences become Unions and mappings become
// Descriptors. Decode reports shape errors only; it does not validate that
// the schema is well-formed.
func Decode(v any) (Node, error) {
	switch t := v.(type) {
	case string:
		return Name(t), nil
	case []any:
		u := make(Union, 0, len(t))
		for i, item := range t {
			n, err := Decode(item)
			if err != nil {
				return nil, fmt.Errorf("union branch %d: %w", i, err)
			}
			u = append(u, n)
		}
		return u, nil
	case map[string]any:
		return decodeDescriptor(t)
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			m[ks] = val
		}
		return decodeDescriptor(m)
	case nil:
		return nil, fmt.Errorf("empty type node")
	default:
		return nil, fmt.Errorf("unsupported type node %T", v)
	}
}

func decodeDescriptor(m map[string]any) (*Descriptor, error) {
	d := &Descriptor{}

	for key, raw := range m {
		var err error
		switch key {
		case "type":
			d.Type, err = Decode(raw)
		case "logicalType":
			d.LogicalType, err = decodeString(key, raw)
		case "name":
			d.Name, err = decodeString(key, raw)
		case "namespace":
			d.Namespace, err = decodeString(key, raw)
		case "doc":
			d.Doc, err = decodeString(key, raw)
		case "fields":
			d.Fields, err = decodeFields(raw)
		case "items":
			d.Items, err = Decode(raw)
		case "values":
			d.Values, err = Decode(raw)
		case "symbols":
			d.Symbols, err = decodeSymbols(raw)
		case "size":
			d.Size, err = decodeInt(key, raw)
		default:
			if d.Attrs == nil {
				d.Attrs = make(map[string]any)
			}
			d.Attrs[key] = raw
		}
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func decodeFields(raw any) ([]Field, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("fields: expected a list, got %T", raw)
	}
	fields := make([]Field, 0, len(items))
	for i, item := range items {
		fd, err := Decode(item)
		if err != nil {
			return nil, fmt.Errorf("fields[%d]: %w", i, err)
		}
		d, ok := fd.(*Descriptor)
		if !ok {
			return nil, fmt.Errorf("fields[%d]: expected an object", i)
		}
		if d.Name == "" {
			return nil, fmt.Errorf("fields[%d]: missing name", i)
		}
		fields = append(fields, Field{Name: d.Name, Type: d.Type, Doc: d.Doc})
	}
	return fields, nil
}

func decodeSymbols(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("symbols: expected a list, got %T", raw)
	}
	symbols := make([]string, 0, len(items))
	for i, item := range items {
		s, err := decodeString(fmt.Sprintf("symbols[%d]", i), item)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, nil
}

func decodeString(key string, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got %T", key, raw)
	}
	return s, nil
}

func decodeInt(key string, raw any) (int, error) {
	switch n := raw.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%s: expected an integer, got %v", key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s: expected an integer, got %T", key, raw)
	}
}
