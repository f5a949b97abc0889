// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package output renders generated values as JSON or YAML documents.
package output

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFormat indicates an output format other than json or yaml.
var ErrInvalidFormat = errors.New("invalid output format")

// Format is an output document format.
type Format string

// Supported output formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{string(JSON), string(YAML)}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w %q (expected one of %s)", ErrInvalidFormat, s, strings.Join(Formats(), ", "))
	}
}

// Write renders docs to w. A single document is written as is; several
// documents become a JSON array or a YAML document stream.
func Write(w io.Writer, format Format, docs []any) error {
	normalized := make([]any, len(docs))
	for i, d := range docs {
		normalized[i] = Normalize(d)
	}

	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(normalized) == 1 {
			return enc.Encode(normalized[0])
		}
		return enc.Encode(normalized)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, d := range normalized {
			if err := enc.Encode(d); err != nil {
				return fmt.Errorf("failed to encode YAML: %w", err)
			}
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrInvalidFormat, format)
	}
}

// Normalize converts opaque generated values into plain document values:
// byte blobs become base64 strings and dates become YYYY-MM-DD strings.
func Normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return base64.StdEncoding.EncodeToString(t)
	case time.Time:
		return t.Format(time.DateOnly)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Normalize(val)
		}
		return out
	default:
		return v
	}
}
