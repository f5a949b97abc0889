// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package loader reads schema documents and decodes them into schema trees.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/dacolabs/avromock"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a schema file extension no parser handles.
var ErrUnsupportedFormat = errors.New("format not supported")

// Parser decodes a schema document from an io.Reader.
type Parser struct {
	name  string
	parse func(io.Reader) (any, error)
}

var (
	// JSON parses schemas written as JSON (.json, .avsc).
	JSON = Parser{"json", parseJSON}
	// YAML parses schemas written as YAML (.yaml, .yml).
	YAML = Parser{"yaml", parseYAML}
)

// String returns the parser's format name.
func (p Parser) String() string {
	return p.name
}

// Parse decodes r and converts the document into a schema tree.
func (p Parser) Parse(r io.Reader) (avromock.Node, error) {
	raw, err := p.parse(r)
	if err != nil {
		return nil, err
	}
	n, err := avromock.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return n, nil
}

func parseJSON(r io.Reader) (any, error) {
	var raw any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return raw, nil
}

func parseYAML(r io.Reader) (any, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return raw, nil
}

// ParserFor returns the parser for a file path, chosen by extension.
func ParserFor(filePath string) (Parser, error) {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".json", ".avsc":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return Parser{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filePath)
	}
}

// ParserByName returns the parser registered under a format name.
func ParserByName(format string) (Parser, error) {
	switch strings.ToLower(format) {
	case "json", "avsc":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Parser{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and decodes a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (avromock.Node, error) {
	parser, err := ParserFor(filePath)
	if err != nil {
		return nil, err
	}

	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	n, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return n, nil
}
