// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generate(dir))

	assert.FileExists(t, filepath.Join(dir, "index.md"))
	assert.FileExists(t, filepath.Join(dir, "avromock_generate.md"))
	assert.FileExists(t, filepath.Join(dir, "avromock_types.md"))
	assert.NoFileExists(t, filepath.Join(dir, "avromock.md"))

	index, err := os.ReadFile(filepath.Join(dir, "index.md")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(index), "Generate sample data from Avro schemas")
}
