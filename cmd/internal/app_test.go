// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	require.NoError(t, Run(context.Background(), []string{"version", "--short"}))

	err := Run(context.Background(), []string{"no-such-command"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
