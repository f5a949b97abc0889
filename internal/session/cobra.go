// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// Persistent flag names read by PreRunLoad.
const (
	ConfigFlag  = "config"
	VerboseFlag = "verbose"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	if cmd.Context() == nil {
		return nil
	}
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("session not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the session from the
// --config and --verbose flags and stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	var opts Options
	if f := cmd.Flags().Lookup(ConfigFlag); f != nil {
		opts.ConfigPath = f.Value.String()
	}
	if verbose, err := cmd.Flags().GetBool(VerboseFlag); err == nil {
		opts.Verbose = verbose
	}

	ctx, err := Load(cmd.Context(), opts)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
