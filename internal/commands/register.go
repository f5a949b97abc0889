// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/avromock/internal/session"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "avromock",
		Short: "Generate sample data from Avro schemas",
		Long: `Generate structurally valid sample values for Avro schemas.

Values are synthesized from the schema alone: primitives, records, arrays,
maps, enums, fixed blobs, unions and logical types such as uuid, decimal,
date and timestamps. Use a seed for reproducible fixtures.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(session.ConfigFlag, "", "Path to config file (default ./avromock.yaml)")
	rootCmd.PersistentFlags().BoolP(session.VerboseFlag, "v", false, "Trace generation decisions to stderr")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
