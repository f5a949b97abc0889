// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dacolabs/avromock/internal/config"
	"github.com/dacolabs/avromock/internal/output"
	"github.com/spf13/cobra"
)

type initOptions struct {
	seed   int64
	pick   []string
	count  int
	format string
	output string
	force  bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an avromock.yaml configuration file",
		Long: `Create an avromock.yaml configuration file in the current directory.
Values stored there become the defaults of "avromock generate".`,
		Example: `  # Defaults
  avromock init

  # Reproducible YAML fixtures
  avromock init --seed 42 --format yaml --count 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for deterministic output")
	cmd.Flags().StringSliceVarP(&opts.pick, "pick", "p", nil, "Union branch names to prefer, comma-separated")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 1, "Number of documents to generate")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", fmt.Sprintf("Output format (%s)", strings.Join(output.Formats(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing avromock.yaml")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !opts.force {
		return errors.New("avromock.yaml already exists; use --force to overwrite")
	}

	cfg := config.Default()
	cfg.PickUnion = opts.pick
	cfg.Count = opts.count
	cfg.Format = opts.format
	cfg.Output = opts.output
	if cmd.Flags().Changed("seed") {
		seed := opts.seed
		cfg.Seed = &seed
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fields := []resultField{
		{Label: "Config", Value: config.FileName},
		{Label: "Format", Value: cfg.Format},
		{Label: "Count", Value: strconv.Itoa(cfg.Count)},
	}
	if cfg.Seed != nil {
		fields = append(fields, resultField{Label: "Seed", Value: strconv.FormatInt(*cfg.Seed, 10)})
	}
	printResult(cmd.OutOrStdout(), fields, "Initialized avromock project")
	return nil
}
