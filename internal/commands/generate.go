// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dacolabs/avromock"
	"github.com/dacolabs/avromock/internal/loader"
	"github.com/dacolabs/avromock/internal/output"
	"github.com/dacolabs/avromock/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type generateOptions struct {
	schema      string
	inputFormat string
	seed        int64
	pick        []string
	count       int
	format      string
	output      string
	set         []string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sample values for a schema",
		Long: fmt.Sprintf(`Generate sample values for an Avro schema file.

Schema files are read as JSON (.json, .avsc) or YAML (.yaml, .yml).
Flags override the values of avromock.yaml.

Output formats: %s`, strings.Join(output.Formats(), ", ")),
		Example: `  # One JSON document
  avromock generate --schema farm.avsc

  # Reproducible fixtures
  avromock generate --schema farm.avsc --seed 42 --count 10 --output fixtures.json

  # Prefer a union branch and pin every string
  avromock generate --schema farm.avsc --pick com.farms.CityFarm --set string=henry

  # Read the schema from stdin
  cat farm.yaml | avromock generate --schema - --input-format yaml --format yaml`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Schema file, or - for stdin")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "json", "Schema format when reading stdin (json or yaml)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for deterministic output")
	cmd.Flags().StringSliceVarP(&opts.pick, "pick", "p", nil, "Union branch names to prefer, comma-separated")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 1, "Number of documents to generate")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", fmt.Sprintf("Output format (%s)", strings.Join(output.Formats(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Constant value for a type tag, as TAG=VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

// generateSettings are the effective settings after config and flags are merged.
type generateSettings struct {
	seed      *int64
	pickUnion []string
	count     int
	format    output.Format
	output    string
}

func resolveGenerateSettings(cmd *cobra.Command, ctx *session.Context, opts *generateOptions) (*generateSettings, error) {
	cfg := ctx.Config
	s := &generateSettings{
		seed:      cfg.Seed,
		pickUnion: cfg.PickUnion,
		count:     cfg.Count,
		output:    cfg.Output,
	}
	formatName := cfg.Format

	flags := cmd.Flags()
	if flags.Changed("seed") {
		s.seed = avromock.Seed(opts.seed)
	}
	if flags.Changed("pick") {
		s.pickUnion = opts.pick
	}
	if flags.Changed("count") {
		s.count = opts.count
	}
	if flags.Changed("format") {
		formatName = opts.format
	}
	if flags.Changed("output") {
		s.output = opts.output
	}

	if s.count < 1 {
		return nil, fmt.Errorf("--count must be at least 1, got %d", s.count)
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	s.format = format
	return s, nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	settings, err := resolveGenerateSettings(cmd, ctx, opts)
	if err != nil {
		return err
	}

	overrides, err := parseOverrides(opts.set)
	if err != nil {
		return err
	}

	schema, err := loadSchema(cmd.InOrStdin(), opts.schema, opts.inputFormat)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	genOpts := &avromock.Options{
		Generators: overrides,
		PickUnion:  settings.pickUnion,
		Logger:     ctx.Logger,
	}

	generate := avromock.Generate
	if settings.seed != nil {
		generate = avromock.MakeSeeded(*settings.seed)
	}

	docs := make([]any, 0, settings.count)
	for i := 0; i < settings.count; i++ {
		v, err := generate(schema, genOpts)
		if err != nil {
			return fmt.Errorf("document %d: %w", i+1, err)
		}
		docs = append(docs, v)
	}
	ctx.Logger.Debug("generated", zap.Int("count", len(docs)), zap.String("format", string(settings.format)))

	if settings.output == "" {
		return output.Write(cmd.OutOrStdout(), settings.format, docs)
	}

	if dir := filepath.Dir(settings.output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(settings.output) //nolint:gosec // path is provided by the user
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if err := output.Write(f, settings.format, docs); err != nil {
		return err
	}

	fields := []resultField{
		{Label: "Schema", Value: opts.schema},
		{Label: "Documents", Value: strconv.Itoa(len(docs))},
		{Label: "Output", Value: settings.output},
	}
	if settings.seed != nil {
		fields = append(fields, resultField{Label: "Seed", Value: strconv.FormatInt(*settings.seed, 10)})
	}
	printResult(cmd.ErrOrStderr(), fields, "")
	return nil
}

func loadSchema(stdin io.Reader, schemaPath, inputFormat string) (avromock.Node, error) {
	if schemaPath == "-" {
		parser, err := loader.ParserByName(inputFormat)
		if err != nil {
			return nil, err
		}
		return parser.Parse(stdin)
	}

	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, err
	}
	return loader.NewLoader(os.DirFS(filepath.Dir(abs))).LoadFile(filepath.Base(abs))
}

// parseOverrides turns TAG=VALUE pairs into constant generators. Values are
// read as YAML scalars, so numbers and booleans keep their type.
func parseOverrides(pairs []string) (avromock.Generators, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(avromock.Generators, len(pairs))
	for _, pair := range pairs {
		tag, raw, ok := strings.Cut(pair, "=")
		tag = strings.TrimSpace(tag)
		if !ok || tag == "" {
			return nil, fmt.Errorf("invalid --set %q: expected TAG=VALUE", pair)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", pair, err)
		}
		overrides[tag] = avromock.Const(value)
	}
	return overrides, nil
}
