// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dacolabs/avromock"
	"github.com/dacolabs/avromock/internal/output"
	"github.com/spf13/cobra"
)

type typesOptions struct {
	schema      string
	inputFormat string
	output      string // text, json, yaml
}

// namedType is one row of the types listing.
type namedType struct {
	Name   string
	Kind   string
	Fields int
}

func newTypesCmd() *cobra.Command {
	opts := &typesOptions{}

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the named types of a schema",
		Long: `List every named type declared in a schema, with its fully-qualified name.
These are the names accepted by "generate --pick" and usable as type references.`,
		Example: `  # Human-readable listing
  avromock types --schema farm.avsc

  # As JSON
  avromock types --schema farm.avsc -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Schema file, or - for stdin")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "json", "Schema format when reading stdin (json or yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runTypes(cmd *cobra.Command, opts *typesOptions) error {
	schema, err := loadSchema(cmd.InOrStdin(), opts.schema, opts.inputFormat)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	types := collectNamedTypes(schema)

	if strings.EqualFold(opts.output, "text") {
		return printTypes(cmd.OutOrStdout(), types)
	}

	format, err := output.ParseFormat(opts.output)
	if err != nil {
		return err
	}
	rows := make([]any, len(types))
	for i, t := range types {
		rows[i] = map[string]any{"name": t.Name, "kind": t.Kind, "fields": t.Fields}
	}
	return output.Write(cmd.OutOrStdout(), format, []any{rows})
}

// collectNamedTypes lists named descriptors in declaration order. Names
// declared more than once are listed once.
func collectNamedTypes(schema avromock.Node) []namedType {
	var types []namedType
	seen := make(map[string]struct{})
	for d, namespace := range avromock.Traverse(schema) {
		if d.Name == "" {
			continue
		}
		name := d.FullName(namespace)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		kind := d.Tag()
		if d.LogicalType != "" {
			kind = kind + "/" + d.LogicalType
		}
		types = append(types, namedType{Name: name, Kind: kind, Fields: len(d.Fields)})
	}
	return types
}

func printTypes(w io.Writer, types []namedType) error {
	if len(types) == 0 {
		_, err := fmt.Fprintln(w, "No named types")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tKIND\tFIELDS")
	for _, t := range types {
		fields := "-"
		if t.Kind == avromock.TypeRecord {
			fields = fmt.Sprint(t.Fields)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Kind, fields)
	}
	return tw.Flush()
}
