// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// resultField is a label-value pair for printResult.
type resultField struct {
	Label string
	Value string
}

// printResult prints a summary with green checkmarks and faint labels.
func printResult(w io.Writer, fields []resultField, successMsg string) {
	success := color.New(color.FgGreen)
	label := color.New(color.Faint)
	check := success.Sprint("✓")

	for _, f := range fields {
		fmt.Fprintf(w, "%s %s %s\n", check, label.Sprint(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		success.Fprintln(w, successMsg) //nolint:errcheck
	}
}
