// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import "errors"

// ErrUnknownType indicates a type node matched no generator, logical type or alias.
var ErrUnknownType = errors.New("unknown type")

// UnknownTypeError reports the type node that could not be resolved.
type UnknownTypeError struct {
	Node Node
}

func (e *UnknownTypeError) Error() string {
	return "unknown type " + Describe(e.Node)
}

// Is reports whether target is ErrUnknownType.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}
