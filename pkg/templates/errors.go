// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"errors"
	"fmt"
	"strings"

	"carvel.dev/sclgen/pkg/catalog"
	"carvel.dev/sclgen/pkg/filepos"
	"carvel.dev/sclgen/pkg/spell"
)

var (
	ErrInvalidTypeKind = errors.New("invalid type kind")
	ErrMissingSibling  = errors.New("missing sibling selection")
	ErrEmptySelection  = errors.New("empty selection")
	ErrUnknownClass    = errors.New("unknown node class")
)

func NewInvalidTypeKindError(path []string, node *catalog.Node, found catalog.TypeKind, expected string) error {
	return &InvalidTypeKindError{
		Path:     copyPath(path),
		Found:    found,
		Expected: expected,
		Position: node.Position,
	}
}

func NewMissingSiblingError(path []string, sibling string) error {
	return &MissingSiblingError{Path: copyPath(path), Sibling: sibling}
}

func NewEmptySelectionError(path []string) error {
	return &EmptySelectionError{Path: copyPath(path)}
}

func NewUnknownClassError(lnClass string, known []string) error {
	return &UnknownClassError{Class: lnClass, Known: known, Suggestion: spell.Nearest(lnClass, known)}
}

// InvalidTypeKindError means the catalog contradicts itself: a node expected
// to be CONSTRUCTED is not, or a type kind has an unsupported value.
type InvalidTypeKindError struct {
	Path     []string
	Found    catalog.TypeKind
	Expected string
	Position *filepos.Position
}

func (e *InvalidTypeKindError) Error() string {
	msg := fmt.Sprintf("Expected '%s' to have %s, but catalog declares '%s'", formatPath(e.Path), e.Expected, e.Found)
	if e.Position.IsKnown() {
		msg += fmt.Sprintf(" (at %s)", e.Position.AsCompactString())
	}
	return msg
}

func (e *InvalidTypeKindError) Is(target error) bool { return target == ErrInvalidTypeKind }

// MissingSiblingError means an attribute whose type follows a convention
// attribute (stVal, mxVal) was selected without that attribute.
type MissingSiblingError struct {
	Path    []string
	Sibling string
}

func (e *MissingSiblingError) Error() string {
	return fmt.Sprintf("Unexpected selection of '%s' without %s sibling", formatPath(e.Path), e.Sibling)
}

func (e *MissingSiblingError) Is(target error) bool { return target == ErrMissingSibling }

// EmptySelectionError means an object type was requested for an object
// that carries no selection at all.
type EmptySelectionError struct {
	Path []string
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("Adding DOType for empty selection at '%s'", formatPath(e.Path))
}

func (e *EmptySelectionError) Is(target error) bool { return target == ErrEmptySelection }

type UnknownClassError struct {
	Class      string
	Known      []string
	Suggestion string
}

func (e *UnknownClassError) Error() string {
	msg := fmt.Sprintf("Unknown node class '%s'", e.Class)
	var hints []string
	if e.Suggestion != "" {
		hints = append(hints, fmt.Sprintf("did you mean '%s'?", e.Suggestion))
	}
	if len(e.Known) > 0 {
		hints = append(hints, "catalog defines "+strings.Join(e.Known, ", "))
	}
	if len(hints) > 0 {
		msg += fmt.Sprintf(" (hint: %s)", strings.Join(hints, " "))
	}
	return msg
}

func (e *UnknownClassError) Is(target error) bool { return target == ErrUnknownClass }

func formatPath(path []string) string { return strings.Join(path, ".") }

func copyPath(path []string) []string { return append([]string(nil), path...) }
