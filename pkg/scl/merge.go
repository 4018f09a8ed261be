// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scl

import (
	"fmt"

	"carvel.dev/sclgen/pkg/sclxml"
	"carvel.dev/sclgen/pkg/templates"
)

const (
	Namespace = "http://www.iec.ch/61850/2003/SCL"

	rootTag      = "SCL"
	templatesTag = "DataTypeTemplates"
)

// NewDocument returns an SCL document with an empty DataTypeTemplates
// section.
func NewDocument() *sclxml.Document {
	return sclxml.NewDocument(sclxml.NewElement(rootTag,
		sclxml.Attrs(sclxml.Required("xmlns", Namespace)),
		sclxml.NewElement(templatesTag, nil),
	))
}

type MergeReport struct {
	Inserted []string
	Skipped  []string
	// AddedLNodeType is the id of the generated LNodeType, whether or not
	// it had to be inserted.
	AddedLNodeType string
}

// Merge returns a copy of doc whose DataTypeTemplates section contains every
// definition of t. Definitions whose tag and id are already present are
// skipped. New definitions are placed after existing ones of the same kind,
// keeping the LNodeType, DOType, DAType, EnumType grouping.
func Merge(doc *sclxml.Document, t templates.Templates) (*sclxml.Document, MergeReport, error) {
	var report MergeReport

	root := doc.Root()
	if root == nil || root.Tag() != rootTag {
		return nil, report, fmt.Errorf("Expected document root to be <%s>", rootTag)
	}

	dtt, found := root.FirstChild(templatesTag)
	if !found {
		dtt = sclxml.NewElement(templatesTag, nil)
	}

	children := dtt.Children()

	for _, def := range t.Definitions() {
		if hasDefinition(children, def) {
			report.Skipped = append(report.Skipped, def.ID())
			continue
		}
		children = insertAt(children, insertionIndex(children, def.Kind()), def.Element())
		report.Inserted = append(report.Inserted, def.ID())
	}

	if lnodeType, found := t.LNodeType(); found {
		report.AddedLNodeType = lnodeType.ID()
	}

	return doc.WithRoot(replaceTemplates(root, dtt.WithChildren(children...), found)), report, nil
}

func hasDefinition(children []*sclxml.Element, def templates.Definition) bool {
	tag := def.Kind().Tag()
	for _, child := range children {
		if child.Tag() == tag && child.ID() == def.ID() {
			return true
		}
	}
	return false
}

// insertionIndex is the position of the first child belonging to a kind that
// comes after kind.
func insertionIndex(children []*sclxml.Element, kind templates.Kind) int {
	for i, child := range children {
		if childKind, known := kindOf(child); known && childKind > kind {
			return i
		}
	}
	return len(children)
}

func kindOf(e *sclxml.Element) (templates.Kind, bool) {
	if e.IsComment() || e.IsText() {
		return 0, false
	}
	for _, kind := range templates.Kinds {
		if kind.Tag() == e.Tag() {
			return kind, true
		}
	}
	return 0, false
}

func insertAt(children []*sclxml.Element, i int, e *sclxml.Element) []*sclxml.Element {
	result := make([]*sclxml.Element, 0, len(children)+1)
	result = append(result, children[:i]...)
	result = append(result, e)
	return append(result, children[i:]...)
}

func replaceTemplates(root, dtt *sclxml.Element, existed bool) *sclxml.Element {
	children := root.Children()
	if !existed {
		return root.WithChildren(append(children, dtt)...)
	}
	for i, child := range children {
		if child.Tag() == templatesTag {
			children[i] = dtt
			break
		}
	}
	return root.WithChildren(children...)
}
