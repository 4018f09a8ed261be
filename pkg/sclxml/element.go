// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package sclxml

import (
	"strings"

	"carvel.dev/sclgen/pkg/orderedmap"
)

type Attr struct {
	Name  string
	Value string
}

type nodeKind int

const (
	elementNode nodeKind = iota
	commentNode
	textNode
)

// Element is an XML element, or a comment or text run in the children of
// one. Text runs keep their position among sibling elements.
type Element struct {
	kind     nodeKind
	tag      string
	attrs    []Attr
	children []*Element
	// text of a comment or text node
	text string
}

// NewElement builds an element. Attributes with a nil value are left out
// entirely rather than rendered empty.
func NewElement(tag string, attrs *orderedmap.Map[*string], children ...*Element) *Element {
	e := &Element{tag: tag}
	attrs.Iterate(func(name string, value *string) {
		if value != nil {
			e.attrs = append(e.attrs, Attr{name, *value})
		}
	})
	e.children = append([]*Element(nil), children...)
	return e
}

// NewTextElement builds an element whose only content is text.
func NewTextElement(tag string, attrs *orderedmap.Map[*string], text string) *Element {
	return NewElement(tag, attrs, NewText(text))
}

// NewComment builds a comment node; it has no tag or attributes.
func NewComment(text string) *Element {
	return &Element{kind: commentNode, text: text}
}

// NewText builds a text node (character data between or around elements).
func NewText(text string) *Element {
	return &Element{kind: textNode, text: text}
}

func (e *Element) Tag() string     { return e.tag }
func (e *Element) IsComment() bool { return e.kind == commentNode }
func (e *Element) IsText() bool    { return e.kind == textNode }
func (e *Element) Attrs() []Attr   { return append([]Attr(nil), e.attrs...) }

// Text is the text of a comment or text node. For an element it is the
// concatenation of its text children.
func (e *Element) Text() string {
	if e.kind != elementNode {
		return e.text
	}
	var text strings.Builder
	for _, child := range e.children {
		if child.kind == textNode {
			text.WriteString(child.text)
		}
	}
	return text.String()
}

// hasText reports whether any child is a text run that is not just layout.
func (e *Element) hasText() bool {
	for _, child := range e.children {
		if child.kind == textNode && strings.TrimSpace(child.text) != "" {
			return true
		}
	}
	return false
}
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

func (e *Element) Attr(name string) (string, bool) {
	for _, attr := range e.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// ID is the value of the "id" attribute, or "" when absent.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// ChildrenByTag returns the element children tagged tag, in document order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var result []*Element
	for _, child := range e.children {
		if child.kind == elementNode && child.tag == tag {
			result = append(result, child)
		}
	}
	return result
}

// FirstChild returns the first element child tagged tag.
func (e *Element) FirstChild(tag string) (*Element, bool) {
	for _, child := range e.children {
		if child.kind == elementNode && child.tag == tag {
			return child, true
		}
	}
	return nil, false
}

// WithChildren returns a copy of e with its children replaced.
func (e *Element) WithChildren(children ...*Element) *Element {
	copied := *e
	copied.attrs = append([]Attr(nil), e.attrs...)
	copied.children = append([]*Element(nil), children...)
	return &copied
}

// WithAttr returns a copy of e with attribute name set to value, keeping
// the attribute's position if it already exists.
func (e *Element) WithAttr(name, value string) *Element {
	copied := *e
	copied.attrs = append([]Attr(nil), e.attrs...)
	copied.children = append([]*Element(nil), e.children...)
	for i, attr := range copied.attrs {
		if attr.Name == name {
			copied.attrs[i].Value = value
			return &copied
		}
	}
	copied.attrs = append(copied.attrs, Attr{name, value})
	return &copied
}

// Attrs is a convenience for building the attribute map of NewElement from
// name/value pairs; use Optional for values that may be absent.
func Attrs(pairs ...AttrPair) *orderedmap.Map[*string] {
	m := orderedmap.NewMap[*string]()
	for _, pair := range pairs {
		m.Set(pair.Name, pair.Value)
	}
	return m
}

type AttrPair struct {
	Name  string
	Value *string
}

func Required(name, value string) AttrPair { return AttrPair{name, &value} }

// Optional yields an absent attribute when value is "".
func Optional(name, value string) AttrPair {
	if value == "" {
		return AttrPair{Name: name}
	}
	return AttrPair{name, &value}
}

// Flag yields "true" when set and an absent attribute otherwise.
func Flag(name string, set bool) AttrPair {
	if !set {
		return AttrPair{Name: name}
	}
	return Required(name, "true")
}
