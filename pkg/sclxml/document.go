// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package sclxml

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const indent = "\t"

// Document is a root element plus the comments that precede it.
type Document struct {
	comments []string
	root     *Element
}

func NewDocument(root *Element, comments ...string) *Document {
	return &Document{comments: append([]string(nil), comments...), root: root}
}

func (d *Document) Root() *Element     { return d.root }
func (d *Document) Comments() []string { return append([]string(nil), d.comments...) }

// WithRoot returns a copy of d whose root element is replaced.
func (d *Document) WithRoot(root *Element) *Document {
	return NewDocument(root, d.comments...)
}

func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// Parse reads an XML document. Text runs are kept in place among an
// element's children. In elements without any non-blank text the
// whitespace between children is layout only; it is dropped and the
// element is re-indented when encoded.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	var (
		stack    []*Element
		root     *Element
		comments []string
	)

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Parsing XML: %s", err)
		}

		switch typedTok := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("Parsing XML: unexpected second root element <%s>", rawName(typedTok.Name))
			}
			elem := &Element{tag: rawName(typedTok.Name)}
			for _, attr := range typedTok.Attr {
				elem.attrs = append(elem.attrs, Attr{rawName(attr.Name), attr.Value})
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("Parsing XML: unexpected </%s>", rawName(typedTok.Name))
			}
			done := stack[len(stack)-1]
			if done.tag != rawName(typedTok.Name) {
				return nil, fmt.Errorf("Parsing XML: element <%s> closed by </%s>", done.tag, rawName(typedTok.Name))
			}
			stack = stack[:len(stack)-1]
			if !done.hasText() {
				done.children = withoutTextNodes(done.children)
			}
			if len(stack) == 0 {
				root = done
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, done)
			}

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			current := stack[len(stack)-1]
			if last := len(current.children) - 1; last >= 0 && current.children[last].kind == textNode {
				current.children[last].text += string(typedTok)
			} else {
				current.children = append(current.children, NewText(string(typedTok)))
			}

		case xml.Comment:
			if len(stack) == 0 {
				if root == nil {
					comments = append(comments, string(typedTok))
				}
				continue
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, NewComment(string(typedTok)))
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("Parsing XML: unclosed element <%s>", stack[len(stack)-1].tag)
	}
	if root == nil {
		return nil, fmt.Errorf("Parsing XML: expected a root element")
	}
	return NewDocument(root, comments...), nil
}

func withoutTextNodes(children []*Element) []*Element {
	var result []*Element
	for _, child := range children {
		if child.kind != textNode {
			result = append(result, child)
		}
	}
	return result
}

func rawName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// Bytes renders the document with an XML declaration.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	for _, comment := range d.comments {
		if _, err := fmt.Fprintf(w, "<!--%s-->\n", comment); err != nil {
			return err
		}
	}
	if err := EncodeElement(w, d.root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// EncodeElement renders a single element tree without a declaration.
// Children are indented one tab per level, except inside elements with
// text content, whose children are written exactly as they are.
func EncodeElement(w io.Writer, e *Element) error {
	p := &printer{w: bufio.NewWriter(w)}
	p.node(e, 0, true)
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

type printer struct {
	w   *bufio.Writer
	err error
}

func (p *printer) node(e *Element, depth int, indented bool) {
	switch e.kind {
	case commentNode:
		if strings.Contains(e.text, "--") {
			p.err = fmt.Errorf("Encoding XML: comment must not contain \"--\"")
			return
		}
		p.write("<!--", e.text, "-->")
	case textNode:
		p.write(escapeText(e.text))
	default:
		p.element(e, depth, indented)
	}
}

func (p *printer) element(e *Element, depth int, indented bool) {
	p.write("<", e.tag)
	for _, attr := range e.attrs {
		p.write(" ", attr.Name, `="`, escapeAttr(attr.Value), `"`)
	}
	p.write(">")

	inline := !indented || e.hasText()
	for _, child := range e.children {
		if !inline {
			p.write("\n", strings.Repeat(indent, depth+1))
		}
		p.node(child, depth+1, !inline)
	}
	if !inline && len(e.children) > 0 {
		p.write("\n", strings.Repeat(indent, depth))
	}
	p.write("</", e.tag, ">")
}

func (p *printer) write(parts ...string) {
	for _, part := range parts {
		p.w.WriteString(part)
	}
}

func escapeAttr(value string) string {
	var buf strings.Builder
	_ = xml.EscapeText(&buf, []byte(value))
	return buf.String()
}

// escapeText escapes like escapeAttr but keeps line breaks literal.
func escapeText(text string) string {
	return strings.ReplaceAll(escapeAttr(text), "&#xA;", "\n")
}
