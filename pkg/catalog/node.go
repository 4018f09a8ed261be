// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"carvel.dev/sclgen/pkg/filepos"
	"carvel.dev/sclgen/pkg/orderedmap"
)

type Kind string

const (
	KindClass         Kind = "LNClass"
	KindDataObject    Kind = "DataObject"
	KindSubDataObject Kind = "SubDataObject"
	KindDataAttribute Kind = "DataAttribute"
	KindLiteral       Kind = "Literal"
)

// TypeKind is kept verbatim from the catalog so that unsupported values can
// be reported by whoever walks the node rather than at load time.
type TypeKind string

const (
	TypeKindUnset       TypeKind = ""
	TypeKindBasic       TypeKind = "BASIC"
	TypeKindEnumerated  TypeKind = "ENUMERATED"
	TypeKindConstructed TypeKind = "CONSTRUCTED"
	TypeKindUndefined   TypeKind = "undefined"
)

func (k TypeKind) IsBasic() bool { return k == TypeKindBasic || k == TypeKindUnset }

type Node struct {
	Name string
	Kind Kind

	TypeKind TypeKind
	// Type is the basic type of a BASIC attribute, the enumeration or
	// struct name of other attributes, and the CDC of object nodes.
	Type string
	FC   string

	DChg bool
	DUpd bool
	QChg bool

	Transient bool

	Ordinal    int
	HasOrdinal bool

	UnderlyingTypeKind TypeKind
	UnderlyingType     string

	Children *orderedmap.Map[*Node]
	Position *filepos.Position
}

// BasicType is the declared basic type of a BASIC attribute.
func (n *Node) BasicType() string { return n.Type }

// ClassCode is the common data class of an object node.
func (n *Node) ClassCode() string { return n.Type }

func (n *Node) IsObject() bool {
	return n.Kind == KindDataObject || n.Kind == KindSubDataObject
}

func (n *Node) Child(name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	return n.Children.Get(name)
}

// Descend follows path from n and returns the node at its end.
func (n *Node) Descend(path ...string) (*Node, bool) {
	current := n
	for _, name := range path {
		child, found := current.Child(name)
		if !found {
			return nil, false
		}
		current = child
	}
	return current, current != nil
}

// IterateChildren visits children in catalog order.
func (n *Node) IterateChildren(iterFunc func(name string, child *Node) error) error {
	if n == nil {
		return nil
	}
	return n.Children.IterateErr(iterFunc)
}
