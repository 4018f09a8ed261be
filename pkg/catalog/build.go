// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"carvel.dev/sclgen/pkg/orderedmap"
)

// The constructors below build catalogs in memory; loaded catalogs are
// produced by Parse.

func NewClass(lnClass string, children ...*Node) *Node {
	return withChildren(&Node{Name: lnClass, Kind: KindClass}, children)
}

func NewDataObject(name, cdc string, children ...*Node) *Node {
	return withChildren(&Node{Name: name, Kind: KindDataObject, Type: cdc}, children)
}

func NewSubDataObject(name, cdc string, children ...*Node) *Node {
	return withChildren(&Node{Name: name, Kind: KindSubDataObject, Type: cdc}, children)
}

func NewBasicAttribute(name, fc, bType string) *Node {
	return &Node{Name: name, Kind: KindDataAttribute, TypeKind: TypeKindBasic, FC: fc, Type: bType,
		Children: orderedmap.NewMap[*Node]()}
}

func NewEnumAttribute(name, fc, enumType string, literals ...*Node) *Node {
	return withChildren(&Node{Name: name, Kind: KindDataAttribute, TypeKind: TypeKindEnumerated, FC: fc, Type: enumType}, literals)
}

func NewConstructedAttribute(name, fc, structType string, children ...*Node) *Node {
	return withChildren(&Node{Name: name, Kind: KindDataAttribute, TypeKind: TypeKindConstructed, FC: fc, Type: structType}, children)
}

// NewUndefinedAttribute builds an attribute whose type follows the
// underlying type of its enclosing object (e.g. ctlVal following stVal).
func NewUndefinedAttribute(name, fc string, underlyingKind TypeKind, underlyingType string) *Node {
	return &Node{Name: name, Kind: KindDataAttribute, TypeKind: TypeKindUndefined, FC: fc,
		UnderlyingTypeKind: underlyingKind, UnderlyingType: underlyingType,
		Children: orderedmap.NewMap[*Node]()}
}

func NewLiteral(name string, ordinal int) *Node {
	return &Node{Name: name, Kind: KindLiteral, Ordinal: ordinal, HasOrdinal: true,
		Children: orderedmap.NewMap[*Node]()}
}

func withChildren(n *Node, children []*Node) *Node {
	n.Children = orderedmap.NewMap[*Node]()
	for _, child := range children {
		n.Children.Set(child.Name, child)
	}
	return n
}

// WithFlags returns n after setting its change-report flags.
func (n *Node) WithFlags(dchg, dupd, qchg bool) *Node {
	n.DChg, n.DUpd, n.QChg = dchg, dupd, qchg
	return n
}

// WithTransient returns n after marking it transient.
func (n *Node) WithTransient(transient bool) *Node {
	n.Transient = transient
	return n
}
