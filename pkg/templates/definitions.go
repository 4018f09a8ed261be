// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"carvel.dev/sclgen/pkg/sclxml"
)

type Kind int

const (
	KindLNodeType Kind = iota
	KindDOType
	KindDAType
	KindEnumType
)

// Tag is the SCL element name of definitions of this kind.
func (k Kind) Tag() string {
	switch k {
	case KindLNodeType:
		return "LNodeType"
	case KindDOType:
		return "DOType"
	case KindDAType:
		return "DAType"
	case KindEnumType:
		return "EnumType"
	default:
		panic("Unknown definition kind")
	}
}

// Kinds lists definition kinds in DataTypeTemplates order.
var Kinds = []Kind{KindLNodeType, KindDOType, KindDAType, KindEnumType}

// Definition is one generated type. Definitions are immutable once returned
// by Generate.
type Definition interface {
	Kind() Kind
	ID() string
	Element() *sclxml.Element

	// description is the content the identifier hash is computed over.
	description() map[string]interface{}
}

var _ = []Definition{&EnumType{}, &DAType{}, &DOType{}, &LNodeType{}}

type EnumVal struct {
	Ord  int
	Name string
}

type EnumType struct {
	id   string
	vals []EnumVal
}

func (t *EnumType) Kind() Kind { return KindEnumType }
func (t *EnumType) ID() string { return t.id }

// Vals are ordered by ascending ordinal.
func (t *EnumType) Vals() []EnumVal { return append([]EnumVal(nil), t.vals...) }

// BDA is a struct member. Type is set only when BType is Enum or Struct.
type BDA struct {
	Name  string
	BType string
	Type  string
}

type DAType struct {
	id   string
	bdas []BDA
}

func (t *DAType) Kind() Kind  { return KindDAType }
func (t *DAType) ID() string  { return t.id }
func (t *DAType) BDAs() []BDA { return append([]BDA(nil), t.bdas...) }

type SDO struct {
	Name      string
	Type      string
	Transient bool
}

type DA struct {
	Name  string
	FC    string
	DChg  bool
	DUpd  bool
	QChg  bool
	BType string
	Type  string
}

type DOType struct {
	id   string
	cdc  string
	sdos []SDO
	das  []DA
}

func (t *DOType) Kind() Kind      { return KindDOType }
func (t *DOType) ID() string      { return t.id }
func (t *DOType) CDC() string     { return t.cdc }
func (t *DOType) SDOs() []SDO     { return append([]SDO(nil), t.sdos...) }
func (t *DOType) DAs() []DA       { return append([]DA(nil), t.das...) }
func (t *DOType) NumMembers() int { return len(t.sdos) + len(t.das) }

type DO struct {
	Name      string
	Type      string
	Transient bool
}

type LNodeType struct {
	id      string
	lnClass string
	dos     []DO
}

func (t *LNodeType) Kind() Kind      { return KindLNodeType }
func (t *LNodeType) ID() string      { return t.id }
func (t *LNodeType) LNClass() string { return t.lnClass }
func (t *LNodeType) DOs() []DO       { return append([]DO(nil), t.dos...) }

// Templates holds every definition produced by one Generate call. Within each
// collection definitions appear in the order they were finished, which for
// nested types means dependencies come before their dependents.
type Templates struct {
	LNodeTypes []*LNodeType
	DOTypes    []*DOType
	DATypes    []*DAType
	EnumTypes  []*EnumType
}

func (t Templates) Len() int {
	return len(t.LNodeTypes) + len(t.DOTypes) + len(t.DATypes) + len(t.EnumTypes)
}

// Definitions returns all definitions in DataTypeTemplates order.
func (t Templates) Definitions() []Definition {
	var result []Definition
	for _, d := range t.LNodeTypes {
		result = append(result, d)
	}
	for _, d := range t.DOTypes {
		result = append(result, d)
	}
	for _, d := range t.DATypes {
		result = append(result, d)
	}
	for _, d := range t.EnumTypes {
		result = append(result, d)
	}
	return result
}

func (t Templates) Elements() []*sclxml.Element {
	var result []*sclxml.Element
	for _, d := range t.Definitions() {
		result = append(result, d.Element())
	}
	return result
}

// LNodeType is the root type generated for the requested class.
func (t Templates) LNodeType() (*LNodeType, bool) {
	if len(t.LNodeTypes) == 0 {
		return nil, false
	}
	return t.LNodeTypes[0], true
}
