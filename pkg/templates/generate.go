// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"sort"

	"carvel.dev/sclgen/pkg/catalog"
	"carvel.dev/sclgen/pkg/selection"
)

// Names of the convention attributes that carry the underlying type of
// attributes declared with an undefined type (e.g. ctlVal).
const (
	statusValueName   = "stVal"
	measuredValueName = "mxVal"
)

const (
	bTypeEnum   = "Enum"
	bTypeStruct = "Struct"
)

// Generate builds the data type templates needed to describe the part of
// node class lnClass that sel selects. Only catalog children drive the walk:
// selected names the catalog does not know are ignored.
func Generate(sel selection.Selection, cat *catalog.Catalog, lnClass string) (Templates, error) {
	class, found := cat.Class(lnClass)
	if !found {
		return Templates{}, NewUnknownClassError(lnClass, cat.Classes())
	}

	r := resolver{class: class, registry: newRegistry()}

	err := r.resolveNode(lnClass, sel)
	if err != nil {
		return Templates{}, err
	}
	return r.registry.templates, nil
}

type resolver struct {
	class    *catalog.Node
	registry *registry
}

// attributeContext carries what nested attributes need to know about the
// object they belong to.
type attributeContext struct {
	objectPath []string
	// underlying is the selection of the object's stVal or mxVal attribute
	underlying selection.Selection
	// enclosing is the struct node the attribute is a member of, if any
	enclosing *catalog.Node
}

func (r resolver) resolveNode(lnClass string, sel selection.Selection) error {
	var dos []DO

	err := r.class.IterateChildren(func(name string, child *catalog.Node) error {
		childSel, selected := sel.Get(name)
		if !selected {
			return nil
		}
		id, err := r.resolveObject([]string{name}, childSel)
		if err != nil {
			return err
		}
		dos = append(dos, DO{Name: name, Type: id, Transient: child.Transient})
		return nil
	})
	if err != nil {
		return err
	}

	r.registry.identify(lnClass, &LNodeType{lnClass: lnClass, dos: dos})
	return nil
}

func (r resolver) resolveObject(path []string, sel selection.Selection) (string, error) {
	if sel == nil {
		return "", NewEmptySelectionError(path)
	}
	node, found := r.lookup(path)
	if !found {
		return "", NewEmptySelectionError(path)
	}

	ctx := attributeContext{objectPath: path, underlying: underlyingSelection(sel)}

	var sdos []SDO
	var das []DA

	err := node.IterateChildren(func(name string, child *catalog.Node) error {
		childSel, selected := sel.Get(name)
		if !selected {
			return nil
		}
		childPath := appendPath(path, name)

		if child.Kind == catalog.KindSubDataObject {
			id, err := r.resolveObject(childPath, childSel)
			if err != nil {
				return err
			}
			sdos = append(sdos, SDO{Name: name, Type: id, Transient: child.Transient})
			return nil
		}

		bType, typeID, err := r.resolveAttribute(childPath, child, childSel, ctx)
		if err != nil {
			return err
		}
		das = append(das, DA{
			Name:  name,
			FC:    child.FC,
			DChg:  child.DChg,
			DUpd:  child.DUpd,
			QChg:  child.QChg,
			BType: bType,
			Type:  typeID,
		})
		return nil
	})
	if err != nil {
		return "", err
	}

	doType := &DOType{cdc: node.ClassCode(), sdos: sdos, das: das}
	return r.registry.identify(lastName(path), doType), nil
}

// resolveAttribute returns the bType of the attribute at path and, for
// enumerated and constructed attributes, the id of its type.
func (r resolver) resolveAttribute(path []string, node *catalog.Node,
	sel selection.Selection, ctx attributeContext) (string, string, error) {

	switch {
	case node.TypeKind.IsBasic():
		return node.BasicType(), "", nil

	case node.TypeKind == catalog.TypeKindEnumerated:
		id := r.resolveEnumType(path, node, sel)
		return bTypeEnum, id, nil

	case node.TypeKind == catalog.TypeKindConstructed:
		id, err := r.resolveDAType(path, sel, ctx)
		if err != nil {
			return "", "", err
		}
		return bTypeStruct, id, nil

	case node.TypeKind == catalog.TypeKindUndefined:
		return r.resolveUnderlying(path, node, ctx)

	default:
		return "", "", NewInvalidTypeKindError(path, node, node.TypeKind, "a supported typeKind")
	}
}

// resolveUnderlying types an attribute after the stVal or mxVal attribute of
// its object.
func (r resolver) resolveUnderlying(path []string, node *catalog.Node, ctx attributeContext) (string, string, error) {
	kind, underlyingType := node.UnderlyingTypeKind, node.UnderlyingType
	if kind == catalog.TypeKindUnset && ctx.enclosing != nil {
		kind, underlyingType = ctx.enclosing.UnderlyingTypeKind, ctx.enclosing.UnderlyingType
	}

	switch kind {
	case catalog.TypeKindBasic:
		return underlyingType, "", nil

	case catalog.TypeKindEnumerated:
		siblingPath := appendPath(ctx.objectPath, statusValueName)
		sibling, found := r.lookup(siblingPath)
		if !found {
			return "", "", NewMissingSiblingError(path, statusValueName)
		}
		return bTypeEnum, r.resolveEnumType(siblingPath, sibling, ctx.underlying), nil

	case catalog.TypeKindConstructed:
		if ctx.underlying.IsEmpty() {
			return "", "", NewMissingSiblingError(path, measuredValueName)
		}
		siblingPath := appendPath(ctx.objectPath, measuredValueName)
		if _, found := r.lookup(siblingPath); !found {
			return "", "", NewMissingSiblingError(path, measuredValueName)
		}
		if hasPathPrefix(path, siblingPath) {
			// a member of mxVal typed after mxVal itself
			return "", "", NewInvalidTypeKindError(path, node, kind,
				"an underlyingTypeKind that does not refer back to its enclosing "+measuredValueName)
		}
		id, err := r.resolveDAType(siblingPath, ctx.underlying, ctx)
		if err != nil {
			return "", "", err
		}
		return bTypeStruct, id, nil

	default:
		return "", "", NewInvalidTypeKindError(path, node, kind, "a supported underlyingTypeKind")
	}
}

// resolveEnumType builds the enumeration of the selected literals. Selecting
// an enumerated attribute without naming literals selects all of them.
func (r resolver) resolveEnumType(path []string, node *catalog.Node, sel selection.Selection) string {
	names := sel.Keys()
	if sel.IsEmpty() {
		names = node.Children.Keys()
	}

	var vals []EnumVal
	for _, name := range names {
		literal, found := node.Child(name)
		if !found || !literal.HasOrdinal {
			continue
		}
		vals = append(vals, EnumVal{Ord: literal.Ordinal, Name: name})
	}
	sort.SliceStable(vals, func(i, j int) bool { return vals[i].Ord < vals[j].Ord })

	return r.registry.identify(lastName(path), &EnumType{vals: vals})
}

func (r resolver) resolveDAType(path []string, sel selection.Selection, ctx attributeContext) (string, error) {
	node, found := r.lookup(path)
	if !found {
		return "", NewMissingSiblingError(path, measuredValueName)
	}
	if node.TypeKind != catalog.TypeKindConstructed {
		return "", NewInvalidTypeKindError(path, node, node.TypeKind, "typeKind "+string(catalog.TypeKindConstructed))
	}

	memberCtx := ctx
	memberCtx.enclosing = node

	var bdas []BDA

	err := node.IterateChildren(func(name string, child *catalog.Node) error {
		childSel, selected := sel.Get(name)
		if !selected {
			return nil
		}
		bType, typeID, err := r.resolveAttribute(appendPath(path, name), child, childSel, memberCtx)
		if err != nil {
			return err
		}
		bdas = append(bdas, BDA{Name: name, BType: bType, Type: typeID})
		return nil
	})
	if err != nil {
		return "", err
	}

	return r.registry.identify(lastName(path), &DAType{bdas: bdas}), nil
}

func (r resolver) lookup(path []string) (*catalog.Node, bool) {
	return r.class.Descend(path...)
}

// underlyingSelection picks the stVal selection of an object, else its mxVal
// selection. A stVal selected without a subtree (null) does not count.
func underlyingSelection(sel selection.Selection) selection.Selection {
	if stVal, found := sel.Get(statusValueName); found && stVal != nil {
		return stVal
	}
	mxVal, _ := sel.Get(measuredValueName)
	return mxVal
}

func appendPath(path []string, name string) []string {
	return append(append(make([]string, 0, len(path)+1), path...), name)
}

func hasPathPrefix(path, prefix []string) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i, name := range prefix {
		if path[i] != name {
			return false
		}
	}
	return true
}

func lastName(path []string) string { return path[len(path)-1] }
