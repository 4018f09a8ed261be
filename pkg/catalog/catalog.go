// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"carvel.dev/sclgen/pkg/orderedmap"
)

// Catalog is the set of node classes, in catalog order.
type Catalog struct {
	FormatVersion string
	classes       *orderedmap.Map[*Node]
}

func New(classes ...*Node) *Catalog {
	c := &Catalog{classes: orderedmap.NewMap[*Node]()}
	for _, class := range classes {
		c.classes.Set(class.Name, class)
	}
	return c
}

func (c *Catalog) Class(lnClass string) (*Node, bool) {
	return c.classes.Get(lnClass)
}

func (c *Catalog) Classes() []string {
	return c.classes.Keys()
}

// Lookup returns the node at path below the class lnClass.
func (c *Catalog) Lookup(lnClass string, path ...string) (*Node, bool) {
	class, found := c.Class(lnClass)
	if !found {
		return nil, false
	}
	return class.Descend(path...)
}
