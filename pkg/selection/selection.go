// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package selection models the user's choice of catalog paths.

A Selection is a tree of names: a present key means "include", an absent key
means "exclude". Leaves are empty (non-nil) selections. A key mapped to a nil
Selection is present but carries no subtree; whoever walks a selection
decides whether that is acceptable.
*/
package selection

import (
	"sort"
)

type Selection map[string]Selection

// Get returns the sub-selection for name and whether name is selected.
func (s Selection) Get(name string) (Selection, bool) {
	sub, found := s[name]
	return sub, found
}

func (s Selection) Has(name string) bool {
	_, found := s[name]
	return found
}

// IsEmpty reports whether nothing below s is selected.
func (s Selection) IsEmpty() bool { return len(s) == 0 }

// Keys returns the selected names sorted, so that walks driven by a
// selection do not depend on Go's map iteration order.
func (s Selection) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithoutEmptyKeys returns a copy of s with every "" key removed at any
// depth. Tree widgets are known to leave such keys behind.
func (s Selection) WithoutEmptyKeys() Selection {
	if s == nil {
		return nil
	}
	result := make(Selection, len(s))
	for k, v := range s {
		if k == "" {
			continue
		}
		result[k] = v.WithoutEmptyKeys()
	}
	return result
}

// Paths lists every selected path, depth first in sorted key order.
func (s Selection) Paths() [][]string {
	var result [][]string
	var walk func(prefix []string, sel Selection)
	walk = func(prefix []string, sel Selection) {
		for _, k := range sel.Keys() {
			path := append(append([]string{}, prefix...), k)
			result = append(result, path)
			walk(path, sel[k])
		}
	}
	walk(nil, s)
	return result
}
