// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"bytes"
	"fmt"
)

// IDSeparator joins the readable slug and the content hash of an identifier.
const IDSeparator = "$sclgen$_"

func NewID(slug, hash string) string { return slug + IDSeparator + hash }

// registry deduplicates definitions within one Generate call.
type registry struct {
	canonical map[string][]byte
	templates Templates
}

func newRegistry() *registry {
	return &registry{canonical: map[string][]byte{}}
}

// identify assigns an identifier to a freshly built definition and records
// it unless an equal definition was recorded before. The identifier is
// returned either way.
func (r *registry) identify(slug string, d Definition) string {
	canonical := CanonicalBytes(d)
	id := NewID(slug, hashCanonical(canonical))

	if seen, found := r.canonical[id]; found {
		if !bytes.Equal(seen, canonical) {
			panic(fmt.Sprintf("Unexpected hash collision for %s '%s'", d.Kind().Tag(), id))
		}
		return id
	}
	r.canonical[id] = canonical

	switch typed := d.(type) {
	case *EnumType:
		typed.id = id
		r.templates.EnumTypes = append(r.templates.EnumTypes, typed)
	case *DAType:
		typed.id = id
		r.templates.DATypes = append(r.templates.DATypes, typed)
	case *DOType:
		typed.id = id
		r.templates.DOTypes = append(r.templates.DOTypes, typed)
	case *LNodeType:
		typed.id = id
		r.templates.LNodeTypes = append(r.templates.LNodeTypes, typed)
	default:
		panic(fmt.Sprintf("Unknown definition type %T", d))
	}
	return id
}
