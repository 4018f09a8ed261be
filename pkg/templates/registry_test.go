// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIdentify(t *testing.T) {
	r := newRegistry()

	first := r.identify("mag", &DAType{bdas: []BDA{{Name: "f", BType: "FLOAT32"}}})
	second := r.identify("mag", &DAType{bdas: []BDA{{Name: "f", BType: "FLOAT32"}}})
	other := r.identify("cVal", &DAType{bdas: []BDA{{Name: "f", BType: "FLOAT32"}}})

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Regexp(t, regexp.MustCompile(`^mag\$sclgen\$_[0-9a-f]{16}$`), first)

	require.Len(t, r.templates.DATypes, 2)
	assert.Equal(t, first, r.templates.DATypes[0].ID())
	assert.Equal(t, other, r.templates.DATypes[1].ID())
}

func TestContentHashIgnoresMemberOrder(t *testing.T) {
	forward := &DOType{cdc: "SPS", das: []DA{
		{Name: "stVal", FC: "ST", DChg: true, BType: "BOOLEAN"},
		{Name: "q", FC: "ST", QChg: true, BType: "Quality"},
	}}
	backward := &DOType{cdc: "SPS", das: []DA{
		{Name: "q", FC: "ST", QChg: true, BType: "Quality"},
		{Name: "stVal", FC: "ST", DChg: true, BType: "BOOLEAN"},
	}}
	assert.Equal(t, ContentHash(forward), ContentHash(backward))
}

func TestContentHashTracksContent(t *testing.T) {
	base := &DOType{cdc: "SPS", das: []DA{{Name: "stVal", FC: "ST", BType: "BOOLEAN"}}}

	variants := []Definition{
		&DOType{cdc: "SPC", das: []DA{{Name: "stVal", FC: "ST", BType: "BOOLEAN"}}},
		&DOType{cdc: "SPS", das: []DA{{Name: "stVal", FC: "MX", BType: "BOOLEAN"}}},
		&DOType{cdc: "SPS", das: []DA{{Name: "stVal", FC: "ST", DChg: true, BType: "BOOLEAN"}}},
		&DOType{cdc: "SPS", das: []DA{{Name: "stVal", FC: "ST", BType: "INT32"}}},
		&DOType{cdc: "SPS", das: []DA{{Name: "stVal", FC: "ST", BType: "Enum", Type: "stVal$sclgen$_0000000000000000"}}},
		&DOType{cdc: "SPS", das: []DA{{Name: "value", FC: "ST", BType: "BOOLEAN"}}},
		&DOType{cdc: "SPS", sdos: []SDO{{Name: "stVal", Type: "x"}}},
		&DAType{bdas: []BDA{{Name: "stVal", BType: "BOOLEAN"}}},
	}

	seen := map[string]bool{ContentHash(base): true}
	for _, variant := range variants {
		hash := ContentHash(variant)
		assert.False(t, seen[hash], "hash %s repeated for %#v", hash, variant)
		seen[hash] = true
	}
}

func TestContentHashOfEnumerations(t *testing.T) {
	a := &EnumType{vals: []EnumVal{{1, "on"}, {2, "off"}}}
	b := &EnumType{vals: []EnumVal{{1, "on"}, {2, "off"}}}
	renamed := &EnumType{vals: []EnumVal{{1, "on"}, {2, "Off"}}}
	renumbered := &EnumType{vals: []EnumVal{{1, "on"}, {3, "off"}}}

	assert.Equal(t, ContentHash(a), ContentHash(b))
	assert.NotEqual(t, ContentHash(a), ContentHash(renamed))
	assert.NotEqual(t, ContentHash(a), ContentHash(renumbered))
	assert.Len(t, ContentHash(a), 16)
}

func TestRegistryPanicsOnCollision(t *testing.T) {
	r := newRegistry()
	id := r.identify("Beh", &EnumType{vals: []EnumVal{{1, "on"}}})

	// plant different content under the same id
	r.canonical[id] = []byte("different")

	assert.PanicsWithValue(t, "Unexpected hash collision for EnumType '"+id+"'", func() {
		r.identify("Beh", &EnumType{vals: []EnumVal{{1, "on"}}})
	})
}
