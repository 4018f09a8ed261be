// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos_test

import (
	"testing"

	"carvel.dev/sclgen/pkg/filepos"
	"github.com/stretchr/testify/assert"
)

func TestPositionAsCompactString(t *testing.T) {
	assert.Equal(t, "tree.json:12", filepos.NewPositionInFile(12, "tree.json").AsCompactString())
	assert.Equal(t, "tree.json:12:7", filepos.NewPositionInFile(12, "tree.json").WithColumn(7).AsCompactString())
	assert.Equal(t, "3", filepos.NewPosition(3).AsCompactString())
	assert.Equal(t, "tree.json:?", filepos.NewUnknownPositionInFile("tree.json").AsCompactString())
	assert.Equal(t, "?", filepos.NewUnknownPosition().AsCompactString())
	assert.Equal(t, "line tree.json:1", filepos.NewPositionInFile(1, "tree.json").AsString())
}

func TestPositionWithColumnDoesNotModifyOriginal(t *testing.T) {
	pos := filepos.NewPositionInFile(4, "a.yml")
	_ = pos.WithColumn(9)

	assert.Equal(t, 0, pos.Column())
}

func TestNilPosition(t *testing.T) {
	var pos *filepos.Position

	assert.False(t, pos.IsKnown())
	assert.Equal(t, "?", pos.AsCompactString())
	assert.Nil(t, pos.DeepCopy())
	assert.Panics(t, func() { filepos.NewPosition(0) })
}
