// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package selection_test

import (
	"testing"

	"carvel.dev/sclgen/pkg/files"
	"carvel.dev/sclgen/pkg/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatsAgree(t *testing.T) {
	expected := selection.Selection{
		"PhyHealth": {"stVal": {"Ok": {}, "Alarm": {}}},
		"PhyNam":    {},
	}

	inputs := map[string]string{
		"sel.json": `{
  "PhyHealth": {"stVal": {"Ok": {}, "Alarm": {},}}, // trailing comma
  "PhyNam": {}
}`,
		"sel.yaml": `
PhyHealth:
  stVal:
    Ok: {}
    Alarm: {}
PhyNam: {}
`,
		"sel.toml": `
[PhyHealth.stVal.Ok]
[PhyHealth.stVal.Alarm]
[PhyNam]
`,
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			sel, err := selection.Load(files.NewBytesSource(name, []byte(data)))
			require.NoError(t, err)
			assert.Equal(t, expected, sel)
		})
	}
}

func TestParseNullIsPresentWithoutSubtree(t *testing.T) {
	sel, err := selection.Parse([]byte(`{"Proxy": null}`), "sel.json")
	require.NoError(t, err)

	sub, found := sel.Get("Proxy")
	assert.True(t, found)
	assert.Nil(t, sub)
}

func TestParseRejectsScalars(t *testing.T) {
	_, err := selection.Parse([]byte(`{"PhyHealth": {"stVal": true}}`), "sel.json")
	require.EqualError(t, err, "Parsing selection 'sel.json': expected 'PhyHealth.stVal' to be a map, but was bool")

	_, err = selection.Parse([]byte(`{`), "sel.json")
	require.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	sel, err := selection.Parse([]byte(``), "sel.yml")
	require.NoError(t, err)
	assert.NotNil(t, sel)
	assert.True(t, sel.IsEmpty())
}

func TestKeysAreSorted(t *testing.T) {
	sel := selection.Selection{"b": {}, "c": {}, "a": {}}
	assert.Equal(t, []string{"a", "b", "c"}, sel.Keys())
}

func TestWithoutEmptyKeys(t *testing.T) {
	sel := selection.Selection{
		"":          {},
		"PhyHealth": {"": {}, "stVal": {"Ok": {}}},
		"Proxy":     nil,
	}

	cleaned := sel.WithoutEmptyKeys()

	assert.Equal(t, selection.Selection{
		"PhyHealth": {"stVal": {"Ok": {}}},
		"Proxy":     nil,
	}, cleaned)
	assert.True(t, sel.Has(""), "original must be left untouched")
}

func TestPaths(t *testing.T) {
	sel := selection.Selection{"b": {"x": {}}, "a": {}}
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"b", "x"}}, sel.Paths())
}
