// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"carvel.dev/sclgen/pkg/files"
	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a selection from src.
func Load(src files.Source) (Selection, error) {
	data, err := src.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading selection %s: %s", src.Description(), err)
	}
	return Parse(data, src.Name())
}

// Parse decodes a selection document, picking the format by extension:
// .toml, .yml/.yaml, anything else is JSON (comments allowed).
func Parse(data []byte, fileName string) (Selection, error) {
	var raw map[string]interface{}
	var err error

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		_, err = toml.Decode(string(data), &raw)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(jsonc.ToJSON(data), &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("Parsing selection '%s': %s", fileName, err)
	}

	result, err := fromRaw(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("Parsing selection '%s': %s", fileName, err)
	}
	if result == nil {
		result = Selection{}
	}
	return result, nil
}

func fromRaw(raw map[string]interface{}, path []string) (Selection, error) {
	if raw == nil {
		return nil, nil
	}
	result := make(Selection, len(raw))
	for k, v := range raw {
		childPath := append(append([]string{}, path...), k)
		switch typedV := v.(type) {
		case nil:
			result[k] = nil
		case map[string]interface{}:
			child, err := fromRaw(typedV, childPath)
			if err != nil {
				return nil, err
			}
			if child == nil {
				child = Selection{}
			}
			result[k] = child
		default:
			return nil, fmt.Errorf("expected '%s' to be a map, but was %T", strings.Join(childPath, "."), v)
		}
	}
	return result, nil
}
