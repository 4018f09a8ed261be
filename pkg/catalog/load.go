// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"carvel.dev/sclgen/pkg/filepos"
	"carvel.dev/sclgen/pkg/files"
	"carvel.dev/sclgen/pkg/orderedmap"
	"carvel.dev/sclgen/pkg/version"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	envelopeFormatVersionKey  = "formatVersion"
	envelopeMinimumVersionKey = "minimumSclgenVersion"
	envelopeClassesKey        = "classes"
)

var kindsByTagName = map[string]Kind{
	"LNClass":          KindClass,
	"DataObject":       KindDataObject,
	"SubDataObject":    KindSubDataObject,
	"DataAttribute":    KindDataAttribute,
	"SubDataAttribute": KindDataAttribute,
	"Literal":          KindLiteral,
}

// Load reads and parses a catalog from src.
func Load(src files.Source) (*Catalog, error) {
	data, err := src.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading catalog %s: %s", src.Description(), err)
	}
	return Parse(data, src.Name())
}

// Parse decodes a catalog document. YAML files (by extension) are decoded
// as is; everything else is treated as JSON that may contain comments and
// trailing commas. Decoding goes through yaml.Node so that key order is
// kept.
func Parse(data []byte, fileName string) (*Catalog, error) {
	if !isYAMLFile(fileName) {
		data = jsonc.ToJSON(data)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Parsing catalog '%s': %s", fileName, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("Parsing catalog '%s': expected a single document", fileName)
	}

	p := parser{file: fileName}
	root := doc.Content[0]

	cat := New()
	classesNode, err := p.unwrapEnvelope(root, cat)
	if err != nil {
		return nil, err
	}

	err = p.iterateMapping(classesNode, func(key, value *yaml.Node) error {
		class, err := p.node(key.Value, value, KindClass)
		if err != nil {
			return err
		}
		cat.classes.Set(class.Name, class)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func isYAMLFile(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return ext == ".yml" || ext == ".yaml"
}

type parser struct {
	file string
}

// unwrapEnvelope returns the mapping holding the classes. A bare catalog is
// its own class mapping; an envelope carries a formatVersion next to it.
func (p parser) unwrapEnvelope(root *yaml.Node, cat *Catalog) (*yaml.Node, error) {
	if root.Kind != yaml.MappingNode {
		return nil, p.errorf(root, "expected catalog to be a map of node classes, but was %s", kindName(root))
	}

	formatVersion, hasFormat := p.lookup(root, envelopeFormatVersionKey)
	if !hasFormat {
		return root, nil
	}
	if err := version.CheckCatalogFormat(formatVersion.Value); err != nil {
		return nil, p.errorf(formatVersion, "%s", err)
	}
	cat.FormatVersion = formatVersion.Value

	if minimum, found := p.lookup(root, envelopeMinimumVersionKey); found {
		if err := version.RequireAtLeast(minimum.Value); err != nil {
			return nil, p.errorf(minimum, "%s", err)
		}
	}

	classes, found := p.lookup(root, envelopeClassesKey)
	if !found {
		return nil, p.errorf(root, "expected catalog envelope to contain '%s'", envelopeClassesKey)
	}
	return classes, nil
}

func (p parser) node(name string, n *yaml.Node, defaultKind Kind) (*Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, p.errorf(n, "expected catalog entry '%s' to be a map, but was %s", name, kindName(n))
	}

	result := &Node{
		Name:     name,
		Kind:     defaultKind,
		Children: orderedmap.NewMap[*Node](),
		Position: p.position(n),
	}
	var tagName string

	err := p.iterateMapping(n, func(key, value *yaml.Node) error {
		var err error
		switch key.Value {
		case "tagName":
			tagName, err = p.scalar(key, value)
		case "type":
			result.Type, err = p.scalar(key, value)
		case "typeKind":
			var kind string
			kind, err = p.scalar(key, value)
			result.TypeKind = normalizeTypeKind(kind)
		case "fc":
			result.FC, err = p.scalar(key, value)
		case "dchg":
			result.DChg, err = p.flag(key, value)
		case "dupd":
			result.DUpd, err = p.flag(key, value)
		case "qchg":
			result.QChg, err = p.flag(key, value)
		case "transient":
			result.Transient, err = p.flag(key, value)
		case "literalVal":
			result.Ordinal, err = p.ordinal(key, value)
			result.HasOrdinal = err == nil
		case "underlyingTypeKind":
			var kind string
			kind, err = p.scalar(key, value)
			result.UnderlyingTypeKind = normalizeTypeKind(kind)
		case "underlyingType":
			result.UnderlyingType, err = p.scalar(key, value)
		case "children":
			err = p.children(result, value)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if kind, known := kindsByTagName[tagName]; known {
		result.Kind = kind
	} else if result.HasOrdinal {
		result.Kind = KindLiteral
	}
	return result, nil
}

func (p parser) children(parent *Node, n *yaml.Node) error {
	if isNull(n) {
		return nil
	}
	return p.iterateMapping(n, func(key, value *yaml.Node) error {
		child, err := p.node(key.Value, value, KindDataAttribute)
		if err != nil {
			return err
		}
		parent.Children.Set(child.Name, child)
		return nil
	})
}

func (p parser) iterateMapping(n *yaml.Node, iterFunc func(key, value *yaml.Node) error) error {
	if n.Kind != yaml.MappingNode {
		return p.errorf(n, "expected a map, but was %s", kindName(n))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := iterFunc(n.Content[i], n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) lookup(n *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1], true
		}
	}
	return nil, false
}

func (p parser) scalar(key, value *yaml.Node) (string, error) {
	if isNull(value) {
		return "", nil
	}
	if value.Kind != yaml.ScalarNode {
		return "", p.errorf(value, "expected '%s' to be a string, but was %s", key.Value, kindName(value))
	}
	return value.Value, nil
}

func (p parser) flag(key, value *yaml.Node) (bool, error) {
	str, err := p.scalar(key, value)
	if err != nil || str == "" {
		return false, err
	}
	result, err := strconv.ParseBool(str)
	if err != nil {
		return false, p.errorf(value, "expected '%s' to be a boolean, but was '%s'", key.Value, str)
	}
	return result, nil
}

func (p parser) ordinal(key, value *yaml.Node) (int, error) {
	str, err := p.scalar(key, value)
	if err != nil {
		return 0, err
	}
	result, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, p.errorf(value, "expected '%s' to be an integer, but was '%s'", key.Value, str)
	}
	return result, nil
}

func (p parser) position(n *yaml.Node) *filepos.Position {
	if n.Line <= 0 {
		return filepos.NewUnknownPositionInFile(p.file)
	}
	return filepos.NewPositionInFile(n.Line, p.file).WithColumn(n.Column)
}

func (p parser) errorf(n *yaml.Node, format string, args ...interface{}) error {
	return &LoadError{Position: p.position(n), Message: fmt.Sprintf(format, args...)}
}

// normalizeTypeKind folds the spellings used by different catalog
// generators; unknown values are kept verbatim.
func normalizeTypeKind(kind string) TypeKind {
	switch strings.ToUpper(kind) {
	case "UNDEFINED":
		return TypeKindUndefined
	case "BASIC", "ENUMERATED", "CONSTRUCTED":
		return TypeKind(strings.ToUpper(kind))
	default:
		return TypeKind(kind)
	}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "map"
	case yaml.SequenceNode:
		return "array"
	case yaml.ScalarNode:
		if isNull(n) {
			return "null"
		}
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

// LoadError points at the catalog line that could not be understood.
type LoadError struct {
	Position *filepos.Position
	Message  string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Parsing catalog at %s: %s", e.Position.AsCompactString(), e.Message)
}
