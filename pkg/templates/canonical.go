// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"encoding/hex"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// Number of hash bytes kept in identifiers.
const hashSize = 8

// canonicalEncMode sorts map keys, so descriptions built from maps keyed by
// member name encode identically regardless of member order.
var canonicalEncMode cbor.EncMode

func init() {
	var err error
	canonicalEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("templates: CBOR encoder initialization failed: " + err.Error())
	}
}

// CanonicalBytes is the serialization a definition's identifier is derived
// from. It ignores the identifier itself.
func CanonicalBytes(d Definition) []byte {
	desc := d.description()
	desc["tag"] = d.Kind().Tag()

	bs, err := canonicalEncMode.Marshal(desc)
	if err != nil {
		panic("templates: Encoding canonical description: " + err.Error())
	}
	return bs
}

// ContentHash is a 16 hex digit digest of CanonicalBytes.
func ContentHash(d Definition) string { return hashCanonical(CanonicalBytes(d)) }

func hashCanonical(canonical []byte) string {
	sum := blake3.Sum256(canonical)
	return hex.EncodeToString(sum[:hashSize])
}

func (t *EnumType) description() map[string]interface{} {
	// Vals are already sorted by ordinal; pairs keep duplicate ordinals apart.
	vals := []interface{}{}
	for _, val := range t.vals {
		vals = append(vals, []interface{}{val.Ord, val.Name})
	}
	return map[string]interface{}{"vals": vals}
}

func (t *DAType) description() map[string]interface{} {
	bdas := map[string]interface{}{}
	for _, bda := range t.bdas {
		bdas[bda.Name] = withoutEmpty(map[string]interface{}{
			"bType": bda.BType,
			"type":  bda.Type,
		})
	}
	return map[string]interface{}{"bdas": bdas}
}

func (t *DOType) description() map[string]interface{} {
	sdos := map[string]interface{}{}
	for _, sdo := range t.sdos {
		sdos[sdo.Name] = withoutEmpty(map[string]interface{}{
			"type":      sdo.Type,
			"transient": sdo.Transient,
		})
	}
	das := map[string]interface{}{}
	for _, da := range t.das {
		das[da.Name] = withoutEmpty(map[string]interface{}{
			"fc":    da.FC,
			"bType": da.BType,
			"type":  da.Type,
			"dchg":  da.DChg,
			"dupd":  da.DUpd,
			"qchg":  da.QChg,
		})
	}
	return map[string]interface{}{
		"cdc":  t.cdc,
		"sdos": sdos,
		"das":  das,
	}
}

func (t *LNodeType) description() map[string]interface{} {
	dos := map[string]interface{}{}
	for _, do := range t.dos {
		dos[do.Name] = withoutEmpty(map[string]interface{}{
			"type":      do.Type,
			"transient": do.Transient,
		})
	}
	return map[string]interface{}{
		"lnClass": t.lnClass,
		"dos":     dos,
	}
}

// withoutEmpty drops unset values so that absent and default attributes
// describe the same.
func withoutEmpty(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		switch typed := v.(type) {
		case string:
			if typed == "" {
				delete(m, k)
			}
		case bool:
			if !typed {
				delete(m, k)
			}
		}
	}
	return m
}
