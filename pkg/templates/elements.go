// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"strconv"

	"carvel.dev/sclgen/pkg/sclxml"
)

func (t *EnumType) Element() *sclxml.Element {
	var vals []*sclxml.Element
	for _, val := range t.vals {
		vals = append(vals, sclxml.NewTextElement("EnumVal", sclxml.Attrs(sclxml.Required("ord", strconv.Itoa(val.Ord))), val.Name))
	}
	return sclxml.NewElement(KindEnumType.Tag(), sclxml.Attrs(sclxml.Required("id", t.id)), vals...)
}

func (t *DAType) Element() *sclxml.Element {
	var bdas []*sclxml.Element
	for _, bda := range t.bdas {
		bdas = append(bdas, sclxml.NewElement("BDA", sclxml.Attrs(
			sclxml.Required("name", bda.Name),
			sclxml.Required("bType", bda.BType),
			sclxml.Optional("type", bda.Type),
		)))
	}
	return sclxml.NewElement(KindDAType.Tag(), sclxml.Attrs(sclxml.Required("id", t.id)), bdas...)
}

func (t *DOType) Element() *sclxml.Element {
	var members []*sclxml.Element
	for _, sdo := range t.sdos {
		members = append(members, sclxml.NewElement("SDO", sclxml.Attrs(
			sclxml.Required("name", sdo.Name),
			sclxml.Required("type", sdo.Type),
			sclxml.Flag("transient", sdo.Transient),
		)))
	}
	for _, da := range t.das {
		members = append(members, sclxml.NewElement("DA", sclxml.Attrs(
			sclxml.Required("name", da.Name),
			sclxml.Optional("fc", da.FC),
			sclxml.Flag("dchg", da.DChg),
			sclxml.Flag("dupd", da.DUpd),
			sclxml.Flag("qchg", da.QChg),
			sclxml.Required("bType", da.BType),
			sclxml.Optional("type", da.Type),
		)))
	}
	return sclxml.NewElement(KindDOType.Tag(), sclxml.Attrs(sclxml.Required("id", t.id), sclxml.Optional("cdc", t.cdc)), members...)
}

func (t *LNodeType) Element() *sclxml.Element {
	var dos []*sclxml.Element
	for _, do := range t.dos {
		dos = append(dos, sclxml.NewElement("DO", sclxml.Attrs(
			sclxml.Required("name", do.Name),
			sclxml.Required("type", do.Type),
			sclxml.Flag("transient", do.Transient),
		)))
	}
	return sclxml.NewElement(KindLNodeType.Tag(), sclxml.Attrs(sclxml.Required("id", t.id), sclxml.Required("lnClass", t.lnClass)), dos...)
}
