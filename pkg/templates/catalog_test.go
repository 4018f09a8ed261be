// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package templates_test

import (
	"carvel.dev/sclgen/pkg/catalog"
)

func lphdClass() *catalog.Node {
	return catalog.NewClass("LPHD",
		catalog.NewDataObject("PhyNam", "DPL",
			catalog.NewBasicAttribute("vendor", "DC", "VisString255"),
			catalog.NewBasicAttribute("hwRev", "DC", "VisString255"),
		),
		catalog.NewDataObject("PhyHealth", "ENS",
			catalog.NewEnumAttribute("stVal", "ST", "HealthKind",
				catalog.NewLiteral("Ok", 1),
				catalog.NewLiteral("Warning", 2),
				catalog.NewLiteral("Alarm", 3),
			).WithFlags(true, false, false),
			catalog.NewBasicAttribute("q", "ST", "Quality").WithFlags(false, false, true),
			catalog.NewBasicAttribute("t", "ST", "Timestamp"),
		),
		catalog.NewDataObject("Proxy", "SPS",
			catalog.NewBasicAttribute("stVal", "ST", "BOOLEAN").WithFlags(true, false, false),
			catalog.NewBasicAttribute("q", "ST", "Quality").WithFlags(false, false, true),
			catalog.NewBasicAttribute("t", "ST", "Timestamp"),
		),
		catalog.NewDataObject("InOv", "SPS",
			catalog.NewBasicAttribute("stVal", "ST", "BOOLEAN").WithFlags(true, false, false),
		).WithTransient(true),
	)
}

func behLiterals() []*catalog.Node {
	return []*catalog.Node{
		catalog.NewLiteral("on", 1),
		catalog.NewLiteral("blocked", 2),
		catalog.NewLiteral("test", 3),
		catalog.NewLiteral("test/blocked", 4),
		catalog.NewLiteral("off", 5),
	}
}

func analogueValue(name, fc string) *catalog.Node {
	return catalog.NewConstructedAttribute(name, fc, "AnalogueValue",
		catalog.NewBasicAttribute("i", "", "INT32"),
		catalog.NewBasicAttribute("f", "", "FLOAT32"),
	)
}

func cmv(name string) *catalog.Node {
	return catalog.NewSubDataObject(name, "CMV",
		catalog.NewConstructedAttribute("cVal", "MX", "Vector",
			analogueValue("mag", ""),
			analogueValue("ang", ""),
		).WithFlags(true, true, false),
		catalog.NewBasicAttribute("q", "MX", "Quality").WithFlags(false, false, true),
	)
}

// xtstClass exercises sub-objects, structs and attributes typed after
// their stVal or mxVal siblings.
func xtstClass() *catalog.Node {
	return catalog.NewClass("XTST",
		catalog.NewDataObject("Beh", "ENS",
			catalog.NewEnumAttribute("stVal", "ST", "Beh", behLiterals()...),
		),
		catalog.NewDataObject("Mod", "ENC",
			catalog.NewEnumAttribute("stVal", "ST", "Beh", behLiterals()...),
			catalog.NewConstructedAttribute("Oper", "CO", "Operate",
				catalog.NewUndefinedAttribute("ctlVal", "", catalog.TypeKindEnumerated, "Beh"),
				catalog.NewBasicAttribute("T", "", "Timestamp"),
				catalog.NewBasicAttribute("Test", "", "BOOLEAN"),
			),
		),
		catalog.NewDataObject("Pos", "DPC",
			catalog.NewEnumAttribute("stVal", "ST", "Dbpos",
				catalog.NewLiteral("intermediate-state", 0),
				catalog.NewLiteral("off", 1),
				catalog.NewLiteral("on", 2),
				catalog.NewLiteral("bad-state", 3),
			),
			catalog.NewConstructedAttribute("Oper", "CO", "Operate",
				catalog.NewUndefinedAttribute("ctlVal", "", catalog.TypeKindBasic, "BOOLEAN"),
				catalog.NewConstructedAttribute("origin", "", "Originator",
					catalog.NewEnumAttribute("orCat", "", "orCategory",
						catalog.NewLiteral("not-supported", 0),
						catalog.NewLiteral("bay-control", 1),
						catalog.NewLiteral("station-control", 2),
					),
					catalog.NewBasicAttribute("orIdent", "", "Octet64"),
				),
				catalog.NewBasicAttribute("T", "", "Timestamp"),
			),
		),
		catalog.NewDataObject("SetMag", "APC",
			analogueValue("mxVal", "MX").WithFlags(true, true, false),
			catalog.NewConstructedAttribute("Oper", "CO", "Operate",
				catalog.NewUndefinedAttribute("ctlVal", "", catalog.TypeKindConstructed, "AnalogueValue"),
				catalog.NewBasicAttribute("T", "", "Timestamp"),
			),
		),
		catalog.NewDataObject("PhV", "WYE",
			catalog.NewEnumAttribute("angRef", "CF", "PhaseAngleReference",
				catalog.NewLiteral("Va", 0),
				catalog.NewLiteral("Vb", 1),
			),
			cmv("phsA"),
			cmv("phsB"),
		),
		catalog.NewDataObject("Weird", "ENC",
			catalog.NewBasicAttribute("stVal", "ST", "INT32"),
			catalog.NewConstructedAttribute("Oper", "CO", "Operate",
				catalog.NewUndefinedAttribute("ctlVal", "", catalog.TypeKind("SOMETHING"), ""),
			),
		),
		catalog.NewDataObject("BasicMx", "APC",
			catalog.NewBasicAttribute("mxVal", "MX", "FLOAT32"),
			catalog.NewConstructedAttribute("Oper", "CO", "Operate",
				catalog.NewUndefinedAttribute("ctlVal", "", catalog.TypeKindConstructed, "AnalogueValue"),
			),
		),
		catalog.NewDataObject("BothVals", "APC",
			catalog.NewEnumAttribute("stVal", "ST", "Beh", behLiterals()...),
			analogueValue("mxVal", "MX"),
			catalog.NewConstructedAttribute("Oper", "CO", "Operate",
				catalog.NewUndefinedAttribute("ctlVal", "", catalog.TypeKindConstructed, "AnalogueValue"),
			),
		),
		catalog.NewDataObject("SelfMx", "APC",
			catalog.NewConstructedAttribute("mxVal", "MX", "Loop",
				catalog.NewUndefinedAttribute("v", "", catalog.TypeKindConstructed, "Loop"),
			),
		),
		catalog.NewDataObject("NoStVal", "ENC",
			catalog.NewConstructedAttribute("Oper", "CO", "Operate",
				catalog.NewUndefinedAttribute("ctlVal", "", catalog.TypeKindEnumerated, "Beh"),
			),
		),
	)
}

func testCatalog() *catalog.Catalog {
	return catalog.New(lphdClass(), xtstClass())
}
