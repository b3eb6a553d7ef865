package core

import "fmt"

// avcCommandSets names the AV/C-family command-set values carried in a
// DEPENDENT_INFO (0x14) immediate entry of a unit governed by one of the
// 0x00a02d-prefixed specs (spec.md §6).
var avcCommandSets = map[uint32]string{
	0x00: "AV/C General",
	0x01: "AV/C Tape Recorder/Player",
	0x02: "AV/C Printer",
	0x03: "AV/C Disc Recorder/Player",
	0x04: "AV/C Tuner",
	0x05: "AV/C Camera",
	0x07: "AV/C Vendor Unique",
	0x0a: "AV/C Panel",
}

func renderAVCCommandSet(value uint32) string {
	if name, ok := avcCommandSets[value]; ok {
		return name
	}
	return fmt.Sprintf("command set 0x%06x", value)
}

// iidcDeviceTypes names the IIDC/DCAM device-type field of a
// DEPENDENT_INFO entry.
var iidcDeviceTypes = map[uint32]string{
	0x00: "camera",
	0x01: "unit directory only",
}

func renderIIDCDeviceType(value uint32) string {
	if name, ok := iidcDeviceTypes[value]; ok {
		return name
	}
	return fmt.Sprintf("device type 0x%06x", value)
}

func init() {
	avcEntries := map[formatterKey]*KeyFormatter{
		{KeyTypeImmediate, KeyIDDependentInfo}: {
			Name:            "command set",
			ImmediateRender: renderAVCCommandSet,
		},
		{KeyTypeDirectory, KeyIDUnit}: {Name: "unit"},
	}
	registerSpec(0x00a02d, 0x010001, "AV/C", avcEntries)
	registerSpec(0x00a02d, 0x010002, "CAL", avcEntries)
	registerSpec(0x00a02d, 0x010004, "EHS", avcEntries)
	registerSpec(0x00a02d, 0x010008, "HAVi", avcEntries)
	registerSpec(0x00a02d, 0x014000, "Vendor Unique", avcEntries)
	registerSpec(0x00a02d, 0x014001, "Vendor Unique and AV/C", avcEntries)

	iidcEntries := map[formatterKey]*KeyFormatter{
		{KeyTypeImmediate, KeyIDDependentInfo}: {
			Name:            "device type",
			ImmediateRender: renderIIDCDeviceType,
		},
		{KeyTypeDirectory, KeyIDUnit}: {Name: "unit"},
	}
	registerSpec(0x00a02d, 0x000100, "IIDC 1.04", iidcEntries)
	registerSpec(0x00a02d, 0x000101, "IIDC 1.20", iidcEntries)
	registerSpec(0x00a02d, 0x000102, "IIDC 1.30", iidcEntries)
	registerSpec(0x00a02d, 0x000110, "IIDC2", iidcEntries)

	profileEntries := map[formatterKey]*KeyFormatter{
		{KeyTypeImmediate, KeyIDDependentInfo}: {Name: "profile"},
		{KeyTypeDirectory, KeyIDUnit}:          {Name: "unit"},
	}
	registerSpec(0x00a02d, 0x0a6be2, "DPP 1.0", profileEntries)
	registerSpec(0x00a02d, 0x4b661f, "IICP 1.0", profileEntries)
}
