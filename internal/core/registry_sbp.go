package core

import "fmt"

// SBP-2 / AV-over-SBP-3 dependent-info key, spec.md §6 worked example E6.
const keyIDLogicalUnitNumber = KeyIDDependentInfo

// sbpDeviceTypeNames maps the SCSI-derived device type field of an SBP-2
// LOGICAL_UNIT_NUMBER entry to its display name.
var sbpDeviceTypeNames = map[uint32]string{
	0x00: "Disk",
	0x01: "Tape",
	0x03: "Processor",
	0x04: "WORM",
	0x05: "CD-ROM",
	0x07: "Optical",
	0x08: "Medium Changer",
	0x0c: "Storage Array",
	0x0e: "Simplified Direct-Access",
	0x1f: "Unknown",
}

// renderSBPLogicalUnitNumber decodes the SBP-2 LOGICAL_UNIT_NUMBER
// immediate value: an ordered-access flag (bit 14), a 6-bit device type
// (bits 21..16), and a 14-bit LUN (bits 13..0), per spec.md §8 E6.
func renderSBPLogicalUnitNumber(value uint32) string {
	ordered := (value >> 14) & 0x1
	deviceType := (value >> 16) & 0x3F
	lun := value & 0x3FFF

	name, ok := sbpDeviceTypeNames[deviceType]
	if !ok {
		name = fmt.Sprintf("type 0x%02x", deviceType)
	}
	return fmt.Sprintf("ordered %d, type %s, lun %d", ordered, name, lun)
}

func init() {
	sbpUnitEntries := map[formatterKey]*KeyFormatter{
		{KeyTypeImmediate, keyIDLogicalUnitNumber}: {
			Name:            "logical unit number",
			ImmediateRender: renderSBPLogicalUnitNumber,
		},
		{KeyTypeDirectory, KeyIDUnit}: {Name: "unit"},
	}
	registerSpec(0x00609e, 0x010483, "SBP-2", sbpUnitEntries)
	registerSpec(0x00609e, 0x0105bb, "AV/C over SBP-3", sbpUnitEntries)
}
