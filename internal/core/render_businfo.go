package core

import (
	"fmt"

	"github.com/scigolib/configrom/internal/utils"
)

// busNames is the small lookup table of spec.md §4.6 bus-info rendering:
// recognized bus-name quadlet values.
var busNames = map[uint32]string{
	utils.BusNameQuadlet: "1394",
}

// RenderBusInfo renders the bus-info block: title, rule, header line,
// bus-name, bus-dependent capability bits, company-id, device-id/EUI-64,
// and any trailing raw quadlets, per spec.md §4.6.
func RenderBusInfo(w *Writer, block *Block) {
	w.Plain("Bus Info Block")
	w.Rule()

	header := busInfoHeaderQuadlet(block)
	crcQuads, declaredCRCLen, crcTruncated := block.CRCQuadlets()
	computed := CRC16(crcQuads)

	headerText := fmt.Sprintf("bus_info_length %d, crc_length %d, crc %d", block.DeclaredQuadlets, block.BusInfoCRCQuadlets, block.CRCDeclared)
	if crcTruncated {
		headerText += fmt.Sprintf(" (up to %d)", declaredCRCLen)
	}
	if computed != block.CRCDeclared {
		headerText += fmt.Sprintf(" (should be %d)", computed)
	}
	w.Quadlet(block.Offset, header, headerText)

	quads := block.Content()
	if len(quads) == 0 {
		return
	}

	busName, ok := busNames[quads[0]]
	if !ok {
		busName = "unspecified"
	}
	w.Quadlet(block.ContentOffset(0), quads[0], fmt.Sprintf("bus_name %q", busName))

	if len(quads) < 2 {
		return
	}
	renderCapabilityBits(w, block, quads[1])

	if len(quads) < 4 {
		for i := 2; i < len(quads); i++ {
			w.Quadlet(block.ContentOffset(i), quads[i], "(unreferenced data)")
		}
		return
	}

	companyID, deviceID, eui64 := decodeEUI64(quads[2], quads[3])
	w.Quadlet(block.ContentOffset(2), quads[2], fmt.Sprintf("company_id %06x", companyID))
	w.Quadlet(block.ContentOffset(3), quads[3], fmt.Sprintf("device_id %010x, EUI-64 %016x", deviceID, eui64))

	for i := 4; i < len(quads); i++ {
		w.Quadlet(block.ContentOffset(i), quads[i], "(unreferenced data)")
	}
}

func busInfoHeaderQuadlet(block *Block) uint32 {
	return uint32(block.DeclaredQuadlets)<<24 | uint32(block.BusInfoCRCQuadlets)<<16 | uint32(block.CRCDeclared)
}

// renderCapabilityBits decodes the bus-dependent capability quadlet of
// spec.md §4.6: when generation (bits 7..4) is non-zero, both the base
// capability set and the generation-2 extensions (pm_capable, max_rom)
// are decoded; otherwise only the base set is shown.
func renderCapabilityBits(w *Writer, block *Block, q uint32) {
	irmCapable := q&(1<<31) != 0
	cmCapable := q&(1<<30) != 0
	isCapable := q&(1<<29) != 0
	bmCapable := q&(1<<28) != 0
	cycClkAcc := (q >> 16) & 0xFF
	maxRec := (q >> 12) & 0xF
	generation := (q >> 4) & 0xF
	spd := q & 0x7

	line1 := fmt.Sprintf("irm_capable %v, cm_capable %v, is_capable %v, bm_capable %v", irmCapable, cmCapable, isCapable, bmCapable)
	if generation != 0 {
		pmCapable := q&(1<<27) != 0
		line1 += fmt.Sprintf(", pm_capable %v", pmCapable)
	}
	w.Quadlet(block.ContentOffset(1), q, line1)

	line2 := fmt.Sprintf("cyc_clk_acc %d, max_rec %d (2^(%d+1))", cycClkAcc, maxRec, maxRec)
	if generation != 0 {
		maxRom := (q >> 8) & 0x3
		line2 += fmt.Sprintf(", max_rom %d", maxRom)
	}
	line2 += fmt.Sprintf(", generation %d, spd %d (S(2^%d)00)", generation, spd, spd)
	w.Cont(line2)
}
