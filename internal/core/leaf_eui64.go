package core

import "fmt"

// renderEUI64Leaf renders the two-quadlet EUI-64 leaf of spec.md §4.6:
// company_id is the top 24 bits of the first quadlet, device_id is the
// low 8 bits of the first quadlet concatenated with all of the second,
// and the full EUI-64 is their 64-bit concatenation.
func renderEUI64Leaf(w *Writer, block *Block, specName string) {
	quads := block.Content()
	if len(quads) < 2 {
		for i, q := range quads {
			w.Quadlet(block.ContentOffset(i), q, "(truncated EUI-64)")
		}
		return
	}

	companyID, deviceID, eui64 := decodeEUI64(quads[0], quads[1])

	w.Quadlet(block.ContentOffset(0), quads[0], fmt.Sprintf("company_id %06x", companyID))
	w.Quadlet(block.ContentOffset(1), quads[1], fmt.Sprintf("device_id %010x, EUI-64 %016x", deviceID, eui64))

	for i := 2; i < len(quads); i++ {
		w.Quadlet(block.ContentOffset(i), quads[i], "(unreferenced data)")
	}
}

// decodeEUI64 combines a company-id/device-id quadlet pair into the
// company id (top 24 bits of q0), the device id (low 8 bits of q0
// concatenated with all of q1), and the full 64-bit EUI-64, per
// spec.md §4.6 "EUI-64 leaf".
func decodeEUI64(q0, q1 uint32) (companyID uint32, deviceID uint64, eui64 uint64) {
	companyID = q0 >> 8
	deviceID = (uint64(q0&0xFF) << 32) | uint64(q1)
	eui64 = (uint64(companyID) << 40) | deviceID
	return companyID, deviceID, eui64
}
