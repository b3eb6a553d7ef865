package core

import "fmt"

// renderUnitLocationLeaf renders the four-quadlet unit-location leaf of
// spec.md §4.6: base_address spans quadlets 0:1 and upper_bound spans
// quadlets 2:3, each a 64-bit value. Any quadlet beyond the first four,
// or an unpaired trailing quadlet, is rendered raw.
func renderUnitLocationLeaf(w *Writer, block *Block, specName string) {
	quads := block.Content()
	pairs := len(quads)
	if pairs > 4 {
		pairs = 4
	}
	pairs -= pairs % 2

	for i := 0; i < pairs; i += 2 {
		value := (uint64(quads[i]) << 32) | uint64(quads[i+1])
		label := "base_address"
		if i == 2 {
			label = "upper_bound"
		}
		w.Quadlet(block.ContentOffset(i), quads[i], fmt.Sprintf("%s %#016x (high)", label, value))
		w.Quadlet(block.ContentOffset(i+1), quads[i+1], fmt.Sprintf("%s %#016x (low)", label, value))
	}
	for i := pairs; i < len(quads); i++ {
		w.Quadlet(block.ContentOffset(i), quads[i], "(unreferenced data)")
	}
}
