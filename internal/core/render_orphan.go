package core

// RenderOrphan renders an orphan block: every quadlet raw, suffixed to
// mark it as data unreachable from any directory (spec.md §4.6
// "Orphan").
func RenderOrphan(w *Writer, block *Block) {
	w.Plain("Orphan data")
	w.Rule()
	for i, q := range block.Content() {
		w.Quadlet(block.ContentOffset(i), q, "(unreferenced data)")
	}
}
