package core

import "fmt"

// RenderLeaf renders a leaf block: a spec-prefixed title naming the key
// it was referenced under, a rule, a header line, then the per-key
// content rendering registered for (leaf, KeyID) if any (spec.md §4.6
// "Leaf").
func RenderLeaf(w *Writer, block *Block) {
	parentID := unsetSpecIdentifier()
	if block.Parent != nil {
		parentID = AccumulateSpecIdentifier(block.Parent)
	}
	formatter, specName := Lookup(parentID, KeyTypeLeaf, block.KeyID)
	title := formatter.Name
	if specName != "" {
		title = specName + " " + title
	}
	w.Plain(fmt.Sprintf("%s leaf at %#x", title, block.Offset+ConfigROMBase))
	w.Rule()
	renderDirectoryHeaderLine(w, block)

	if formatter.LeafRender != nil {
		formatter.LeafRender(w, block, specName)
		return
	}
	for i, q := range block.Content() {
		w.Quadlet(block.ContentOffset(i), q, "")
	}
}
