package core

import "fmt"

// csrRegisterBase is the IEEE 1212 CSR address space base a csr-offset
// directory entry's value is relative to (spec.md §4.5).
const csrRegisterBase = 0xFFFFF0000000

// RenderRootDirectory renders the root directory block: title, rule,
// then each entry dispatched through the key-formatter registry
// (spec.md §4.6 "Root directory").
func RenderRootDirectory(w *Writer, block *Block) {
	w.Plain("Root Directory")
	w.Rule()
	renderDirectoryHeaderLine(w, block)
	renderDirectoryEntries(w, block, AccumulateSpecIdentifier(block))
}

// RenderDirectory renders a non-root directory block: a title carrying
// the resolved name of the key under which it was referenced, then its
// own entries, accumulating the spec identifier from this block's own
// parent chain (spec.md §4.6 "Directory").
func RenderDirectory(w *Writer, block *Block) {
	parentID := unsetSpecIdentifier()
	if block.Parent != nil {
		parentID = AccumulateSpecIdentifier(block.Parent)
	}
	formatter, specName := Lookup(parentID, KeyTypeDirectory, block.KeyID)
	title := formatter.Name
	if specName != "" {
		title = specName + " " + title
	}
	w.Plain(fmt.Sprintf("%s directory at %#x", title, block.Offset+ConfigROMBase))
	w.Rule()
	renderDirectoryHeaderLine(w, block)

	id := AccumulateSpecIdentifier(block)
	renderDirectoryEntries(w, block, id)

	if formatter.DirectoryRender != nil {
		formatter.DirectoryRender(w, block, id)
	}
}

func renderDirectoryHeaderLine(w *Writer, block *Block) {
	header := uint32(block.DeclaredQuadlets)<<16 | uint32(block.CRCDeclared)
	crcQuads, _, _ := block.CRCQuadlets()
	computed := CRC16(crcQuads)

	text := fmt.Sprintf("length %d, crc %d", block.DeclaredQuadlets, block.CRCDeclared)
	if block.Truncated() {
		text += fmt.Sprintf(" (actual length %d)", block.ActualQuadlets())
	}
	if computed != block.CRCDeclared {
		text += fmt.Sprintf(" (should be %d)", computed)
	}
	w.Quadlet(block.Offset, header, text)
}

// renderDirectoryEntries renders every entry of a directory block's
// content via the key-formatter registry, per spec.md §4.5.
func renderDirectoryEntries(w *Writer, block *Block, id SpecIdentifier) {
	for i, q := range block.Content() {
		entry := DecodeEntry(q)
		offset := block.ContentOffset(i)

		formatter, specName := Lookup(id, entry.KeyType, entry.KeyID)
		name := formatter.Name
		if specName != "" {
			name = specName + " " + name
		}

		switch entry.KeyType {
		case KeyTypeImmediate:
			var value string
			if formatter.ImmediateRender != nil {
				value = formatter.ImmediateRender(entry.Value)
			} else {
				value = fmt.Sprintf("%#06x", entry.Value)
			}
			w.Quadlet(offset, q, fmt.Sprintf("%s: %s", name, value))

		case KeyTypeCSROffset:
			addr := csrRegisterBase + 4*uint64(entry.Value)
			w.Quadlet(offset, q, fmt.Sprintf("--> %s at %#x", name, addr))

		case KeyTypeLeaf:
			blockOffset := offset + 4*int(entry.Value)
			w.Quadlet(offset, q, fmt.Sprintf("--> %s leaf at %#x", name, blockOffset+ConfigROMBase))

		case KeyTypeDirectory:
			blockOffset := offset + 4*int(entry.Value)
			w.Quadlet(offset, q, fmt.Sprintf("--> %s directory at %#x", name, blockOffset+ConfigROMBase))
		}
	}
}
