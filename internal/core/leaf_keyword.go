package core

import (
	"fmt"
	"strings"
)

// renderKeywordLeaf renders the keyword leaf of spec.md §4.6: each
// quadlet holds up to four NUL-separated keyword characters; the
// renderer splits each quadlet's bytes on NUL on its own and emits one
// quoted, space-separated list per quadlet.
func renderKeywordLeaf(w *Writer, block *Block, specName string) {
	for i, q := range block.Content() {
		bytes := []byte{byte(q >> 24), byte(q >> 16), byte(q >> 8), byte(q)}
		words := splitKeywords(bytes)

		var quoted []string
		for _, word := range words {
			quoted = append(quoted, fmt.Sprintf("%q", word))
		}
		w.Quadlet(block.ContentOffset(i), q, strings.Join(quoted, " "))
	}
}

// splitKeywords splits a quadlet's raw bytes on NUL, dropping empty
// trailing fragments produced by padding.
func splitKeywords(b []byte) []string {
	var words []string
	start := 0
	for i, c := range b {
		if c == 0 {
			if i > start {
				words = append(words, string(b[start:i]))
			}
			start = i + 1
		}
	}
	if start < len(b) {
		words = append(words, string(b[start:]))
	}
	return words
}
