// Package configrom renders IEEE 1212 / IEEE 1394 Configuration ROM
// images (raw binary dumps, up to 1024 bytes) into a human-readable,
// annotated textual rendering, identifying every structural block and
// decoding each directory entry according to its key-type/key-id
// semantics (spec.md §1).
package configrom

import (
	"io"

	"github.com/scigolib/configrom/internal/core"
	"github.com/scigolib/configrom/internal/utils"
)

// Render runs the full pipeline of spec.md §2 over buf and writes the
// resulting text lines to w: endian detection and in-place normalization,
// block discovery, block normalization, and per-block formatting. buf is
// mutated in place by the endian-detection step if it is found to be
// big-endian, matching the source tool's behavior.
//
// Render returns a non-nil error only for the structural failures of
// spec.md §4.7 (a declared length past the buffer end, or an
// out-of-range directory entry) and for the first write error from w;
// every other anomaly (CRC mismatch, unknown spec, unknown key id,
// truncated block) is rendered inline and never turns into an error.
func Render(buf []byte, w io.Writer) error {
	utils.NormalizeEndian(buf)

	set, err := core.Discover(buf)
	if err != nil {
		return utils.WrapError("discovering configuration ROM blocks", err)
	}
	core.Normalize(buf, set)

	out := core.NewWriter(w)
	for i, block := range set.Order {
		if i > 0 {
			out.Blank()
		}
		core.RenderBlock(out, block)
	}
	return out.Err()
}
