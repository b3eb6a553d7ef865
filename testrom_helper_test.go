package configrom_test

// romBuilder assembles a Configuration ROM image quadlet by quadlet for
// use by the end-to-end scenario and property tests (spec.md §8).
type romBuilder struct {
	quads []uint32
}

// put appends a quadlet and returns its quadlet index.
func (b *romBuilder) put(q uint32) int {
	idx := len(b.quads)
	b.quads = append(b.quads, q)
	return idx
}

// bytes renders the accumulated quadlets as a big-endian byte buffer,
// the host-order wire format spec.md §4.1 normalizes toward.
func (b *romBuilder) bytes() []byte {
	out := make([]byte, len(b.quads)*4)
	for i, q := range b.quads {
		out[4*i] = byte(q >> 24)
		out[4*i+1] = byte(q >> 16)
		out[4*i+2] = byte(q >> 8)
		out[4*i+3] = byte(q)
	}
	return out
}

// reverseQuadletBytes byte-reverses every quadlet of buf in place,
// simulating the big-endian-on-the-wire encoding spec.md §4.1 detects
// and undoes.
func reverseQuadletBytes(buf []byte) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)
	for off := 0; off+4 <= len(out); off += 4 {
		out[off], out[off+1], out[off+2], out[off+3] =
			out[off+3], out[off+2], out[off+1], out[off]
	}
	return out
}

func dirEntryQuadlet(keyType, keyID uint8, value uint32) uint32 {
	return uint32(keyType)<<30 | uint32(keyID)<<24 | (value & 0x00FFFFFF)
}

const (
	entryImmediate = 0
	entryCSROffset = 1
	entryLeaf      = 2
	entryDirectory = 3
)
