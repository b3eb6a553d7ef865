package utils

import "encoding/binary"

// BusNameQuadlet is the value a native-order load of the bus-name quadlet
// (byte offset 4) produces when the buffer was captured without undoing a
// prior native 32-bit copy of the big-endian wire stream: the ASCII literal
// "1394" read back reversed relative to its natural left-to-right order.
const BusNameQuadlet = 0x31333934

// NormalizeEndian inspects the quadlet at byte offset 4 in native order. If
// it reads as BusNameQuadlet, every quadlet in buf is byte-reversed in
// place and NormalizeEndian reports true. Any other value leaves buf
// untouched; an unrecognized bus name is not itself an error here, only a
// signal that no swap is needed. buf must be at least 8 bytes for the
// check to run; shorter buffers are left untouched. A trailing partial
// quadlet (len(buf) not a multiple of 4) is left alone.
func NormalizeEndian(buf []byte) bool {
	if len(buf) < 8 {
		return false
	}
	if binary.NativeEndian.Uint32(buf[4:8]) != BusNameQuadlet {
		return false
	}
	for off := 0; off+4 <= len(buf); off += 4 {
		reverseQuadlet(buf[off : off+4])
	}
	return true
}

func reverseQuadlet(b []byte) {
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
}
