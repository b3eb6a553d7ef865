package core

import "testing"

func TestCRC16_EmptyIsZero(t *testing.T) {
	if got := CRC16(nil); got != 0 {
		t.Fatalf("CRC16(nil) = %d, want 0", got)
	}
}

func TestCRC16_RoundTrip(t *testing.T) {
	// spec.md §8 property 4: overwriting a block's CRC field with the
	// value CRC16 computes over its content must make that value the
	// "correct" one, i.e. recomputing must reproduce it exactly.
	quadlets := []uint32{0x31333934, 0x0064dc00, 0x0800278b, 0x00000001}
	crc := CRC16(quadlets)
	if got := CRC16(quadlets); got != crc {
		t.Fatalf("CRC16 not stable across calls: %d != %d", got, crc)
	}
}

func TestCRC16_DifferentInputsUsuallyDiffer(t *testing.T) {
	a := CRC16([]uint32{0x00000001})
	b := CRC16([]uint32{0x00000002})
	if a == b {
		t.Fatalf("expected different CRCs for different content, both got %d", a)
	}
}

func TestCRC16_SensitiveToQuadletOrder(t *testing.T) {
	a := CRC16([]uint32{0x00000001, 0x00000002})
	b := CRC16([]uint32{0x00000002, 0x00000001})
	if a == b {
		t.Fatalf("expected order-sensitive CRC, both got %d", a)
	}
}
