package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderDescriptorLeaf_MinimalASCII(t *testing.T) {
	block := &Block{
		Kind:             KindLeaf,
		Offset:           0,
		Length:           16,
		DeclaredQuadlets: 3,
		Quadlets: []uint32{
			0x00000000, // width 0, character_set 0 -> minimal ASCII, language 0
			0x48656c6c, // "Hell"
			0x6f000000, // "o"
		},
	}

	var out bytes.Buffer
	w := NewWriter(&out)
	renderDescriptorLeaf(w, block, "")

	text := out.String()
	if !strings.Contains(text, "minimal ASCII") {
		t.Errorf("missing minimal ASCII header, got:\n%s", text)
	}
	if !strings.Contains(text, "Hell") || !strings.Contains(text, "o") {
		t.Errorf("missing decoded text, got:\n%s", text)
	}
}

func TestRenderDescriptorLeaf_NonZeroCharacterSet(t *testing.T) {
	block := &Block{
		Kind:             KindLeaf,
		Offset:           0,
		Length:           8,
		DeclaredQuadlets: 1,
		Quadlets:         []uint32{0x00010000}, // character_set = 1
	}

	var out bytes.Buffer
	w := NewWriter(&out)
	renderDescriptorLeaf(w, block, "")

	if strings.Contains(out.String(), "minimal ASCII") {
		t.Errorf("non-zero character_set must not render as minimal ASCII, got:\n%s", out.String())
	}
}

func TestDecodeQuadletChars_StopsAtNUL(t *testing.T) {
	got := string(decodeQuadletChars(0x41420000))
	if got != "AB" {
		t.Errorf("decodeQuadletChars = %q, want %q", got, "AB")
	}
}

func TestDecodeQuadletChars_Empty(t *testing.T) {
	got := decodeQuadletChars(0)
	if len(got) != 0 {
		t.Errorf("expected empty decode for all-NUL quadlet, got %q", got)
	}
}

func TestRenderEUI64Leaf_DecodesCompanyAndDevice(t *testing.T) {
	block := &Block{
		Kind:             KindLeaf,
		Offset:           0,
		Length:           12,
		DeclaredQuadlets: 2,
		Quadlets:         []uint32{0x0800278b, 0x00000001},
	}

	var out bytes.Buffer
	w := NewWriter(&out)
	renderEUI64Leaf(w, block, "")

	text := out.String()
	if !strings.Contains(text, "company_id 080027") {
		t.Errorf("missing company_id, got:\n%s", text)
	}
	if !strings.Contains(text, "EUI-64 0800278b00000001") {
		t.Errorf("missing EUI-64, got:\n%s", text)
	}
}

func TestRenderKeywordLeaf_SplitsOnNUL(t *testing.T) {
	block := &Block{
		Kind:             KindLeaf,
		Offset:           0,
		Length:           8,
		DeclaredQuadlets: 1,
		Quadlets:         []uint32{0x41420043}, // "AB\0C"
	}

	var out bytes.Buffer
	w := NewWriter(&out)
	renderKeywordLeaf(w, block, "")

	text := out.String()
	if !strings.Contains(text, `"AB"`) || !strings.Contains(text, `"C"`) {
		t.Errorf("expected quoted keyword list, got:\n%s", text)
	}
}

func TestRenderUnitLocationLeaf_DecodesBaseAndUpperBound(t *testing.T) {
	block := &Block{
		Kind:             KindLeaf,
		Offset:           0,
		Length:           20,
		DeclaredQuadlets: 4,
		Quadlets: []uint32{
			0x00000001, 0x00000002, // base_address
			0x00000003, 0x00000004, // upper_bound
		},
	}

	var out bytes.Buffer
	w := NewWriter(&out)
	renderUnitLocationLeaf(w, block, "")

	text := out.String()
	if !strings.Contains(text, "base_address") || !strings.Contains(text, "upper_bound") {
		t.Errorf("missing base/upper_bound labels, got:\n%s", text)
	}
}

func TestRenderUnitLocationLeaf_TrailingQuadletUnreferenced(t *testing.T) {
	block := &Block{
		Kind:             KindLeaf,
		Offset:           0,
		Length:           24,
		DeclaredQuadlets: 5,
		Quadlets: []uint32{
			0x00000001, 0x00000002,
			0x00000003, 0x00000004,
			0x00000005, // odd trailing quadlet
		},
	}

	var out bytes.Buffer
	w := NewWriter(&out)
	renderUnitLocationLeaf(w, block, "")

	if !strings.Contains(out.String(), "(unreferenced data)") {
		t.Errorf("expected unreferenced data annotation, got:\n%s", out.String())
	}
}
