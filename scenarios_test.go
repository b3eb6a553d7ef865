package configrom_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	configrom "github.com/scigolib/configrom"
)

// buildMinimalBusInfoAndRoot builds the E1 scenario of spec.md §8: the
// bus-info block of the worked example followed by a trivial empty root
// directory so Discover has something to land on.
func buildMinimalBusInfoAndRoot() []byte {
	var b romBuilder
	b.put(0x04046f71) // bus_info_length 4, crc_length 4, crc 28529 (correct CRC16 of the following 4 quadlets)
	b.put(0x31333934) // "1394"
	b.put(0x0064dc00) // capability bits
	b.put(0x0800278b) // company_id quadlet
	b.put(0x00000001) // device_id quadlet
	b.put(0x00000000) // root directory header, declared length 0
	return b.bytes()
}

func TestE1_MinimalBusInfo(t *testing.T) {
	buf := buildMinimalBusInfoAndRoot()
	var out bytes.Buffer

	err := configrom.Render(buf, &out)

	require.NoError(t, err)
	text := out.String()
	require.Contains(t, text, "bus_info_length 4, crc_length 4, crc 28529")
	require.NotContains(t, text, "(should be")
	require.Contains(t, text, `bus_name "1394"`)
	require.Contains(t, text, "EUI-64 0800278b00000001")
}

func TestE2_EndianSwapMatchesE1(t *testing.T) {
	buf := buildMinimalBusInfoAndRoot()
	reversed := reverseQuadletBytes(buf)

	var out1, out2 bytes.Buffer
	require.NoError(t, configrom.Render(buf, &out1))
	require.NoError(t, configrom.Render(reversed, &out2))

	require.Equal(t, out1.String(), out2.String())
}

func TestE3_BadCRCAnnotated(t *testing.T) {
	buf := buildMinimalBusInfoAndRoot()
	// Corrupt the bus-info CRC field (low 16 bits of quadlet 0) by +1.
	crc := uint16(buf[2])<<8 | uint16(buf[3])
	crc++
	buf[2] = byte(crc >> 8)
	buf[3] = byte(crc)

	var out bytes.Buffer
	err := configrom.Render(buf, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "(should be")
}

func TestE4_OverlappingLeafTruncated(t *testing.T) {
	var b romBuilder
	b.put(0x00000000)                                 // bus-info, declared length 0
	b.put(0x00020000)                                 // root directory, 2 entries
	b.put(dirEntryQuadlet(entryLeaf, 0x01, 2))        // entry0 -> leaf1 at quad index 4
	b.put(dirEntryQuadlet(entryLeaf, 0x01, 3))        // entry1 -> leaf2 at quad index 6
	b.put(0x00030000)                                 // leaf1 header, declared length 3
	b.put(0xAAAAAAAA)                                 // leaf1 content[0]
	b.put(0x00000000)                                 // leaf2 header, declared length 0 (also leaf1 content[1])
	b.put(0xBBBBBBBB)                                 // leaf1 content[2] (beyond leaf2, becomes orphan)
	buf := b.bytes()

	var out bytes.Buffer
	err := configrom.Render(buf, &out)
	require.NoError(t, err)
	text := out.String()
	require.Contains(t, text, "(actual length 1)")

	// leaf1 is clamped to one content quadlet (offset 0x414); it must not
	// also re-render leaf2's header quadlet (offset 0x418, owned by
	// leaf2's own block) or the trailing orphan quadlet (offset 0x41c,
	// owned by the synthesized orphan block). Each byte belongs to
	// exactly one block after normalization.
	require.Equal(t, 1, strings.Count(text, "418  00000000"), "leaf2's header quadlet must render exactly once, got:\n%s", text)
	require.Equal(t, 1, strings.Count(text, "41c  bbbbbbbb"), "the orphan quadlet must render exactly once, got:\n%s", text)
}

func TestE5_TrailingOrphanBytes(t *testing.T) {
	var b romBuilder
	b.put(0x00000000) // bus-info, declared length 0
	b.put(0x00000000) // root directory, declared length 0
	b.put(0x11111111) // trailing unreferenced quadlet
	b.put(0x22222222) // trailing unreferenced quadlet
	buf := b.bytes()

	var out bytes.Buffer
	err := configrom.Render(buf, &out)
	require.NoError(t, err)

	text := out.String()
	count := 0
	for _, line := range bytes.Split([]byte(text), []byte("\n")) {
		if bytes.Contains(line, []byte("(unreferenced data)")) {
			count++
		}
	}
	require.Equal(t, 2, count)
}

func TestE6_SBP2UnitDirectory(t *testing.T) {
	var b romBuilder
	b.put(0x00000000)                                      // bus-info, declared length 0
	b.put(0x00010000)                                      // root directory, 1 entry
	b.put(dirEntryQuadlet(entryDirectory, 0x11, 1))        // entry0 -> unit directory at quad index 3
	b.put(0x00030000)                                      // unit directory header, declared length 3
	b.put(dirEntryQuadlet(entryImmediate, 0x12, 0x00609e)) // SPECIFIER_ID
	b.put(dirEntryQuadlet(entryImmediate, 0x13, 0x010483)) // VERSION
	b.put(dirEntryQuadlet(entryImmediate, 0x14, 0x000000)) // LOGICAL_UNIT_NUMBER
	buf := b.bytes()

	var out bytes.Buffer
	err := configrom.Render(buf, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "SBP-2 logical unit number: ordered 0, type Disk,")
}
