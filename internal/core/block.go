// Package core implements the structural analyzer and semantic formatter
// for IEEE 1212 / IEEE 1394 Configuration ROM images: block discovery,
// normalization, CRC-16 validation, and the key-formatter registry used to
// render each directory entry and leaf.
package core

// Kind tags the five block variants a Configuration ROM can contain.
type Kind uint8

const (
	KindBusInfo Kind = iota
	KindRootDirectory
	KindDirectory
	KindLeaf
	KindOrphan
)

func (k Kind) String() string {
	switch k {
	case KindBusInfo:
		return "bus-info"
	case KindRootDirectory:
		return "root directory"
	case KindDirectory:
		return "directory"
	case KindLeaf:
		return "leaf"
	case KindOrphan:
		return "orphan"
	default:
		return "unknown"
	}
}

// Block is one structural unit of a Configuration ROM. Offset and Length
// are byte values into the original buffer. Length is the only field
// normalization ever mutates (it may shorten it to resolve an overlap with
// the next block); every other field is fixed at discovery time.
//
// Quadlets holds the block's content (the header quadlet is excluded) at
// its full declared length, independent of any later clamping of Length,
// so CRC validation and content rendering always see what the header
// actually claimed. Orphan blocks have no header and Quadlets holds their
// raw content instead.
type Block struct {
	Kind   Kind
	Offset int
	Length int

	// DeclaredQuadlets is the content length, in quadlets, taken from the
	// block's header (bus-info/root-directory/directory/leaf only).
	DeclaredQuadlets int

	// Quadlets is the block's content, decoded big-endian, excluding the
	// header quadlet for non-orphan blocks.
	Quadlets []uint32

	// CRCDeclared is the CRC-16 value recorded in the header.
	CRCDeclared uint16

	// BusInfoCRCQuadlets is the crc_length field of a bus-info header: the
	// number of quadlets the CRC covers, which may exceed the number
	// actually present in the buffer.
	BusInfoCRCQuadlets int

	// KeyID is the key id of the directory entry that first referenced
	// this block. Unused for bus-info, root-directory, and orphan blocks.
	KeyID uint8

	// Parent is the enclosing directory that first discovered this block,
	// nil for bus-info, root-directory, and orphan blocks.
	Parent *Block
}

// ActualQuadlets is the number of content quadlets actually available after
// normalization may have shortened Length.
func (b *Block) ActualQuadlets() int {
	if b.Kind == KindOrphan {
		return b.Length / 4
	}
	n := (b.Length - 4) / 4
	if n < 0 {
		return 0
	}
	return n
}

// Truncated reports whether normalization shortened this block relative to
// its declared length.
func (b *Block) Truncated() bool {
	return b.Kind != KindOrphan && b.ActualQuadlets() != b.DeclaredQuadlets
}

// CRCQuadlets returns the quadlets the CRC covers, bounded by what is
// actually present, and whether that count fell short of the declared
// coverage.
func (b *Block) CRCQuadlets() (quadlets []uint32, declared int, truncated bool) {
	if b.Kind == KindBusInfo {
		declared = b.BusInfoCRCQuadlets
	} else {
		declared = b.DeclaredQuadlets
	}
	n := declared
	if n > len(b.Quadlets) {
		n = len(b.Quadlets)
		truncated = true
	}
	return b.Quadlets[:n], declared, truncated
}

// Content returns the block's quadlets clamped to ActualQuadlets: the
// portion normalization left this block owning after resolving an overlap
// with its successor. CRC validation still runs over the full declared
// Quadlets via CRCQuadlets, since the CRC covers what the header claimed,
// not what survived clamping.
func (b *Block) Content() []uint32 {
	n := b.ActualQuadlets()
	if n > len(b.Quadlets) {
		n = len(b.Quadlets)
	}
	return b.Quadlets[:n]
}

// ContentOffset returns the absolute byte offset of the i'th content
// quadlet: past the header quadlet for every variant except orphan,
// which has no header.
func (b *Block) ContentOffset(i int) int {
	if b.Kind == KindOrphan {
		return b.Offset + 4*i
	}
	return b.Offset + 4 + 4*i
}
