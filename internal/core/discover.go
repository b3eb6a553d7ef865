package core

import "errors"

// Structural failures abort the render entirely (spec.md §4.7); unlike the
// annotational conditions handled inside the renderers, these propagate to
// the caller.
var (
	// ErrBufferTooShort is returned when a block's declared length would
	// extend past the end of the input buffer.
	ErrBufferTooShort = errors.New("declared length exceeds buffer")

	// ErrOutOfSpace is returned when a directory entry's computed block
	// offset falls at or beyond the end of the input buffer.
	ErrOutOfSpace = errors.New("referenced block offset exceeds buffer")
)

// Set is the offset-keyed collection of blocks discovered in a
// Configuration ROM. Order is populated by Discover in block-order and by
// Normalize in final tiled order; it is the authoritative rendering order.
type Set struct {
	Order  []*Block
	byOff  map[int]*Block
}

func newSet() *Set {
	return &Set{byOff: make(map[int]*Block)}
}

func (s *Set) has(offset int) bool {
	_, ok := s.byOff[offset]
	return ok
}

func (s *Set) add(b *Block) {
	s.byOff[b.Offset] = b
	s.Order = append(s.Order, b)
}

// Discover walks buf from the bus-info block through the root directory
// and every reachable leaf and directory, per spec.md §4.2. buf must
// already be in normalized (host/big-endian-consistent) byte order; see
// internal/utils.NormalizeEndian.
func Discover(buf []byte) (*Set, error) {
	length := len(buf)
	if length < 4 {
		return nil, ErrBufferTooShort
	}

	set := newSet()

	busInfo, err := readBusInfo(buf, length)
	if err != nil {
		return nil, err
	}
	set.add(busInfo)

	root, err := readDirectoryHeader(buf, length, busInfo.Offset+busInfo.Length, KindRootDirectory, 0, nil)
	if err != nil {
		return nil, err
	}
	set.add(root)

	if err := discoverDirectory(buf, length, root, set); err != nil {
		return nil, err
	}

	return set, nil
}

func readBusInfo(buf []byte, length int) (*Block, error) {
	if 4 > length {
		return nil, ErrBufferTooShort
	}
	header := readQuadlet(buf, 0)
	declared := int((header >> 24) & 0xFF)
	blockLen := 4 + 4*declared
	if blockLen > length {
		return nil, ErrBufferTooShort
	}
	return &Block{
		Kind:               KindBusInfo,
		Offset:             0,
		Length:             blockLen,
		DeclaredQuadlets:   declared,
		Quadlets:           readQuadlets(buf, 4, declared),
		CRCDeclared:        uint16(header & 0xFFFF),
		BusInfoCRCQuadlets: int((header >> 16) & 0xFF),
	}, nil
}

// readDirectoryHeader reads the common root-directory/directory/leaf
// header (a declared length in the high half-word, a CRC-16 in the low
// half-word) at offset and materializes the corresponding block.
func readDirectoryHeader(buf []byte, length, offset int, kind Kind, keyID uint8, parent *Block) (*Block, error) {
	if offset+4 > length {
		return nil, ErrBufferTooShort
	}
	header := readQuadlet(buf, offset)
	declared := int((header >> 16) & 0xFFFF)
	blockLen := 4 + 4*declared
	if offset+blockLen > length {
		return nil, ErrBufferTooShort
	}
	return &Block{
		Kind:             kind,
		Offset:           offset,
		Length:           blockLen,
		DeclaredQuadlets: declared,
		Quadlets:         readQuadlets(buf, offset+4, declared),
		CRCDeclared:      uint16(header & 0xFFFF),
		KeyID:            keyID,
		Parent:           parent,
	}, nil
}

// discoverDirectory recursively follows every entry of dir whose key type
// is leaf or directory, materializing a block for each (idempotently: a
// block already in set is not revisited), and recurses into freshly
// discovered directories.
func discoverDirectory(buf []byte, length int, dir *Block, set *Set) error {
	for i, q := range dir.Quadlets {
		entry := DecodeEntry(q)
		if entry.KeyType != KeyTypeLeaf && entry.KeyType != KeyTypeDirectory {
			continue
		}

		entryOffset := dir.Offset + 4 + 4*i
		blockOffset := entryOffset + 4*int(entry.Value)
		if blockOffset < 0 || blockOffset >= length {
			return ErrOutOfSpace
		}
		if set.has(blockOffset) {
			continue
		}

		kind := KindLeaf
		if entry.KeyType == KeyTypeDirectory {
			kind = KindDirectory
		}

		block, err := readDirectoryHeader(buf, length, blockOffset, kind, entry.KeyID, dir)
		if err != nil {
			return err
		}
		set.add(block)

		if kind == KindDirectory {
			if err := discoverDirectory(buf, length, block, set); err != nil {
				return err
			}
		}
	}
	return nil
}
