package core

// Normalize performs the two sequential passes of spec.md §4.3 over a
// freshly discovered Set: clamping each block's Length so it never
// overlaps its successor, then synthesizing orphan blocks from buf to
// cover any gaps, leaving blocks tiling [0, len(buf)) in strictly
// ascending offset order. Discover's insertion order is replaced by
// offset order as a side effect; callers must use set.Order after
// calling Normalize, not before.
func Normalize(buf []byte, set *Set) {
	length := len(buf)
	sortByOffset(set.Order)

	for i, b := range set.Order {
		next := length
		if i+1 < len(set.Order) {
			next = set.Order[i+1].Offset
		}
		if b.Offset+b.Length > next {
			b.Length = next - b.Offset
		}
	}

	filled := make([]*Block, 0, len(set.Order)+1)
	for i, b := range set.Order {
		filled = append(filled, b)
		next := length
		if i+1 < len(set.Order) {
			next = set.Order[i+1].Offset
		}
		end := b.Offset + b.Length
		if end < next {
			filled = append(filled, &Block{
				Kind:     KindOrphan,
				Offset:   end,
				Length:   next - end,
				Quadlets: readOrphanQuadlets(buf, end, next-end),
			})
		}
	}

	set.Order = filled
}

// readOrphanQuadlets decodes n bytes starting at offset as whole
// quadlets, ignoring any trailing partial quadlet (orphan gaps are
// always a whole number of quadlets in practice since every other block
// is quadlet-aligned, but this guards against a malformed tail).
func readOrphanQuadlets(buf []byte, offset, n int) []uint32 {
	count := n / 4
	out := make([]uint32, count)
	for i := 0; i < count; i++ {
		out[i] = readQuadlet(buf, offset+4*i)
	}
	return out
}

// sortByOffset is a stable insertion sort over the (typically tiny,
// tens-of-entries) block sequence, matching the insertion-ordered
// discovery predicate of spec.md §4.2 step 4: each block is placed after
// the last existing entry whose offset is ≤ its own.
func sortByOffset(blocks []*Block) {
	for i := 1; i < len(blocks); i++ {
		b := blocks[i]
		j := i - 1
		for j >= 0 && blocks[j].Offset > b.Offset {
			blocks[j+1] = blocks[j]
			j--
		}
		blocks[j+1] = b
	}
}
