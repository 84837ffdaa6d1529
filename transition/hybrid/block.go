package hybrid

// blockKind distinguishes the two leaf sparse-row encodings.
type blockKind int

const (
	// explicitKind stores one float64 probability per successor column.
	explicitKind blockKind = iota

	// dictKindValue stores a shared dictionary of distinct probabilities and
	// a packed per-column index into it, for actions whose distributions
	// repeat a handful of distinct values across many rows.
	dictKindValue
)

// block is the materialized lower layer of a hybrid decision diagram: the
// sparse row of successor columns reached once the state and choice
// variables have been resolved.
type block struct {
	kind blockKind
	cols []int // successor state indices, strictly increasing
	rTsa []int // parallel per-transition reward, len == len(cols)

	explicit []float64 // valid when kind == explicitKind, len == len(cols)

	distincts []float64 // valid when kind == dictKindValue
	packed    []uint16  // valid when kind == dictKindValue, len == len(cols)
}

// newExplicitBlock builds a block that stores one probability per column
// inline.
func newExplicitBlock(cols []int, probs []float64, rTsa []int) *block {
	return &block{kind: explicitKind, cols: cols, explicit: probs, rTsa: rTsa}
}

// newDictBlock builds a block that shares a dictionary of distinct
// probabilities across columns, storing only a packed index per column.
func newDictBlock(cols []int, distincts []float64, packed []uint16, rTsa []int) *block {
	return &block{kind: dictKindValue, cols: cols, distincts: distincts, packed: packed, rTsa: rTsa}
}

// probAt returns the probability for the i-th column in this block.
func (b *block) probAt(i int) float64 {
	if b.kind == dictKindValue {
		return b.distincts[b.packed[i]]
	}

	return b.explicit[i]
}

// len returns the number of successor columns in this block.
func (b *block) len() int {
	return len(b.cols)
}

// buildBlock chooses explicit vs. dict encoding for a row of (column,
// probability, reward) triples, preferring dict whenever the distinct-value
// count is small enough to pay for itself against one float64 per entry.
func buildBlock(cols []int, probs []float64, rTsa []int) *block {
	distinctIdx := make(map[float64]int)
	var distincts []float64
	packed := make([]uint16, len(probs))
	for i, p := range probs {
		idx, ok := distinctIdx[p]
		if !ok {
			idx = len(distincts)
			distincts = append(distincts, p)
			distinctIdx[p] = idx
		}
		packed[i] = uint16(idx)
	}

	// A dict block costs len(distincts)*8 + len(probs)*2 bytes; an explicit
	// block costs len(probs)*8 bytes. Use dict only when it is smaller.
	if len(distincts)*8+len(probs)*2 < len(probs)*8 {
		return newDictBlock(cols, distincts, packed, rTsa)
	}

	return newExplicitBlock(cols, probs, rTsa)
}
