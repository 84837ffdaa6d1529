package hybrid

import (
	"math/bits"
	"sort"

	"github.com/arzani/rquantile/transition"
)

// ChoiceSpec is one (state, choice) row handed to Builder.AddChoice. ActionRewards
// carries the action reward r_ta as the encoder assigned it to each outgoing
// transition before collapsing it to one per-choice constant; AddChoice
// projects ActionRewards down to that constant via ProjectActionReward and
// fails if the entries disagree.
type ChoiceSpec struct {
	State, Choice int
	ActionRewards []int
	Successors    []int
	Probs         []float64
	RTsa          []int
}

// Builder constructs a dd (and, at the transition.Store level, a pair of
// dds, one per matrix) from accumulated ChoiceSpecs via a trie-then-reduce
// construction: insert a leaf per (state, choice), build a binary trie over
// the bits of the combined state∥choice key, and merge identical subtrees
// through a construction-time node cache, yielding the "reduced" property of
// a reduced decision diagram.
type Builder struct {
	numStates     int
	maxChoiceIdx  int
	leaves        map[[2]int]*leafSpec // keyed by (state, choice)
}

type leafSpec struct {
	state, choice, rTa int
	block              *block
}

// NewBuilder allocates a Builder for a state space of the given size.
func NewBuilder(numStates int) *Builder {
	return &Builder{numStates: numStates, leaves: make(map[[2]int]*leafSpec)}
}

// AddChoice inserts one (state, choice) row, projecting ActionRewards down
// to a single constant r_ta via ProjectActionReward. Returns the projected
// r_ta so callers that track derived quantities (e.g. the reward window)
// don't need to project a second time.
func (b *Builder) AddChoice(spec ChoiceSpec) (int, error) {
	sum := 0.0
	for _, p := range spec.Probs {
		sum += p
	}
	if sum < 1-1e-9 || sum > 1+1e-9 {
		return 0, transition.ErrProbabilityMassInvalid
	}

	rTa, err := ProjectActionReward(spec.ActionRewards)
	if err != nil {
		return 0, err
	}

	if spec.Choice > b.maxChoiceIdx {
		b.maxChoiceIdx = spec.Choice
	}

	cols := make([]int, len(spec.Successors))
	copy(cols, spec.Successors)
	order := make([]int, len(cols))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return cols[order[i]] < cols[order[j]] })

	sortedCols := make([]int, len(cols))
	sortedProbs := make([]float64, len(cols))
	sortedRTsa := make([]int, len(cols))
	for i, o := range order {
		sortedCols[i] = cols[o]
		sortedProbs[i] = spec.Probs[o]
		sortedRTsa[i] = spec.RTsa[o]
	}

	// The combined key depends on the final choice width, so it is computed
	// in Build once every choice is known.
	b.leaves[[2]int{spec.State, spec.Choice}] = &leafSpec{
		state:  spec.State,
		choice: spec.Choice,
		rTa:    rTa,
		block:  buildBlock(sortedCols, sortedProbs, sortedRTsa),
	}

	return rTa, nil
}

// choiceBits returns the number of bits needed to encode choice indices
// 0..maxChoiceIdx.
func (b *Builder) choiceBits() int {
	if b.maxChoiceIdx == 0 {
		return 1
	}

	return bits.Len(uint(b.maxChoiceIdx))
}

// stateBits returns the number of bits needed to encode state indices
// 0..numStates-1.
func (b *Builder) stateBits() int {
	if b.numStates <= 1 {
		return 1
	}

	return bits.Len(uint(b.numStates - 1))
}

// combinedKey packs (state, choice) into a single integer with state bits
// above choice bits, so a pre-order arena walk visits states in order and,
// within a state, choices in order.
func (b *Builder) combinedKey(state, choice int) int {
	return state<<uint(b.choiceBits()) | choice
}

// Build finalizes the accumulated choices into a reduced decision diagram.
func (b *Builder) Build() *dd {
	keyBits := b.stateBits() + b.choiceBits()
	keys := make([]int, 0, len(b.leaves))
	byKey := make(map[int]*leafSpec, len(b.leaves))
	for _, leaf := range b.leaves {
		k := b.combinedKey(leaf.state, leaf.choice)
		byKey[k] = leaf
		keys = append(keys, k)
	}
	sort.Ints(keys)

	d := &dd{keyBits: keyBits}
	cache := make(map[[3]int]int)
	d.root = d.buildRange(keys, byKey, 0, 0, 1<<uint(keyBits), cache)

	return d
}

// buildRange recursively partitions the sorted keys slice (a contiguous
// window [lo, hi) of the full 2^keyBits key space) into the 0-branch and
// 1-branch at the current bit depth, returning the arena index of the node
// covering this window (or absentChild if no leaf falls in it).
func (d *dd) buildRange(keys []int, leaves map[int]*leafSpec, depth, lo, hi int, cache map[[3]int]int) int {
	if len(keys) == 0 {
		return absentChild
	}
	if depth == d.keyBits {
		// Exactly one key can remain at full depth.
		leaf := leaves[keys[0]]
		return d.addTerminal(leaf)
	}

	mid := lo + (hi-lo)/2
	split := sort.SearchInts(keys, mid)
	elsKeys, thenKeys := keys[:split], keys[split:]

	elsChild := d.buildRange(elsKeys, leaves, depth+1, lo, mid, cache)
	thenChild := d.buildRange(thenKeys, leaves, depth+1, mid, hi, cache)
	if elsChild == absentChild && thenChild == absentChild {
		return absentChild
	}

	cacheKey := [3]int{depth, elsChild, thenChild}
	if idx, ok := cache[cacheKey]; ok {
		return idx
	}
	idx := len(d.nodes)
	d.nodes = append(d.nodes, node{bit: depth, els_: elsChild, then: thenChild})
	cache[cacheKey] = idx

	return idx
}

// addTerminal appends a terminal node (and its block) to the arena.
func (d *dd) addTerminal(leaf *leafSpec) int {
	blockIdx := len(d.blocks)
	d.blocks = append(d.blocks, leaf.block)
	idx := len(d.nodes)
	d.nodes = append(d.nodes, node{
		terminal: true,
		state:    leaf.state,
		choice:   leaf.choice,
		rTa:      leaf.rTa,
		blockIdx: blockIdx,
	})

	return idx
}
