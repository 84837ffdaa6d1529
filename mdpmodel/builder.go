package mdpmodel

import (
	"fmt"
	"math"
	"sort"

	"github.com/arzani/rquantile/core"
	"github.com/arzani/rquantile/mdpvec"
	"github.com/arzani/rquantile/transition"
	"github.com/arzani/rquantile/transition/sparse"
)

// Builder assembles an MDP's states, choices and transitions on a
// core.Graph staging structure, then splits the result into T+ and T0
// transition stores plus the model vectors the quantile solver needs.
//
// Stage 1: AddState once per state, staging a vertex and recording reward,
// partition membership, x0 and x_inf in the Builder's own per-state maps.
// Stage 2: AddChoice/AddTransition per choice; AddChoice records the action
// reward in the Builder, AddTransition records the choice index and
// probability as Edge.Metadata.
// Stage 3: Build sizes the vectors from Vertices(), reads each state's edges
// via Neighbors(), regroups them by (state, choice), classifies each choice into T+
// or T0 (a choice is in T+ iff some reachable successor makes
// r_s(s) + r_ta + r_tsa > 0), and hands the grouped choices to two
// sparse.Builder instances.
type Builder struct {
	g *core.Graph

	stateReward map[int]int
	one         map[int]bool
	zero        map[int]bool
	x0          map[int]float64
	infinity    map[int]float64

	nextChoice map[int]int
	choiceRTa  map[choiceKey]int
}

type choiceKey struct {
	state  int
	choice int
}

// NewBuilder allocates an empty Builder. The underlying graph is directed,
// weighted (Edge.Weight carries r_tsa), allows self-loops (a transition may
// target its own state) and allows multi-edges (two choices from the same
// state may both target the same successor).
func NewBuilder() *Builder {
	return &Builder{
		g: core.NewGraph(core.WithDirected(true), core.WithWeighted(),
			core.WithLoops(), core.WithMultiEdges()),
		stateReward: make(map[int]int),
		one:         make(map[int]bool),
		zero:        make(map[int]bool),
		x0:          make(map[int]float64),
		infinity:    make(map[int]float64),
		nextChoice:  make(map[int]int),
		choiceRTa:   make(map[choiceKey]int),
	}
}

func stateID(s int) string { return fmt.Sprintf("s%d", s) }

// AddState registers state s with its reward r_s(s), partition membership,
// base probability x0(s) and infinity-reachability value x_inf(s).
// Returns ErrDuplicateState if s was already added.
func (b *Builder) AddState(s int, reward int, one, zero bool, x0, infinity float64) error {
	id := stateID(s)
	if b.g.HasVertex(id) {
		return fmt.Errorf("%w: %d", ErrDuplicateState, s)
	}
	if err := b.g.AddVertex(id); err != nil {
		return err
	}
	b.stateReward[s] = reward
	b.one[s] = one
	b.zero[s] = zero
	b.x0[s] = x0
	b.infinity[s] = infinity

	return nil
}

// AddChoice opens a new choice for state s with action reward r_ta, and
// returns its index (0-based, in the order choices are added for s).
// AddTransition calls for this choice must follow immediately.
func (b *Builder) AddChoice(s int, rTa int) (int, error) {
	if !b.g.HasVertex(stateID(s)) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownState, s)
	}
	c := b.nextChoice[s]
	b.nextChoice[s] = c + 1
	b.choiceRTa[choiceKey{state: s, choice: c}] = rTa

	return c, nil
}

// AddTransition appends one outgoing transition of choice c at state s to
// successor, with probability prob and per-transition reward r_tsa.
func (b *Builder) AddTransition(s, c, successor int, prob float64, rTsa int) error {
	if !b.g.HasVertex(stateID(s)) {
		return fmt.Errorf("%w: %d", ErrUnknownState, s)
	}
	if !b.g.HasVertex(stateID(successor)) {
		return fmt.Errorf("%w: %d", ErrUnknownState, successor)
	}
	if c < 0 || c >= b.nextChoice[s] {
		return fmt.Errorf("%w: state %d choice %d", ErrNoChoice, s, c)
	}

	eid, err := b.g.AddEdge(stateID(s), stateID(successor), int64(rTsa))
	if err != nil {
		return err
	}
	// core.Graph has no AddEdge variant taking metadata inline, so attach it
	// to the edge just created via its returned ID.
	e, err := b.g.GetEdge(eid)
	if err != nil {
		return err
	}
	e.Metadata = map[string]interface{}{
		"choice": c,
		"prob":   prob,
	}

	return nil
}

// Build finalizes the staged graph into model vectors and two transition
// stores (T+, T0), ready for quantile.Solve.
func (b *Builder) Build() (mdpvec.ModelVectors, transition.Store, transition.Store, error) {
	ids := b.g.Vertices()
	n := len(ids)

	x0, err := mdpvec.NewDense(n)
	if err != nil {
		return mdpvec.ModelVectors{}, nil, nil, err
	}
	stateRewards, err := mdpvec.NewDense(n)
	if err != nil {
		return mdpvec.ModelVectors{}, nil, nil, err
	}
	maxReward, err := mdpvec.NewDense(n)
	if err != nil {
		return mdpvec.ModelVectors{}, nil, nil, err
	}
	infinity, err := mdpvec.NewDense(n)
	if err != nil {
		return mdpvec.ModelVectors{}, nil, nil, err
	}
	one := mdpvec.NewBitset(n)
	zero := mdpvec.NewBitset(n)

	for s := 0; s < n; s++ {
		_ = x0.Set(s, b.x0[s])
		_ = stateRewards.Set(s, float64(b.stateReward[s]))
		_ = infinity.Set(s, b.infinity[s])
		if b.one[s] {
			one.Set(s)
		}
		if b.zero[s] {
			zero.Set(s)
		}
	}

	plusBuilder := sparse.NewBuilder(n)
	zeroBuilder := sparse.NewBuilder(n)

	for s := 0; s < n; s++ {
		numChoices := b.nextChoice[s]
		for c := 0; c < numChoices; c++ {
			rTa := b.choiceRTa[choiceKey{state: s, choice: c}]
			trs, err := b.choiceTransitions(s, c)
			if err != nil {
				return mdpvec.ModelVectors{}, nil, nil, err
			}

			positive := false
			maxTotal := 0
			for _, tr := range trs {
				total := b.stateReward[s] + rTa + tr.RTsa
				if total > maxTotal {
					maxTotal = total
				}
				if total > 0 {
					positive = true
				}
			}
			if maxTotal > int(maxReward.At(s)) {
				_ = maxReward.Set(s, float64(maxTotal))
			}

			if positive {
				if err := plusBuilder.AddChoice(s, rTa, trs); err != nil {
					return mdpvec.ModelVectors{}, nil, nil, err
				}
			} else {
				if err := zeroBuilder.AddChoice(s, 0, trs); err != nil {
					return mdpvec.ModelVectors{}, nil, nil, err
				}
			}
		}
	}

	tPlus, err := plusBuilder.Build()
	if err != nil {
		return mdpvec.ModelVectors{}, nil, nil, err
	}
	tZero, err := zeroBuilder.Build()
	if err != nil {
		return mdpvec.ModelVectors{}, nil, nil, err
	}

	model := mdpvec.ModelVectors{
		X0:           x0,
		StateRewards: stateRewards,
		MaxReward:    maxReward,
		Infinity:     infinity,
		One:          one,
		Zero:         zero,
	}

	return model, tPlus, tZero, nil
}

// choiceTransitions collects and validates the transitions recorded under
// (s, c), sorted by successor for determinism.
func (b *Builder) choiceTransitions(s, c int) ([]transition.Transition, error) {
	edges, err := b.g.Neighbors(stateID(s))
	if err != nil {
		return nil, err
	}

	var trs []transition.Transition
	mass := 0.0
	for _, e := range edges {
		if e.From != stateID(s) || e.Metadata == nil {
			continue
		}
		if e.Metadata["choice"].(int) != c {
			continue
		}
		successor := vertexIndex(e.To)
		prob := e.Metadata["prob"].(float64)
		trs = append(trs, transition.Transition{
			Successor: successor,
			Prob:      prob,
			RTsa:      int(e.Weight),
		})
		mass += prob
	}

	sort.Slice(trs, func(i, j int) bool { return trs[i].Successor < trs[j].Successor })

	if len(trs) > 0 && math.Abs(mass-1.0) > 1e-9 {
		return nil, fmt.Errorf("%w: state %d choice %d sums to %g", ErrBadProbabilityMass, s, c, mass)
	}

	return trs, nil
}

// vertexIndex parses the "s<N>" convention back into N.
func vertexIndex(id string) int {
	n := 0
	for i := 1; i < len(id); i++ {
		n = n*10 + int(id[i]-'0')
	}

	return n
}
