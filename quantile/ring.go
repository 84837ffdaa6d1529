package quantile

import "github.com/arzani/rquantile/mdpvec"

// Ring is the rolling window of W+1 dense vectors indexed by cumulative
// reward level. It holds levels max(0, i-W) .. i for the current outer
// iteration i, addressed modulo W+1, and is owned by the driver for the
// duration of one Solve call.
type Ring struct {
	slots []*mdpvec.Dense // len W+1
	zero  *mdpvec.Dense   // shared zero vector, returned for ℓ < 0
	w     int
	i     int // current logical index; -1 before StoreLevelZero
}

// NewRing allocates a Ring over n states with window w.
func NewRing(n, w int) (*Ring, error) {
	slots := make([]*mdpvec.Dense, w+1)
	for k := range slots {
		v, err := mdpvec.NewDense(n)
		if err != nil {
			return nil, err
		}
		slots[k] = v
	}
	zero, err := mdpvec.NewDense(n)
	if err != nil {
		return nil, err
	}

	return &Ring{slots: slots, zero: zero, w: w, i: -1}, nil
}

// StoreLevelZero copies v into slot 0 and sets the logical index to 0.
func (r *Ring) StoreLevelZero(v *mdpvec.Dense) error {
	if err := r.slots[0].CopyFrom(v); err != nil {
		return err
	}
	r.i = 0

	return nil
}

// Advance increments the logical index and returns a mutable handle to the
// slot for the new level. The slot's previous contents (level i-(W+1)) are
// no longer reachable and may be freely overwritten by the caller.
func (r *Ring) Advance() *mdpvec.Dense {
	r.i++

	return r.slots[r.i%(r.w+1)]
}

// Get returns the vector at level ℓ. For ℓ < 0 it returns the shared zero
// vector (a convention, not a real lookup, since no state can have
// negative cumulative reward); for ℓ older than i-W the result is
// undefined by contract (the recurrence never requests such a level).
func (r *Ring) Get(level int) *mdpvec.Dense {
	if level < 0 {
		return r.zero
	}

	return r.slots[level%(r.w+1)]
}

// Level returns the current logical index i.
func (r *Ring) Level() int {
	return r.i
}
