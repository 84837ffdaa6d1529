package mdpbuilder

import (
	"fmt"

	"github.com/arzani/rquantile/mdpmodel"
	"github.com/arzani/rquantile/mdpvec"
	"github.com/arzani/rquantile/transition"
)

// Constructor applies a deterministic sequence of AddState/AddChoice/
// AddTransition calls to b. Constructors must validate parameters early and
// return an error rather than panicking.
type Constructor func(b *mdpmodel.Builder, cfg *config) error

// BuildMDP runs each constructor in order against a fresh mdpmodel.Builder
// and finalizes the result. Constructor errors are wrapped with
// "mdpbuilder: %w" and returned immediately.
func BuildMDP(opts []Option, cons ...Constructor) (mdpvec.ModelVectors, transition.Store, transition.Store, error) {
	cfg := newConfig(opts...)
	b := mdpmodel.NewBuilder()
	for _, c := range cons {
		if err := c(b, cfg); err != nil {
			return mdpvec.ModelVectors{}, nil, nil, fmt.Errorf("mdpbuilder: %w", err)
		}
	}

	return b.Build()
}
