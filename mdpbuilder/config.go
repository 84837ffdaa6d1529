package mdpbuilder

import "math/rand"

// Option customizes a config before a Constructor runs.
type Option func(cfg *config)

// config holds parameters a topology Constructor may consult. Per-state
// overrides default to reward 0, x0 0, infinity 1, and membership in
// neither partition.
type config struct {
	rng *rand.Rand

	reward    map[int]int
	x0        map[int]float64
	infinity  map[int]float64
	oneStates map[int]bool
	zeroState map[int]bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		reward:    make(map[int]int),
		x0:        make(map[int]float64),
		infinity:  make(map[int]float64),
		oneStates: make(map[int]bool),
		zeroState: make(map[int]bool),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (cfg *config) rewardOf(s int) int       { return cfg.reward[s] }
func (cfg *config) x0Of(s int) float64       { return cfg.x0[s] }
func (cfg *config) infinityOf(s int) float64 {
	if v, ok := cfg.infinity[s]; ok {
		return v
	}
	return 1
}
func (cfg *config) isOne(s int) bool  { return cfg.oneStates[s] }
func (cfg *config) isZero(s int) bool { return cfg.zeroState[s] }

// WithSeed freezes the RNG used by stochastic generators (RandomSparse), for
// reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithStateReward sets r_s(s), the state-level reward, for state s.
func WithStateReward(s, reward int) Option {
	return func(cfg *config) { cfg.reward[s] = reward }
}

// WithX0 sets the zero-reward bounded base probability X0(s) for state s.
func WithX0(s int, v float64) Option {
	return func(cfg *config) { cfg.x0[s] = v }
}

// WithInfinity sets the reward-unbounded reachability value X_inf(s) for
// state s. Defaults to 1 when unset.
func WithInfinity(s int, v float64) Option {
	return func(cfg *config) { cfg.infinity[s] = v }
}

// WithOneState marks s as a member of the qualitative "one" partition O.
func WithOneState(s int) Option {
	return func(cfg *config) { cfg.oneStates[s] = true }
}

// WithZeroState marks s as a member of the qualitative "zero" partition Z.
func WithZeroState(s int) Option {
	return func(cfg *config) { cfg.zeroState[s] = true }
}
