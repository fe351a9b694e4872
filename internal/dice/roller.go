package dice

import (
	"fmt"
	"math/rand"

	"github.com/mobinyousefi-cs/dice-roller/internal/random"
)

// RollResult holds the outcomes of a single roll request, in draw order,
// together with their sum.
type RollResult struct {
	Outcomes []int
	Total    int
}

type options struct {
	die  *Die
	seed *int64
}

// Option configures a Roller.
type Option func(*options)

// WithDie sets the die to roll instead of the default pip-faced d6.
func WithDie(d Die) Option {
	return func(o *options) { o.die = &d }
}

// WithSeed makes the roller deterministic: two rollers built with the same
// seed and die produce identical outcome sequences.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = &seed }
}

// Roller draws outcomes from a single die. Each Roller owns its generator,
// so seeding is unambiguous and concurrent callers never share state.
// Successive Roll calls on one Roller continue the same sequence.
type Roller struct {
	die Die
	rng *rand.Rand
}

// NewRoller builds a roller for the configured die. Without WithSeed the
// generator is seeded from system entropy.
func NewRoller(opts ...Option) (*Roller, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	die := DefaultDie()
	if o.die != nil {
		die = *o.die
	}

	var seed int64
	if o.seed != nil {
		seed = *o.seed
	} else {
		s, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("seed roller: %w", err)
		}
		seed = s
	}

	return &Roller{die: die, rng: rand.New(rand.NewSource(seed))}, nil
}

// Die reports the die this roller draws from.
func (r *Roller) Die() Die { return r.die }

// Roll draws count independent outcomes, each uniform over the die's faces.
func (r *Roller) Roll(count int) (RollResult, error) {
	if count < 1 {
		return RollResult{}, ErrInvalidCount
	}

	outcomes := make([]int, count)
	total := 0
	for i := range outcomes {
		v := r.die.Value(r.rng.Intn(r.die.sides))
		outcomes[i] = v
		total += v
	}

	return RollResult{Outcomes: outcomes, Total: total}, nil
}

// RollSum draws count outcomes and returns only their total.
func (r *Roller) RollSum(count int) (int, error) {
	res, err := r.Roll(count)
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}

// Roll is the one-shot form of the roller: build a sides-sided die, draw
// count outcomes and return them. Extra options (such as WithSeed) apply to
// the underlying roller.
func Roll(sides, count int, opts ...Option) (RollResult, error) {
	die, err := NewDie(sides)
	if err != nil {
		return RollResult{}, err
	}
	// Copy before appending so a caller-owned slice with spare capacity is
	// never written through.
	withDie := append(append([]Option{}, opts...), WithDie(die))
	roller, err := NewRoller(withDie...)
	if err != nil {
		return RollResult{}, err
	}
	return roller.Roll(count)
}
