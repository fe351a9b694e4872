package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoll_OutcomesInRange(t *testing.T) {
	res, err := Roll(6, 100, WithSeed(7))
	require.NoError(t, err)

	assert.Len(t, res.Outcomes, 100)

	total := 0
	for _, v := range res.Outcomes {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
		total += v
	}
	assert.Equal(t, total, res.Total)
}

func TestRoll_DeterministicWithSeed(t *testing.T) {
	r1, err := NewRoller(WithSeed(42))
	require.NoError(t, err)
	r2, err := NewRoller(WithSeed(42))
	require.NoError(t, err)

	res1, err := r1.Roll(5)
	require.NoError(t, err)
	res2, err := r2.Roll(5)
	require.NoError(t, err)

	assert.Equal(t, res1.Outcomes, res2.Outcomes)
	assert.Equal(t, res1.Total, res2.Total)
}

// TestRoll_MatchesSeededGenerator pins the exact sequence for a fixed seed
// against a parallel generator, so any change to the draw algorithm or the
// seeding path shows up as a failure.
func TestRoll_MatchesSeededGenerator(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	want := []int{rng.Intn(6) + 1, rng.Intn(6) + 1, rng.Intn(6) + 1}

	res, err := Roll(6, 3, WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, want, res.Outcomes)
	assert.Equal(t, want[0]+want[1]+want[2], res.Total)
}

func TestRoll_SuccessiveRollsContinueSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	var want []int
	for i := 0; i < 4; i++ {
		want = append(want, rng.Intn(6)+1)
	}

	r, err := NewRoller(WithSeed(9))
	require.NoError(t, err)

	first, err := r.Roll(2)
	require.NoError(t, err)
	second, err := r.Roll(2)
	require.NoError(t, err)

	assert.Equal(t, want, append(first.Outcomes, second.Outcomes...))
}

func TestRollSum(t *testing.T) {
	r, err := NewRoller(WithSeed(7))
	require.NoError(t, err)
	sum, err := r.RollSum(3)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, sum, 3)
	assert.LessOrEqual(t, sum, 18)

	check, err := NewRoller(WithSeed(7))
	require.NoError(t, err)
	res, err := check.Roll(3)
	require.NoError(t, err)
	assert.Equal(t, res.Total, sum)
}

func TestRoll_CustomValues(t *testing.T) {
	die, err := NewCustomDie(4, nil, []int{10, 20, 30, 40})
	require.NoError(t, err)

	r, err := NewRoller(WithDie(die), WithSeed(3))
	require.NoError(t, err)
	res, err := r.Roll(20)
	require.NoError(t, err)

	for _, v := range res.Outcomes {
		assert.Contains(t, []int{10, 20, 30, 40}, v)
	}
}

func TestRoll_RejectsInvalidSides(t *testing.T) {
	_, err := Roll(1, 1)
	assert.ErrorIs(t, err, ErrInvalidSides)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRoll_RejectsInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		_, err := Roll(6, count)
		assert.ErrorIs(t, err, ErrInvalidCount)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

// TestRoll_DoesNotClobberCallerOptions passes an options slice with spare
// capacity to Roll and then reuses the slot beyond its length; Roll must not
// have written its internal die option through the shared backing array.
func TestRoll_DoesNotClobberCallerOptions(t *testing.T) {
	opts := make([]Option, 1, 2)
	opts[0] = WithSeed(42)
	shared := append(opts, WithSeed(7)) // occupies the spare slot

	_, err := Roll(6, 3, opts...)
	require.NoError(t, err)

	// Later options win, so a roller built from shared must be seeded
	// with 7. If Roll overwrote shared[1], the seed would still be 42.
	r, err := NewRoller(shared...)
	require.NoError(t, err)
	res, err := r.Roll(3)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	want := []int{rng.Intn(6) + 1, rng.Intn(6) + 1, rng.Intn(6) + 1}
	assert.Equal(t, want, res.Outcomes)
}

func TestRoll_UnseededRollersDiverge(t *testing.T) {
	r1, err := NewRoller()
	require.NoError(t, err)
	r2, err := NewRoller()
	require.NoError(t, err)

	res1, err := r1.Roll(32)
	require.NoError(t, err)
	res2, err := r2.Roll(32)
	require.NoError(t, err)

	// Two entropy-seeded 32-draw sequences colliding is a 6^-32 event.
	assert.NotEqual(t, res1.Outcomes, res2.Outcomes)
}
