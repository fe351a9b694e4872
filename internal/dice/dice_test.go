package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDie_Defaults(t *testing.T) {
	d, err := NewDie(6)
	require.NoError(t, err)

	assert.Equal(t, 6, d.Sides())
	assert.Equal(t, 1, d.Value(0))
	assert.Equal(t, "1", d.Face(0))
	assert.Equal(t, 6, d.Value(5))
}

func TestNewDie_RejectsTooFewSides(t *testing.T) {
	for _, sides := range []int{1, 0, -3} {
		_, err := NewDie(sides)
		assert.ErrorIs(t, err, ErrInvalidSides)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestNewCustomDie_FacesAndValues(t *testing.T) {
	faces := []string{"a", "b", "c", "d"}
	values := []int{10, 20, 30, 40}

	d, err := NewCustomDie(4, faces, values)
	require.NoError(t, err)

	assert.Equal(t, "c", d.Face(2))
	assert.Equal(t, 30, d.Value(2))
}

func TestNewCustomDie_RejectsMismatchedLengths(t *testing.T) {
	_, err := NewCustomDie(4, []string{"a", "b"}, nil)
	assert.ErrorIs(t, err, ErrFaceMismatch)

	_, err = NewCustomDie(4, nil, []int{1, 2})
	assert.ErrorIs(t, err, ErrValueMismatch)
}

func TestDefaultDie_PipFaces(t *testing.T) {
	d := DefaultDie()

	assert.Equal(t, 6, d.Sides())
	assert.Equal(t, "⚀", d.Face(0))
	assert.Equal(t, "⚅", d.Face(5))
	assert.Equal(t, 1, d.Value(0))
	assert.Equal(t, 6, d.Value(5))
}
