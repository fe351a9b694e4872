// Package dice implements the roll-generation core of the simulator: a
// uniform N-sided die and a seedable roller producing independent draws
// in [1, sides].
package dice

import "strconv"

// MinSides is the smallest legal die. A one-sided "die" has no outcome to
// randomize and is rejected.
const MinSides = 2

// PipFaces are the unicode faces of a standard six-sided die, indexed by
// draw index (face for outcome v is PipFaces[v-1]).
var PipFaces = []string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Die is a uniform N-sided die. By default the draw at index i (0-based)
// yields the value i+1 and displays as its decimal string; custom faces
// and values override the display and the outcome mapping respectively.
type Die struct {
	sides  int
	faces  []string
	values []int
}

// NewDie returns a plain die with the given number of sides.
func NewDie(sides int) (Die, error) {
	return NewCustomDie(sides, nil, nil)
}

// NewCustomDie returns a die with explicit display faces and/or outcome
// values. Either slice may be nil; when present its length must equal sides.
func NewCustomDie(sides int, faces []string, values []int) (Die, error) {
	if sides < MinSides {
		return Die{}, ErrInvalidSides
	}
	if faces != nil && len(faces) != sides {
		return Die{}, ErrFaceMismatch
	}
	if values != nil && len(values) != sides {
		return Die{}, ErrValueMismatch
	}
	return Die{sides: sides, faces: faces, values: values}, nil
}

// DefaultDie is the standard pip-faced d6 used when no die is configured.
func DefaultDie() Die {
	return Die{sides: 6, faces: PipFaces, values: []int{1, 2, 3, 4, 5, 6}}
}

// Sides reports the number of faces on the die.
func (d Die) Sides() int { return d.sides }

// Face returns the display face for a 0-based draw index.
func (d Die) Face(idx int) string {
	if d.faces != nil {
		return d.faces[idx]
	}
	return strconv.Itoa(idx + 1)
}

// Value returns the numeric outcome for a 0-based draw index.
func (d Die) Value(idx int) int {
	if d.values != nil {
		return d.values[idx]
	}
	return idx + 1
}
