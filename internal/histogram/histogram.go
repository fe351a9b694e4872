// Package histogram tallies roll outcomes over a fixed integer range.
package histogram

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds indicates max < min.
var ErrInvalidBounds = errors.New("histogram max must not be below min")

// ErrOutOfRange indicates an observation outside [min, max].
var ErrOutOfRange = errors.New("observation out of range")

// Histogram counts integer observations in the closed range [Min, Max].
type Histogram struct {
	min    int
	max    int
	counts []int
	total  int
}

// New builds an empty histogram over [min, max].
func New(min, max int) (*Histogram, error) {
	if max < min {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, min, max)
	}
	return &Histogram{
		min:    min,
		max:    max,
		counts: make([]int, max-min+1),
	}, nil
}

// Add records one observation.
func (h *Histogram) Add(v int) error {
	if v < h.min || v > h.max {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, h.min, h.max)
	}
	h.counts[v-h.min]++
	h.total++
	return nil
}

// Min reports the lower bound of the range.
func (h *Histogram) Min() int { return h.min }

// Max reports the upper bound of the range.
func (h *Histogram) Max() int { return h.max }

// Count reports how many times v was observed. Values outside the range
// count zero.
func (h *Histogram) Count(v int) int {
	if v < h.min || v > h.max {
		return 0
	}
	return h.counts[v-h.min]
}

// Observations reports the total number of recorded observations.
func (h *Histogram) Observations() int { return h.total }

// Share reports the fraction of observations equal to v, in [0, 1].
func (h *Histogram) Share(v int) float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.Count(v)) / float64(h.total)
}

// Peak reports the largest single-value count, used to scale bar rendering.
func (h *Histogram) Peak() int {
	peak := 0
	for _, c := range h.counts {
		if c > peak {
			peak = c
		}
	}
	return peak
}
