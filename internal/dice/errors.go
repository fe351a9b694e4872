package dice

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind shared by every validation failure in this
// package. Callers that only care about the category can match it with
// errors.Is; the specific sentinels below carry the detail.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidSides indicates a die with fewer than 2 sides.
var ErrInvalidSides = fmt.Errorf("%w: a die must have at least 2 sides", ErrInvalidArgument)

// ErrInvalidCount indicates a roll request for fewer than 1 die.
var ErrInvalidCount = fmt.Errorf("%w: count must be at least 1", ErrInvalidArgument)

// ErrFaceMismatch indicates custom faces whose length does not match sides.
var ErrFaceMismatch = fmt.Errorf("%w: faces length must match sides", ErrInvalidArgument)

// ErrValueMismatch indicates custom values whose length does not match sides.
var ErrValueMismatch = fmt.Errorf("%w: values length must match sides", ErrInvalidArgument)
