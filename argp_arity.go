package argp

import (
	"fmt"
	"math"
)

// Unbounded is the upper bound of an Arity that accepts any number of values.
const Unbounded uint = math.MaxUint

// Arity is an inclusive [min, max] constraint on how many values a parameter,
// or the positional group of a parser, may receive. A max of Unbounded means
// there is no upper limit.
//
// Arity values are immutable and safe to copy. The zero value is Exactly(0).
type Arity struct {
	min uint
	max uint
}

// Exactly returns an Arity accepting exactly n values.
func Exactly(n uint) Arity {
	return Arity{min: n, max: n}
}

// Range returns an Arity accepting between from and to values, inclusive.
// It fails with an *InvalidRangeError if to is lower than from.
func Range(from, to uint) (Arity, error) {
	if to < from {
		return Arity{}, &InvalidRangeError{From: from, To: to}
	}
	return Arity{min: from, max: to}, nil
}

// MustRange is like Range but panics if the range is invalid. It is meant for
// static parser definitions.
func MustRange(from, to uint) Arity {
	a, err := Range(from, to)
	if err != nil {
		panic(err)
	}
	return a
}

// AtLeast returns an Arity accepting n or more values.
func AtLeast(n uint) Arity {
	return Arity{min: n, max: Unbounded}
}

// AtMost returns an Arity accepting up to n values, including none.
func AtMost(n uint) Arity {
	return Arity{min: 0, max: n}
}

// Any returns an Arity accepting any number of values, including none.
func Any() Arity {
	return Arity{min: 0, max: Unbounded}
}

func (a Arity) Min() uint {
	return a.min
}

func (a Arity) Max() uint {
	return a.max
}

// Bounded reports whether the Arity has a finite upper limit.
func (a Arity) Bounded() bool {
	return a.max != Unbounded
}

// Includes reports whether n values satisfy the Arity.
func (a Arity) Includes(n uint) bool {
	return a.min <= n && n <= a.max
}

// String renders the Arity for diagnostics: "2" for an exact count, "[1..5]"
// for a range and "[1..]" / "[..5]" / "[..]" when a side is open.
func (a Arity) String() string {
	switch {
	case a.min == a.max:
		return fmt.Sprintf("%d", a.min)
	case a.min == 0 && !a.Bounded():
		return "[..]"
	case !a.Bounded():
		return fmt.Sprintf("[%d..]", a.min)
	case a.min == 0:
		return fmt.Sprintf("[..%d]", a.max)
	default:
		return fmt.Sprintf("[%d..%d]", a.min, a.max)
	}
}

// check classifies n against the Arity. It returns nil, ErrNotEnoughArguments
// or ErrTooManyArguments.
func (a Arity) check(n uint) error {
	if a.Includes(n) {
		return nil
	}
	if n < a.min {
		return ErrNotEnoughArguments
	}
	return ErrTooManyArguments
}
