// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

// Class is the classification of a line's variance.
type Class int

const (
	ClassUndefined Class = iota // physical quantity not entered
	ClassExact
	ClassShort // physical < recorded
	ClassOver  // physical > recorded
)

func (c Class) String() string {
	switch c {
	case ClassExact:
		return "exact"
	case ClassShort:
		return "short"
	case ClassOver:
		return "over"
	default:
		return "pending"
	}
}

// Discrepant reports whether the class is short or over.
func (c Class) Discrepant() bool {
	return c == ClassShort || c == ClassOver
}

// Variance is physical minus recorded. It is undefined, not zero,
// while the physical quantity is unset.
type Variance struct {
	value   int64
	defined bool
}

// Evaluate computes the variance for a line against its recorded quantity.
func Evaluate(ref ProductRef, line Line) Variance {
	physical, ok := line.Physical.Get()
	if !ok {
		return Variance{}
	}
	return Variance{value: physical - ref.Recorded, defined: true}
}

func (v Variance) Value() (int64, bool) {
	return v.value, v.defined
}

func (v Variance) Defined() bool {
	return v.defined
}

func (v Variance) Class() Class {
	switch {
	case !v.defined:
		return ClassUndefined
	case v.value == 0:
		return ClassExact
	case v.value < 0:
		return ClassShort
	default:
		return ClassOver
	}
}

// Ptr returns nil for an undefined variance, for JSON encoding.
func (v Variance) Ptr() *int64 {
	if !v.defined {
		return nil
	}
	n := v.value
	return &n
}
