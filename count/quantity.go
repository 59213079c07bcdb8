// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import (
	"errors"
	"fmt"
	"strconv"
)

// Quantity is an optional physical count. The zero value is unset.
type Quantity struct {
	n   int64
	set bool
}

// Unset returns the explicit "not counted yet" marker.
func Unset() Quantity {
	return Quantity{}
}

// Of returns a set quantity. Negative values are rejected when the
// quantity is applied to a session, not here.
func Of(n int64) Quantity {
	return Quantity{n: n, set: true}
}

// ParseQuantity parses the decimal text of a JSON number into a Quantity.
// Only plain base-10 integers within int64 are accepted, so fractions,
// exponents and negatives are rejected instead of rounded.
func ParseQuantity(text string) (Quantity, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Quantity{}, fmt.Errorf("%w: %s is out of range", ErrInvalidQuantity, text)
		}
		return Quantity{}, fmt.Errorf("%w: got %s", ErrInvalidQuantity, text)
	}
	if n < 0 {
		return Quantity{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, n)
	}
	return Of(n), nil
}

// Get returns the count and whether it has been entered.
func (q Quantity) Get() (int64, bool) {
	return q.n, q.set
}

func (q Quantity) IsSet() bool {
	return q.set
}

// Ptr returns nil for an unset quantity, for JSON encoding.
func (q Quantity) Ptr() *int64 {
	if !q.set {
		return nil
	}
	n := q.n
	return &n
}

func (q Quantity) String() string {
	if !q.set {
		return "unset"
	}
	return fmt.Sprint(q.n)
}

func (q Quantity) validate() error {
	if q.set && q.n < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, q.n)
	}
	return nil
}
