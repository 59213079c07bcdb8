// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

type ProductID int64

// ProductRef is one product as recorded by the inventory at the moment
// the count started.
type ProductRef struct {
	ID          ProductID
	Code        string
	Description string
	Category    string
	Recorded    int64
}

// Line holds what the operator entered for one product.
type Line struct {
	ProductID   ProductID
	Physical    Quantity
	Observation string
}

// HasObservation reports whether the line carries a non-blank observation.
func (l Line) HasObservation() bool {
	return strings.TrimSpace(l.Observation) != ""
}

// Session is an in-progress physical count. It is not safe for
// concurrent use; callers that share one must serialise access.
type Session struct {
	operator string
	products []ProductRef
	lines    []Line
	index    map[ProductID]int
}

// NewSession builds a session with one unset line per snapshot product,
// in snapshot order.
func NewSession(snapshot []ProductRef, operator string) (*Session, error) {
	if len(snapshot) == 0 {
		return nil, ErrEmptySnapshot
	}

	s := &Session{
		operator: operator,
		products: make([]ProductRef, len(snapshot)),
		lines:    make([]Line, len(snapshot)),
		index:    make(map[ProductID]int, len(snapshot)),
	}
	for i, p := range snapshot {
		if _, dup := s.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: product %d appears more than once", ErrInvalidSnapshot, p.ID)
		}
		if p.Recorded < 0 {
			return nil, fmt.Errorf("%w: product %d has negative recorded quantity %d", ErrInvalidSnapshot, p.ID, p.Recorded)
		}
		s.products[i] = p
		s.lines[i] = Line{ProductID: p.ID}
		s.index[p.ID] = i
	}

	return s, nil
}

// Start fetches a snapshot from the provider and builds a session over it.
func Start(ctx context.Context, provider SnapshotProvider, operator string) (*Session, error) {
	snapshot, err := provider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock snapshot: %w", err)
	}
	return NewSession(snapshot, operator)
}

func (s *Session) Operator() string {
	return s.operator
}

func (s *Session) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the count lines in snapshot order.
func (s *Session) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Snapshot returns a copy of the products the session was built from.
func (s *Session) Snapshot() []ProductRef {
	out := make([]ProductRef, len(s.products))
	copy(out, s.products)
	return out
}

// Line returns the product and line for id.
func (s *Session) Line(id ProductID) (ProductRef, Line, error) {
	i, ok := s.index[id]
	if !ok {
		return ProductRef{}, Line{}, fmt.Errorf("%w: %d", ErrUnknownProduct, id)
	}
	return s.products[i], s.lines[i], nil
}

// SetPhysicalQuantity records the counted quantity for one product.
// Passing Unset() clears a previous entry.
func (s *Session) SetPhysicalQuantity(id ProductID, q Quantity) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownProduct, id)
	}
	if err := q.validate(); err != nil {
		return err
	}
	s.lines[i].Physical = q
	return nil
}

// SetObservation replaces the free-text observation for one product.
func (s *Session) SetObservation(id ProductID, text string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownProduct, id)
	}
	s.lines[i].Observation = text
	return nil
}

// LineEvaluation pairs a line with its product and current variance.
type LineEvaluation struct {
	Product  ProductRef
	Line     Line
	Variance Variance
}

// Evaluate computes the variance of every line. It never mutates the session.
func (s *Session) Evaluate() []LineEvaluation {
	out := make([]LineEvaluation, len(s.lines))
	for i, l := range s.lines {
		out[i] = LineEvaluation{
			Product:  s.products[i],
			Line:     l,
			Variance: Evaluate(s.products[i], l),
		}
	}
	return out
}

// Missing returns the products without a physical quantity, in snapshot order.
func (s *Session) Missing() []ProductID {
	var missing []ProductID
	for _, l := range s.lines {
		if !l.Physical.IsSet() {
			missing = append(missing, l.ProductID)
		}
	}
	return missing
}

// Summary aggregates the state of a session for display.
type Summary struct {
	Total       int
	Counted     int
	Pending     int
	Exact       int
	Short       int
	Over        int
	NetVariance int64
}

func (s *Session) Summarize() Summary {
	sum := Summary{Total: len(s.lines)}
	for _, ev := range s.Evaluate() {
		switch ev.Variance.Class() {
		case ClassUndefined:
			sum.Pending++
			continue
		case ClassExact:
			sum.Exact++
		case ClassShort:
			sum.Short++
		case ClassOver:
			sum.Over++
		}
		sum.Counted++
		v, _ := ev.Variance.Value()
		sum.NetVariance += v
	}
	return sum
}
