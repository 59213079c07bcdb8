// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Status is the outcome of a submission attempt that did not fail.
type Status int

const (
	StatusSubmitted Status = iota
	// StatusAwaitingConfirmation means the count has discrepancies and the
	// operator has not confirmed them. Nothing was persisted.
	StatusAwaitingConfirmation
)

func (s Status) String() string {
	if s == StatusAwaitingConfirmation {
		return "awaiting_confirmation"
	}
	return "submitted"
}

type SubmitOptions struct {
	// Confirmed is the operator's explicit acceptance of discrepancies.
	Confirmed bool
	Note      string
}

type SubmitResult struct {
	Status   Status
	RecordID string
	// Discrepancies holds every line whose variance is non-zero,
	// in snapshot order.
	Discrepancies []LineEvaluation
}

// Gate validates a session and hands the resulting record to the store.
type Gate struct {
	Store RecordStore
	// Now stamps the record; defaults to time.Now.
	Now func() time.Time
}

func NewGate(store RecordStore) *Gate {
	return &Gate{Store: store, Now: time.Now}
}

// Submit runs the completeness check, then the discrepancy check, then
// persists the record. The session is never modified, so a failed or
// gated submission can be retried as-is.
func (g *Gate) Submit(ctx context.Context, s *Session, opts SubmitOptions) (SubmitResult, error) {
	if missing := s.Missing(); len(missing) > 0 {
		return SubmitResult{}, &IncompleteCountError{Missing: missing}
	}

	evals := s.Evaluate()
	var discrepancies []LineEvaluation
	for _, ev := range evals {
		if ev.Variance.Class().Discrepant() {
			discrepancies = append(discrepancies, ev)
		}
	}

	if len(discrepancies) > 0 && !opts.Confirmed {
		return SubmitResult{
			Status:        StatusAwaitingConfirmation,
			Discrepancies: discrepancies,
		}, nil
	}

	rec := buildRecord(s.Operator(), opts.Note, evals, len(discrepancies) > 0, g.now())

	id, err := g.Store.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return SubmitResult{}, err
		}
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return SubmitResult{
		Status:        StatusSubmitted,
		RecordID:      id,
		Discrepancies: discrepancies,
	}, nil
}

func (g *Gate) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func buildRecord(operator, note string, evals []LineEvaluation, hasDifferences bool, at time.Time) Record {
	details := make([]Detail, len(evals))
	for i, ev := range evals {
		physical, _ := ev.Line.Physical.Get()
		variance, _ := ev.Variance.Value()
		details[i] = Detail{
			ProductID:   ev.Product.ID,
			Code:        ev.Product.Code,
			Description: ev.Product.Description,
			Category:    ev.Product.Category,
			Recorded:    ev.Product.Recorded,
			Physical:    physical,
			Variance:    variance,
			Observation: ev.Line.Observation,
		}
	}

	return Record{
		Timestamp:      at,
		Operator:       operator,
		HasDifferences: hasDifferences,
		Note:           note,
		Details:        details,
	}
}
