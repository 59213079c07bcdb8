// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import (
	"context"
	"time"
)

// SnapshotProvider supplies the recorded stock of every countable product.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) ([]ProductRef, error)
}

// RecordStore persists submitted counts. Records are immutable once created.
//
// Implementations return ErrNotFound from Get for unknown ids and should
// wrap transport or database failures with ErrStorageUnavailable.
type RecordStore interface {
	Create(ctx context.Context, rec Record) (string, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]RecordSummary, error)
}

// ListFilter bounds a listing to [From, To). Nil bounds are open.
type ListFilter struct {
	From *time.Time
	To   *time.Time
}

// Record is the persisted result of one submitted count session.
type Record struct {
	ID             string
	Timestamp      time.Time
	Operator       string
	HasDifferences bool
	Note           string
	Details        []Detail
}

// Detail is one counted product inside a Record.
type Detail struct {
	ProductID   ProductID
	Code        string
	Description string
	Category    string
	Recorded    int64
	Physical    int64
	Variance    int64
	Observation string
}

// Class classifies the stored variance.
func (d Detail) Class() Class {
	return Variance{value: d.Variance, defined: true}.Class()
}

// RecordSummary is the listing view of a Record.
type RecordSummary struct {
	ID             string
	Timestamp      time.Time
	HasDifferences bool
	Note           string
}

func (r Record) Summary() RecordSummary {
	return RecordSummary{
		ID:             r.ID,
		Timestamp:      r.Timestamp,
		HasDifferences: r.HasDifferences,
		Note:           r.Note,
	}
}
