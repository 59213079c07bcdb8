// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import (
	"context"
	"errors"
	"fmt"
)

type memStore struct {
	records []Record
	creates int
	failErr error
}

func (m *memStore) Create(ctx context.Context, rec Record) (string, error) {
	m.creates++
	if m.failErr != nil {
		return "", m.failErr
	}
	rec.ID = fmt.Sprintf("rec-%03d", len(m.records)+1)
	m.records = append(m.records, rec)
	return rec.ID, nil
}

func (m *memStore) Get(ctx context.Context, id string) (Record, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

func (m *memStore) List(ctx context.Context, filter ListFilter) ([]RecordSummary, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var out []RecordSummary
	for _, r := range m.records {
		if filter.From != nil && r.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !r.Timestamp.Before(*filter.To) {
			continue
		}
		out = append(out, r.Summary())
	}
	return out, nil
}

type staticSnapshot struct {
	products []ProductRef
	err      error
}

func (s staticSnapshot) Snapshot(ctx context.Context) ([]ProductRef, error) {
	return s.products, s.err
}

var errDiskFull = errors.New("disk full")

func twoProducts() []ProductRef {
	return []ProductRef{
		{ID: 1, Code: "A-001", Description: "Rice 1kg", Category: "Grocery", Recorded: 10},
		{ID: 2, Code: "B-002", Description: "Oil 900ml", Category: "Grocery", Recorded: 5},
	}
}
