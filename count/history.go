// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Day is a calendar date with no time of day or zone.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DayOf(t, time.UTC), nil
}

// DayOf returns the calendar date of t as seen in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Bounds returns local midnight of d and of the following day in loc.
func (d Day) Bounds(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// Contains reports whether t falls on d in loc.
func (d Day) Contains(t time.Time, loc *time.Location) bool {
	return DayOf(t, loc) == d
}

// History answers queries over persisted records.
type History struct {
	Store RecordStore
	// Location is the viewer's time zone for date filters; defaults to time.Local.
	Location *time.Location
}

func NewHistory(store RecordStore, loc *time.Location) *History {
	return &History{Store: store, Location: loc}
}

// List returns record summaries, most recent first (ties broken by
// descending id). When day is non-nil only records stamped on that
// calendar date in the history's location are returned.
func (h *History) List(ctx context.Context, day *Day) ([]RecordSummary, error) {
	return h.ListIn(ctx, day, h.location())
}

// ListIn is List with an explicit viewer location.
func (h *History) ListIn(ctx context.Context, day *Day, loc *time.Location) ([]RecordSummary, error) {
	if loc == nil {
		loc = h.location()
	}

	var filter ListFilter
	if day != nil {
		from, to := day.Bounds(loc)
		filter = ListFilter{From: &from, To: &to}
	}

	summaries, err := h.Store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]RecordSummary, 0, len(summaries))
	for _, s := range summaries {
		if day != nil && !day.Contains(s.Timestamp, loc) {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

// Get returns the record with all of its details.
func (h *History) Get(ctx context.Context, id string) (Record, error) {
	return h.Store.Get(ctx, id)
}

func (h *History) location() *time.Location {
	if h.Location == nil {
		return time.Local
	}
	return h.Location
}
