// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "time/tzdata"

	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/db"
	"github.com/danielhkuo/stock-count/models"
	"github.com/danielhkuo/stock-count/testutil"
)

func TestListCounts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	h := NewHistoryHandler(count.NewHistory(db.NewStore(conn, db.SQLite), time.UTC))

	older := testutil.CreateTestRecord(t, conn, time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC), false, "")
	newer := testutil.CreateTestRecord(t, conn, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), true, "shelf 3 short")
	nextDay := testutil.CreateTestRecord(t, conn, time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC), false, "")

	tests := []struct {
		name        string
		query       string
		expectedIDs []string
	}{
		{"all records", "", []string{nextDay, newer, older}},
		{"single day in UTC", "?date=2025-06-01", []string{newer, older}},
		{"same day seen from Lima", "?date=2025-06-01&tz=America/Lima", []string{nextDay, newer}},
		{"day without counts", "?date=2025-05-31", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ListCounts(w, httptest.NewRequest("GET", "/counts"+tt.query, nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			var summaries []models.ReconciliationSummary
			testutil.AssertJSON(t, w, &summaries)

			if len(summaries) != len(tt.expectedIDs) {
				t.Fatalf("Expected %d records, got %d", len(tt.expectedIDs), len(summaries))
			}
			for i, id := range tt.expectedIDs {
				if summaries[i].ID != id {
					t.Errorf("Position %d: expected %s, got %s", i, id, summaries[i].ID)
				}
			}
		})
	}
}

func TestListCountsSummaryFields(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	h := NewHistoryHandler(count.NewHistory(db.NewStore(conn, db.SQLite), time.UTC))
	at := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	id := testutil.CreateTestRecord(t, conn, at, true, "shelf 3 short")

	w := httptest.NewRecorder()
	h.ListCounts(w, httptest.NewRequest("GET", "/counts", nil))

	var summaries []models.ReconciliationSummary
	testutil.AssertJSON(t, w, &summaries)

	if len(summaries) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(summaries))
	}
	s := summaries[0]
	if s.ID != id || !s.CountedAt.Equal(at) || !s.HasDifferences {
		t.Errorf("Unexpected summary: %+v", s)
	}
	if s.Note == nil || *s.Note != "shelf 3 short" {
		t.Errorf("Expected note 'shelf 3 short', got %v", s.Note)
	}
}

func TestListCountsBadQuery(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	h := NewHistoryHandler(count.NewHistory(db.NewStore(conn, db.SQLite), time.UTC))

	for _, query := range []string{"?date=01/06/2025", "?date=2025-02-30", "?tz=Mars/Olympus"} {
		t.Run(query, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ListCounts(w, httptest.NewRequest("GET", "/counts"+query, nil))
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestGetCount(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	h := NewHistoryHandler(count.NewHistory(db.NewStore(conn, db.SQLite), time.UTC))
	id := testutil.CreateTestRecord(t, conn, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), true, "")

	t.Run("existing record", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/counts/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.GetCount(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var rec models.Reconciliation
		testutil.AssertJSON(t, w, &rec)
		if rec.ID != id || rec.Responsible != "TestUser" || rec.Note != nil {
			t.Errorf("Unexpected record: %+v", rec)
		}
		if len(rec.Details) != 1 {
			t.Fatalf("Expected 1 detail, got %d", len(rec.Details))
		}
		d := rec.Details[0]
		if d.Code != "A-001" || d.RecordedQuantity != 10 || d.PhysicalQuantity != 9 || d.Variance != -1 || d.Status != models.StatusShort {
			t.Errorf("Unexpected detail: %+v", d)
		}
	})

	t.Run("unknown record", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/counts/missing", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()
		h.GetCount(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
