// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/models"
	"github.com/danielhkuo/stock-count/testutil"
)

// TestConcurrentSessionStarts verifies only one of several simultaneous
// starts wins and the rest are told a count is in progress
func TestConcurrentSessionStarts(t *testing.T) {
	h, _ := newTestSessionHandler(t)

	numOperators := 10
	var created, conflicted atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numOperators; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/counts/session", models.StartSessionRequest{
				Responsible: fmt.Sprintf("operator-%d", idx),
			}, nil)
			w := httptest.NewRecorder()
			h.StartSession(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicted.Add(1)
			default:
				t.Errorf("Operator %d: unexpected status %d: %s", idx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 started session, got %d", created.Load())
	}
	if conflicted.Load() != int32(numOperators-1) {
		t.Errorf("Expected %d conflicts, got %d", numOperators-1, conflicted.Load())
	}
}

// TestConcurrentLineUpdates enters every quantity from its own goroutine
// and checks none of the entries are lost
func TestConcurrentLineUpdates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	products := make([]count.ProductRef, 25)
	for i := range products {
		products[i] = count.ProductRef{
			ID:          count.ProductID(i + 1),
			Code:        fmt.Sprintf("P-%03d", i+1),
			Description: fmt.Sprintf("Product %d", i+1),
			Category:    "Bulk",
			Recorded:    int64(i),
		}
	}
	testutil.SeedProducts(t, conn, products...)

	h, _ := newTestSessionHandlerOn(t, conn)
	startSession(t, h, "Maria")

	var wg sync.WaitGroup
	for _, p := range products {
		wg.Add(1)
		go func(p count.ProductRef) {
			defer wg.Done()
			w := setQuantity(h, int64(p.ID), qty(p.Recorded))
			if w.Code != http.StatusOK {
				t.Errorf("Product %d: unexpected status %d", p.ID, w.Code)
			}
		}(p)
	}
	wg.Wait()

	w := httptest.NewRecorder()
	h.GetSession(w, httptest.NewRequest("GET", "/counts/session", nil))

	var view models.SessionView
	testutil.AssertJSON(t, w, &view)
	if view.Summary.Counted != len(products) || view.Summary.Exact != len(products) {
		t.Errorf("Expected all %d lines counted and exact, summary: %+v", len(products), view.Summary)
	}
}

// TestConcurrentSubmissions verifies a count is recorded once even when
// the submit button is pressed from several clients at the same time
func TestConcurrentSubmissions(t *testing.T) {
	h, conn := newTestSessionHandler(t)
	startSession(t, h, "Maria")
	setQuantity(h, 1, qty(10))
	setQuantity(h, 2, qty(5))
	setQuantity(h, 3, qty(0))

	numClients := 8
	var recorded, gone atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := submit(h, models.SubmitCountRequest{Confirm: true})
			switch w.Code {
			case http.StatusCreated:
				recorded.Add(1)
			case http.StatusNotFound:
				gone.Add(1)
			default:
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
			}
		}()
	}
	wg.Wait()

	if recorded.Load() != 1 {
		t.Errorf("Expected exactly 1 recorded submission, got %d", recorded.Load())
	}

	var records int
	if err := conn.QueryRow("SELECT COUNT(*) FROM reconciliation").Scan(&records); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if records != 1 {
		t.Errorf("Expected 1 stored record, got %d", records)
	}
}
