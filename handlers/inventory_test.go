// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/stock-count/db"
	"github.com/danielhkuo/stock-count/models"
	"github.com/danielhkuo/stock-count/testutil"
)

func TestGetInventory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	testutil.SeedProducts(t, conn)
	h := NewInventoryHandler(db.NewStore(conn, db.SQLite))

	w := httptest.NewRecorder()
	h.GetInventory(w, httptest.NewRequest("GET", "/inventory", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var products []models.Product
	testutil.AssertJSON(t, w, &products)

	if len(products) != len(testutil.SampleProducts) {
		t.Fatalf("Expected %d products, got %d", len(testutil.SampleProducts), len(products))
	}
	for i, p := range products {
		want := testutil.SampleProducts[i]
		if p.ID != int64(want.ID) || p.Code != want.Code || p.Stock != want.Recorded {
			t.Errorf("Product %d: expected %+v, got %+v", i, want, p)
		}
	}
}

func TestGetInventoryEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	h := NewInventoryHandler(db.NewStore(conn, db.SQLite))

	w := httptest.NewRecorder()
	h.GetInventory(w, httptest.NewRequest("GET", "/inventory", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var products []models.Product
	testutil.AssertJSON(t, w, &products)
	if len(products) != 0 {
		t.Errorf("Expected no products, got %d", len(products))
	}
}

func TestGetInventoryStorageDown(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewInventoryHandler(db.NewStore(conn, db.SQLite))
	conn.Close()

	w := httptest.NewRecorder()
	h.GetInventory(w, httptest.NewRequest("GET", "/inventory", nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}
