// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/stock-count/cliparse"
	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/db"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.SQLite,
		Location:     time.UTC,
		LogFormat:    "text",
	}
}

// SampleProducts is the catalogue SeedProducts writes by default
var SampleProducts = []count.ProductRef{
	{ID: 1, Code: "A-001", Description: "Rice 1kg", Category: "Grocery", Recorded: 10},
	{ID: 2, Code: "B-002", Description: "Oil 900ml", Category: "Grocery", Recorded: 5},
	{ID: 3, Code: "C-003", Description: "Soap bar", Category: "Cleaning", Recorded: 0},
}

// SeedProducts inserts products into the database; with none given it
// writes SampleProducts
func SeedProducts(t *testing.T, conn *sql.DB, products ...count.ProductRef) []count.ProductRef {
	t.Helper()

	if len(products) == 0 {
		products = SampleProducts
	}

	store := db.NewStore(conn, db.SQLite)
	for _, p := range products {
		if err := store.UpsertProduct(context.Background(), p); err != nil {
			t.Fatalf("Failed to seed product %d: %v", p.ID, err)
		}
	}

	return products
}

// CreateTestRecord stores a finished count stamped at the given time and returns its ID
func CreateTestRecord(t *testing.T, conn *sql.DB, at time.Time, hasDifferences bool, note string) string {
	t.Helper()

	variance := int64(0)
	if hasDifferences {
		variance = -1
	}

	id, err := db.NewStore(conn, db.SQLite).Create(context.Background(), count.Record{
		Timestamp:      at,
		Operator:       "TestUser",
		HasDifferences: hasDifferences,
		Note:           note,
		Details: []count.Detail{
			{ProductID: 1, Code: "A-001", Description: "Rice 1kg", Category: "Grocery", Recorded: 10, Physical: 10 + variance, Variance: variance},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create test record: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
