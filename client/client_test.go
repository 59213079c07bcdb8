// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/stock-count/client"
	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/models"
	"github.com/danielhkuo/stock-count/router"
	"github.com/danielhkuo/stock-count/testutil"
)

func newTestServer(t *testing.T) *client.Client {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	testutil.SeedProducts(t, conn)

	server := httptest.NewServer(router.NewRouter(conn, testutil.GetTestConfig()))
	t.Cleanup(server.Close)

	return client.New(server.URL + "/")
}

func ptr(n int64) *int64 {
	return &n
}

func TestNew_Defaults(t *testing.T) {
	assert.Equal(t, client.DefaultBaseURL, client.New("").BaseURL())
	assert.Equal(t, "http://stock:8080", client.New("http://stock:8080/").BaseURL())
}

func TestInventory(t *testing.T) {
	c := newTestServer(t)

	products, err := c.Inventory(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "A-001", products[0].Code)
	assert.EqualValues(t, 10, products[0].Stock)
}

func TestCountRoundTrip(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	view, err := c.StartSession(ctx, "Maria")
	require.NoError(t, err)
	assert.Equal(t, 3, view.Summary.Pending)

	_, err = c.StartSession(ctx, "Jose")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	line, err := c.SetQuantity(ctx, 1, ptr(8))
	require.NoError(t, err)
	assert.Equal(t, models.StatusShort, line.Status)
	require.NotNil(t, line.Variance)
	assert.EqualValues(t, -2, *line.Variance)

	line, err = c.SetObservation(ctx, 1, "torn bags")
	require.NoError(t, err)
	assert.True(t, line.HasObservation)

	_, err = c.Submit(ctx, false, "")
	var incomplete *count.IncompleteCountError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []count.ProductID{2, 3}, incomplete.Missing)
	assert.ErrorIs(t, err, count.ErrIncompleteCount)

	_, err = c.SetQuantity(ctx, 2, ptr(5))
	require.NoError(t, err)
	_, err = c.SetQuantity(ctx, 3, ptr(0))
	require.NoError(t, err)

	resp, err := c.Submit(ctx, false, "")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAwaitingConfirmation, resp.Outcome)
	require.Len(t, resp.Discrepancies, 1)
	assert.EqualValues(t, 1, resp.Discrepancies[0].ProductID)

	resp, err = c.Submit(ctx, true, "month end")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSubmitted, resp.Outcome)
	require.NotEmpty(t, resp.ID)

	_, err = c.Session(ctx)
	assert.ErrorIs(t, err, count.ErrNotFound)

	summaries, err := c.ListCounts(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, resp.ID, summaries[0].ID)

	rec, err := c.GetCount(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", rec.Responsible)
	require.Len(t, rec.Details, 3)
	assert.Equal(t, "torn bags", rec.Details[0].Observation)
}

func TestClearQuantity(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	_, err := c.StartSession(ctx, "Maria")
	require.NoError(t, err)

	_, err = c.SetQuantity(ctx, 2, ptr(4))
	require.NoError(t, err)

	line, err := c.SetQuantity(ctx, 2, nil)
	require.NoError(t, err)
	assert.Nil(t, line.PhysicalQuantity)
	assert.Equal(t, models.StatusPending, line.Status)
}

func TestDiscard(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	assert.ErrorIs(t, c.Discard(ctx), count.ErrNotFound)

	_, err := c.StartSession(ctx, "Maria")
	require.NoError(t, err)
	require.NoError(t, c.Discard(ctx))

	_, err = c.StartSession(ctx, "Jose")
	require.NoError(t, err)
}

func TestListCounts_BadDate(t *testing.T) {
	c := newTestServer(t)

	_, err := c.ListCounts(context.Background(), "yesterday", "")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "YYYY-MM-DD")
}

func TestGetCount_NotFound(t *testing.T) {
	c := newTestServer(t)

	_, err := c.GetCount(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, count.ErrNotFound)
}

func TestStorageUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Service Unavailable","message":"Storage unavailable, try again"}`))
	}))
	defer server.Close()

	_, err := client.New(server.URL).Submit(context.Background(), true, "")
	assert.ErrorIs(t, err, count.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "Storage unavailable")
}

func TestConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := client.New(url).Inventory(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}
