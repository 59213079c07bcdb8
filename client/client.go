// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/models"
)

// DefaultBaseURL is used when no server is configured
const DefaultBaseURL = "http://localhost:3318"

// APIError is a non-2xx answer from the server. It unwraps to the count
// sentinel matching its status so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return count.ErrNotFound
	case http.StatusServiceUnavailable:
		return count.ErrStorageUnavailable
	default:
		return nil
	}
}

// Client talks to a stock count server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Inventory returns every product with its recorded stock.
func (c *Client) Inventory(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, http.MethodGet, "/inventory", nil, http.StatusOK, &products)
	return products, err
}

// StartSession opens a count for responsible.
func (c *Client) StartSession(ctx context.Context, responsible string) (models.SessionView, error) {
	var view models.SessionView
	err := c.do(ctx, http.MethodPost, "/counts/session",
		models.StartSessionRequest{Responsible: responsible}, http.StatusCreated, &view)
	return view, err
}

// Session returns the active count.
func (c *Client) Session(ctx context.Context) (models.SessionView, error) {
	var view models.SessionView
	err := c.do(ctx, http.MethodGet, "/counts/session", nil, http.StatusOK, &view)
	return view, err
}

// SetQuantity enters a physical quantity; nil clears it.
func (c *Client) SetQuantity(ctx context.Context, productID int64, quantity *int64) (models.CountLine, error) {
	var req models.SetQuantityRequest
	if quantity != nil {
		n := json.Number(strconv.FormatInt(*quantity, 10))
		req.PhysicalQuantity = &n
	}

	var line models.CountLine
	err := c.do(ctx, http.MethodPut, linePath(productID, "quantity"), req, http.StatusOK, &line)
	return line, err
}

func (c *Client) SetObservation(ctx context.Context, productID int64, observation string) (models.CountLine, error) {
	var line models.CountLine
	err := c.do(ctx, http.MethodPut, linePath(productID, "observation"),
		models.SetObservationRequest{Observation: observation}, http.StatusOK, &line)
	return line, err
}

// Submit records the active count. A count waiting for confirmation is
// not an error: the response carries OutcomeAwaitingConfirmation and the
// discrepant lines. Uncounted products come back as
// *count.IncompleteCountError.
func (c *Client) Submit(ctx context.Context, confirm bool, note string) (models.SubmitCountResponse, error) {
	body := models.SubmitCountRequest{Confirm: confirm, Note: note}

	resp, err := c.send(ctx, http.MethodPost, "/counts/session/submit", body)
	if err != nil {
		return models.SubmitCountResponse{}, err
	}
	defer resp.Body.Close()

	var out models.SubmitCountResponse
	switch resp.StatusCode {
	case http.StatusCreated, http.StatusConflict:
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return out, fmt.Errorf("failed to decode submit response: %w", err)
		}
		return out, nil
	case http.StatusUnprocessableEntity:
		var incomplete models.IncompleteCountResponse
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &incomplete); err == nil && len(incomplete.Missing) > 0 {
			missing := make([]count.ProductID, len(incomplete.Missing))
			for i, id := range incomplete.Missing {
				missing[i] = count.ProductID(id)
			}
			return out, &count.IncompleteCountError{Missing: missing}
		}
		return out, apiError(resp.StatusCode, raw)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return out, apiError(resp.StatusCode, raw)
	}
}

// Discard drops the active count without recording it.
func (c *Client) Discard(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/counts/session", nil, http.StatusNoContent, nil)
}

// ListCounts returns record summaries, most recent first. An empty date
// lists everything; tz names the zone the date is read in.
func (c *Client) ListCounts(ctx context.Context, date, tz string) ([]models.ReconciliationSummary, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	if tz != "" {
		query.Set("tz", tz)
	}

	path := "/counts"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var summaries []models.ReconciliationSummary
	err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &summaries)
	return summaries, err
}

func (c *Client) GetCount(ctx context.Context, id string) (models.Reconciliation, error) {
	var rec models.Reconciliation
	err := c.do(ctx, http.MethodGet, "/counts/"+url.PathEscape(id), nil, http.StatusOK, &rec)
	return rec, err
}

func linePath(productID int64, field string) string {
	return "/counts/session/lines/" + strconv.FormatInt(productID, 10) + "/" + field
}

// do sends body as JSON and decodes a response with the expected status into out.
func (c *Client) do(ctx context.Context, method, path string, body any, expected int, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expected {
		raw, _ := io.ReadAll(resp.Body)
		return apiError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reach %s: %w", c.baseURL, err)
	}
	return resp, nil
}

func apiError(status int, raw []byte) error {
	var body models.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &APIError{StatusCode: status, Message: body.Message}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(raw))}
}
