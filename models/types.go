// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// Line status values
const (
	StatusPending = "pending"
	StatusExact   = "exact"
	StatusShort   = "short"
	StatusOver    = "over"
)

// Submission outcome values
const (
	OutcomeSubmitted            = "submitted"
	OutcomeAwaitingConfirmation = "awaiting_confirmation"
)

// Request types

type StartSessionRequest struct {
	Responsible string `json:"responsible" validate:"required,notblank,max=128"`
}

// nil clears the entered quantity. The number is kept as text so large
// integers are not rounded through float64.
type SetQuantityRequest struct {
	PhysicalQuantity *json.Number `json:"physical_quantity"`
}

type SetObservationRequest struct {
	Observation string `json:"observation" validate:"max=2000"`
}

type SubmitCountRequest struct {
	Confirm bool   `json:"confirm"`
	Note    string `json:"note" validate:"max=2000"`
}

// Response types

type Product struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Stock       int64  `json:"stock"`
}

type CountLine struct {
	ProductID        int64  `json:"product_id"`
	Code             string `json:"code"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	RecordedQuantity int64  `json:"recorded_quantity"`
	PhysicalQuantity *int64 `json:"physical_quantity"`
	Variance         *int64 `json:"variance"`
	Status           string `json:"status"`
	Observation      string `json:"observation"`
	HasObservation   bool   `json:"has_observation"`
}

type SessionSummary struct {
	Total       int   `json:"total"`
	Counted     int   `json:"counted"`
	Pending     int   `json:"pending"`
	Exact       int   `json:"exact"`
	Short       int   `json:"short"`
	Over        int   `json:"over"`
	NetVariance int64 `json:"net_variance"`
}

type SessionView struct {
	Responsible string         `json:"responsible"`
	StartedAt   time.Time      `json:"started_at"`
	Lines       []CountLine    `json:"lines"`
	Summary     SessionSummary `json:"summary"`
}

type SubmitCountResponse struct {
	Outcome       string      `json:"outcome"`
	ID            string      `json:"id,omitempty"`
	Message       string      `json:"message"`
	Discrepancies []CountLine `json:"discrepancies,omitempty"`
}

// IncompleteCountResponse is returned with 422 when lines are still uncounted
type IncompleteCountResponse struct {
	Error   string  `json:"error"`
	Message string  `json:"message"`
	Missing []int64 `json:"missing"`
}

// Domain types

type ReconciliationSummary struct {
	ID             string    `json:"id"`
	CountedAt      time.Time `json:"counted_at"`
	HasDifferences bool      `json:"has_differences"`
	Note           *string   `json:"note,omitempty"`
}

type ReconciliationDetail struct {
	ProductID        int64  `json:"product_id"`
	Code             string `json:"code"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	RecordedQuantity int64  `json:"recorded_quantity"`
	PhysicalQuantity int64  `json:"physical_quantity"`
	Variance         int64  `json:"variance"`
	Status           string `json:"status"`
	Observation      string `json:"observation"`
}

type Reconciliation struct {
	ID             string                 `json:"id"`
	CountedAt      time.Time              `json:"counted_at"`
	Responsible    string                 `json:"responsible"`
	HasDifferences bool                   `json:"has_differences"`
	Note           *string                `json:"note,omitempty"`
	Details        []ReconciliationDetail `json:"details"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
