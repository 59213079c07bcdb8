// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - StartSessionRequest: responsible
  - SetQuantityRequest: physical_quantity (number or null)
  - SetObservationRequest: observation
  - SubmitCountRequest: confirm, note

Requests are checked with Validate, which applies go-playground/validator
struct tags and reports fields by their JSON names:

	if err := models.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	}

# Response Types

  - Product: one snapshot entry
  - SessionView: the active count with per-line variance and summary
  - SubmitCountResponse: outcome, id, discrepancies
  - IncompleteCountResponse: missing product ids
  - ErrorResponse: error, message

# Domain Types

  - ReconciliationSummary: history listing entry
  - Reconciliation: a stored count with its details
  - ReconciliationDetail: recorded, physical and variance for one product

# Constants

Line status values:

	StatusPending = "pending"
	StatusExact   = "exact"
	StatusShort   = "short"
	StatusOver    = "over"

Submission outcomes:

	OutcomeSubmitted            = "submitted"
	OutcomeAwaitingConfirmation = "awaiting_confirmation"
*/
package models
