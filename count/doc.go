// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package count implements the physical inventory reconciliation workflow.

# Sessions

A Session is built from a stock snapshot and holds one line per product:

	s, err := count.NewSession(snapshot, "maria")
	err = s.SetPhysicalQuantity(12, count.Of(8))
	err = s.SetObservation(12, "two boxes crushed")

Lines are never added or removed. Editing one line never touches another,
and invalid edits leave the session unchanged.

# Variance

Variance is physical minus recorded. It stays undefined until the physical
quantity is entered, so an uncounted product never looks like an exact match:

	v := count.Evaluate(product, line)
	n, ok := v.Value()   // ok is false while uncounted
	v.Class()            // pending, exact, short or over

# Submission

Gate.Submit checks completeness first, then discrepancies:

	res, err := gate.Submit(ctx, s, count.SubmitOptions{Confirmed: false})
	if res.Status == count.StatusAwaitingConfirmation {
		// show res.Discrepancies, ask the operator, call again with Confirmed: true
	}

Storage failures wrap ErrStorageUnavailable and leave the session intact.
Nothing is retried automatically.

# History

History lists persisted records most recent first, optionally restricted
to one calendar date in the viewer's time zone:

	day, _ := count.ParseDay("2025-06-01")
	summaries, err := history.List(ctx, &day)
*/
package count
