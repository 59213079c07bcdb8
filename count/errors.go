// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySnapshot      = errors.New("snapshot contains no products")
	ErrUnknownProduct     = errors.New("product is not part of the count session")
	ErrInvalidQuantity    = errors.New("physical quantity must be a non-negative integer")
	ErrIncompleteCount    = errors.New("count is incomplete")
	ErrStorageUnavailable = errors.New("record store unavailable")
	ErrNotFound           = errors.New("reconciliation record not found")
)

// IncompleteCountError lists the products that still have no physical quantity.
type IncompleteCountError struct {
	Missing []ProductID
}

func (e *IncompleteCountError) Error() string {
	ids := make([]string, len(e.Missing))
	for i, id := range e.Missing {
		ids[i] = fmt.Sprint(int64(id))
	}
	return fmt.Sprintf("%s: %d product(s) not counted [%s]", ErrIncompleteCount, len(e.Missing), strings.Join(ids, ", "))
}

func (e *IncompleteCountError) Unwrap() error {
	return ErrIncompleteCount
}
