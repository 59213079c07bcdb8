// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// countRow is one line of a counts file. A nil Physical leaves the
// product uncounted.
type countRow struct {
	ProductID   int64
	Physical    *int64
	Observation string
}

// readCountFile parses product_id,physical_quantity[,observation] rows.
// A header row whose first field is not a number is skipped, as are
// blank lines and lines starting with '#'.
func readCountFile(r io.Reader) ([]countRow, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []countRow
	seen := make(map[int64]int)
	for lineNo := 1; ; lineNo++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read counts file: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) < 2 || len(record) > 3 {
			return nil, fmt.Errorf("line %d: expected product_id,physical_quantity[,observation], got %d field(s)", line, len(record))
		}

		id, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			if lineNo == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: product_id %q is not an integer", line, record[0])
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("line %d: product %d already listed on line %d", line, id, prev)
		}
		seen[id] = line

		row := countRow{ProductID: id}
		if raw := strings.TrimSpace(record[1]); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: physical_quantity %q must be a non-negative integer", line, raw)
			}
			row.Physical = &n
		}
		if len(record) == 3 {
			row.Observation = strings.TrimSpace(record[2])
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("counts file has no rows")
	}
	return rows, nil
}
