// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCountFile(t *testing.T) {
	input := `product_id,physical_quantity,observation
# shelf A
1,8,"two bags torn, returned"
2,5

3,,not found yet
`
	rows, err := readCountFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.EqualValues(t, 1, rows[0].ProductID)
	require.NotNil(t, rows[0].Physical)
	assert.EqualValues(t, 8, *rows[0].Physical)
	assert.Equal(t, "two bags torn, returned", rows[0].Observation)

	assert.EqualValues(t, 2, rows[1].ProductID)
	assert.Empty(t, rows[1].Observation)

	assert.Nil(t, rows[2].Physical)
	assert.Equal(t, "not found yet", rows[2].Observation)
}

func TestReadCountFile_WithoutHeader(t *testing.T) {
	rows, err := readCountFile(strings.NewReader("7,0\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 7, rows[0].ProductID)
	assert.EqualValues(t, 0, *rows[0].Physical)
}

func TestReadCountFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "no rows"},
		{"header only", "product_id,physical_quantity\n", "no rows"},
		{"negative", "1,-3\n", "non-negative"},
		{"fractional", "1,2.5\n", "non-negative"},
		{"bad id after first line", "1,2\nabc,3\n", "not an integer"},
		{"duplicate", "1,2\n1,3\n", "already listed"},
		{"too few fields", "1\n", "expected"},
		{"too many fields", "1,2,x,y\n", "expected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readCountFile(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
