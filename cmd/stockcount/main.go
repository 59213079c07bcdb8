// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command stockcount drives a stock count server from the terminal: it
// lists the inventory, runs a count from a CSV file, and browses the
// history of recorded counts.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
