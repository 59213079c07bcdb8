// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client is a typed HTTP client for the stock count API, used by
// the stockcount command. Failed calls return *APIError, which unwraps to
// count.ErrNotFound or count.ErrStorageUnavailable where the status says so.
package client
