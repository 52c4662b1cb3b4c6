// Package timeouts defines shared timeout constants for the storefront
// process so HTTP boundaries do not drift from one another.
package timeouts

import "time"

// BackendRequest caps one storefront call to the backend REST API.
const BackendRequest = 10 * time.Second

// CacheRequest caps one catalog cache read or write.
const CacheRequest = 500 * time.Millisecond

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionSweep is the interval between expired session purges.
const SessionSweep = 15 * time.Minute
