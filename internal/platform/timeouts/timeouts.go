// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// StatsQuery caps the time allowed for a single dashboard statistics
// aggregation, covering every count query behind it.
const StatsQuery = 2 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ChildStop limits how long the entrypoint supervisor waits for a child
// process to exit after forwarding a termination signal.
const ChildStop = 10 * time.Second
