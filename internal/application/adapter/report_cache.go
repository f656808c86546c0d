// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import "context"

// ReportCache memoizes derived report payloads keyed on the filter criteria
// and the current log version. Every mutation to transactions, accounts or
// categories must bump the version so stale aggregates are never served.
type ReportCache interface {
	// Version returns the current log version counter.
	Version(ctx context.Context) (int64, error)

	// Invalidate bumps the log version, orphaning all cached payloads.
	Invalidate(ctx context.Context) error

	// Get retrieves a cached payload. The second return value reports
	// whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload under the given key.
	Set(ctx context.Context, key string, payload []byte) error
}
