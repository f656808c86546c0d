package category

import (
	"context"
	"log/slog"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// invalidateCache bumps the report log version after a mutation. A failed
// bump is logged and swallowed: serving a slightly stale report beats
// failing the write.
func invalidateCache(ctx context.Context, cache adapter.ReportCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "report cache invalidation failed", "error", err)
	}
}
