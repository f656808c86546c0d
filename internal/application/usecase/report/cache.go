package report

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// cacheKey joins the report name, the current log version and the request
// discriminants into a stable cache key. Version failures disable caching
// for the request instead of failing it.
func cacheKey(ctx context.Context, cache adapter.ReportCache, report string, parts ...string) (string, bool) {
	if cache == nil {
		return "", false
	}
	version, err := cache.Version(ctx)
	if err != nil {
		return "", false
	}
	elems := append([]string{"report", report, "v" + strconv.FormatInt(version, 10)}, parts...)
	return strings.Join(elems, "|"), true
}

// cacheLookup deserializes a cached payload into out. It returns false on a
// miss or on any cache failure, so callers always fall back to computing.
func cacheLookup(ctx context.Context, cache adapter.ReportCache, key string, out any) bool {
	payload, ok, err := cache.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(payload, out) == nil
}

// cacheStore serializes and stores a computed payload. Failures are ignored;
// the cache is an optimization, never a source of truth.
func cacheStore(ctx context.Context, cache adapter.ReportCache, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = cache.Set(ctx, key, payload)
}

// criteriaKey renders filter criteria into cache key parts.
func criteriaKey(criteria FilterCriteria) string {
	var b strings.Builder
	b.WriteString(string(criteria.Range))
	b.WriteString("|q=")
	b.WriteString(strings.ToLower(strings.TrimSpace(criteria.SearchTerm)))
	b.WriteString("|s=")
	if criteria.CustomStart != nil {
		b.WriteString(criteria.CustomStart.Format(time.RFC3339))
	}
	b.WriteString("|e=")
	if criteria.CustomEnd != nil {
		b.WriteString(criteria.CustomEnd.Format(time.RFC3339))
	}
	return b.String()
}
