package pagecache

import (
	"context"
	"time"
)

// IndexKey is the single key under which the rendered global index is
// cached. The index render does not branch on requester or query parameters,
// so one key covers every caller; see the feed controller.
const IndexKey = "index_page"

// IndexTTL bounds how stale the cached index may be. Writes do not
// invalidate the cache; staleness up to the TTL is accepted.
const IndexTTL = 20 * time.Second

// PageCache stores fully rendered response bodies. Get returns ok=false on a
// miss or an expired entry.
type PageCache interface {
	Get(ctx context.Context, key string) (body []byte, ok bool, err error)
	Put(ctx context.Context, key string, body []byte, ttl time.Duration) error
	// Flush drops every entry. Maintenance and tests only; no request path
	// calls it.
	Flush(ctx context.Context) error
}
