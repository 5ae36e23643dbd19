package domain

import "context"

// CacheRepository defines the interface for the product record cache.
// Get reports both presence and TTL validity; a present-but-stale entry is
// left in place and treated as a miss by callers.
type CacheRepository interface {
	Get(key string) (record ProductRecord, ok bool, valid bool)
	Put(key string, record ProductRecord)
	Clear()
	Stats() CacheStats
}

// PageFetcher defines the interface for retrieving raw manufacturer pages.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// SpecExtractor defines the interface for pulling a product title and a
// categorized specification mapping out of raw page markup.
type SpecExtractor interface {
	Extract(html []byte, selectors SelectorSet) (title string, specs map[string]map[string]string, err error)
}
