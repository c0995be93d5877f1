package leytext

import "context"

// Fetcher retrieves the raw HTML of the source document.
type Fetcher interface {
	// Fetch performs an HTTP GET against the URL and returns the response
	// body. The context controls timeout and cancellation. Timeouts are
	// reported with code ETIMEOUT, other failures with EFETCH.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
