package livematch

import "context"

// Feed exposes the raw live-match API response.
type Feed interface {
	FetchRaw(ctx context.Context) ([]byte, error)
}
