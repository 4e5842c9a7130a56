package schedule

import "context"

// Feed exposes the raw schedule export. The body is the snapshot every render works from.
type Feed interface {
	FetchRaw(ctx context.Context) ([]byte, error)
}
