package cache

import (
	"context"

	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/livematch"
	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/schedule"
	basecache "github.com/riskibarqy/jadwal-pertandingan/internal/platform/cache"
)

const (
	scheduleFeedKey = "feed:schedule"
	liveFeedKey     = "feed:live"
)

// ScheduleFeed keeps the last schedule export so re-filtering does not refetch.
type ScheduleFeed struct {
	next  schedule.Feed
	cache basecache.Cache
}

func NewScheduleFeed(next schedule.Feed, cache basecache.Cache) *ScheduleFeed {
	return &ScheduleFeed{next: next, cache: cache}
}

func (r *ScheduleFeed) FetchRaw(ctx context.Context) ([]byte, error) {
	return r.cache.GetOrLoad(ctx, scheduleFeedKey, r.next.FetchRaw)
}

type LiveFeed struct {
	next  livematch.Feed
	cache basecache.Cache
}

func NewLiveFeed(next livematch.Feed, cache basecache.Cache) *LiveFeed {
	return &LiveFeed{next: next, cache: cache}
}

func (r *LiveFeed) FetchRaw(ctx context.Context) ([]byte, error) {
	return r.cache.GetOrLoad(ctx, liveFeedKey, r.next.FetchRaw)
}
