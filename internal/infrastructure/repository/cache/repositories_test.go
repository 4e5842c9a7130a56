package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	livematchmock "github.com/riskibarqy/jadwal-pertandingan/internal/mocks/domain/livematch"
	schedulemock "github.com/riskibarqy/jadwal-pertandingan/internal/mocks/domain/schedule"
	basecache "github.com/riskibarqy/jadwal-pertandingan/internal/platform/cache"
)

func TestScheduleFeed_ServesSnapshotFromCache(t *testing.T) {
	t.Parallel()

	next := schedulemock.NewFeed(t)
	next.On("FetchRaw", mock.Anything).Return([]byte("liga,tanggal"), nil).Once()

	repo := NewScheduleFeed(next, basecache.NewStore(time.Minute))
	for i := 0; i < 3; i++ {
		raw, err := repo.FetchRaw(context.Background())
		if err != nil {
			t.Fatalf("FetchRaw error: %v", err)
		}
		if string(raw) != "liga,tanggal" {
			t.Fatalf("unexpected snapshot %q", raw)
		}
	}
}

func TestLiveFeed_FailuresAreNotCached(t *testing.T) {
	t.Parallel()

	errDown := errors.New("upstream down")
	next := livematchmock.NewFeed(t)
	next.On("FetchRaw", mock.Anything).Return(nil, errDown).Once()
	next.On("FetchRaw", mock.Anything).Return([]byte(`{"data":{"list":[]}}`), nil).Once()

	store := basecache.NewStore(time.Minute)
	repo := NewLiveFeed(next, store)

	if _, err := repo.FetchRaw(context.Background()); !errors.Is(err, errDown) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	raw, err := repo.FetchRaw(context.Background())
	if err != nil {
		t.Fatalf("FetchRaw error: %v", err)
	}
	if string(raw) != `{"data":{"list":[]}}` {
		t.Fatalf("unexpected body %q", raw)
	}
}

func TestFeeds_UseSeparateKeys(t *testing.T) {
	t.Parallel()

	store := basecache.NewStore(time.Minute)

	scheduleNext := schedulemock.NewFeed(t)
	scheduleNext.On("FetchRaw", mock.Anything).Return([]byte("csv"), nil).Once()
	liveNext := livematchmock.NewFeed(t)
	liveNext.On("FetchRaw", mock.Anything).Return([]byte("json"), nil).Once()

	scheduleRaw, _ := NewScheduleFeed(scheduleNext, store).FetchRaw(context.Background())
	liveRaw, _ := NewLiveFeed(liveNext, store).FetchRaw(context.Background())
	if string(scheduleRaw) != "csv" || string(liveRaw) != "json" {
		t.Fatalf("feeds share a cache entry: schedule=%q live=%q", scheduleRaw, liveRaw)
	}
}
