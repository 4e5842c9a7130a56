package app

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/jadwal-pertandingan/external/feeds"
	"github.com/riskibarqy/jadwal-pertandingan/internal/config"
	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/livematch"
	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/schedule"
	cacherepo "github.com/riskibarqy/jadwal-pertandingan/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/jadwal-pertandingan/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/jadwal-pertandingan/internal/platform/cache"
	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/logging"
	"github.com/riskibarqy/jadwal-pertandingan/internal/render"
	"github.com/riskibarqy/jadwal-pertandingan/internal/usecase"
)

const redisKeyPrefix = "jadwal-pertandingan:"

// Server bundles the HTTP server with whatever its dependencies hold open.
type Server struct {
	HTTP  *http.Server
	close []func() error
}

// Close releases dependencies after the HTTP server has shut down.
func (s *Server) Close() error {
	var firstErr error
	for _, fn := range s.close {
		if err := fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}

	out := &Server{}
	scheduleFeed, liveFeed := buildFeeds(cfg, logger, out)

	scheduleSvc := usecase.NewScheduleService(scheduleFeed, renderer, logger, usecase.ScheduleServiceConfig{
		Delimiter: cfg.ScheduleFeedDelimiter,
		Location:  cfg.Timezone,
	})
	liveSvc := usecase.NewLiveService(liveFeed, renderer, logger, cfg.Timezone)
	pageSvc := usecase.NewPageService(scheduleSvc, liveSvc, "")

	handler := httpapi.NewHandler(pageSvc, scheduleSvc, liveSvc, renderer, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	out.HTTP = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return out, nil
}

func buildFeeds(cfg config.Config, logger *logging.Logger, srv *Server) (schedule.Feed, livematch.Feed) {
	scheduleClient := feeds.NewScheduleClient(feeds.Config{
		URL:            cfg.ScheduleFeedURL,
		Timeout:        cfg.FeedTimeout,
		MaxRetries:     cfg.FeedMaxRetries,
		Logger:         logger,
		CircuitBreaker: cfg.FeedCircuit,
	})
	liveClient := feeds.NewLiveClient(feeds.Config{
		URL:            cfg.LiveFeedURL,
		Timeout:        cfg.FeedTimeout,
		MaxRetries:     cfg.FeedMaxRetries,
		Logger:         logger,
		CircuitBreaker: cfg.FeedCircuit,
	})

	if !cfg.CacheEnabled {
		logger.Info("feed cache disabled", "reason", "CACHE_ENABLED=false")
		return scheduleClient, liveClient
	}

	var scheduleCache, liveCache basecache.Cache
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		srv.close = append(srv.close, client.Close)
		scheduleCache = basecache.NewRedisStore(client, redisKeyPrefix, cfg.CacheScheduleTTL, logger)
		liveCache = basecache.NewRedisStore(client, redisKeyPrefix, cfg.CacheLiveTTL, logger)
	default:
		scheduleCache = basecache.NewStore(cfg.CacheScheduleTTL)
		liveCache = basecache.NewStore(cfg.CacheLiveTTL)
	}

	logger.Info("feed cache enabled",
		"backend", cfg.CacheBackend,
		"schedule_ttl", cfg.CacheScheduleTTL.String(),
		"live_ttl", cfg.CacheLiveTTL.String(),
	)

	return cacherepo.NewScheduleFeed(scheduleClient, scheduleCache), cacherepo.NewLiveFeed(liveClient, liveCache)
}
