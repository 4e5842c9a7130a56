package usecase

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/schedule"
	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/logging"
	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/tabular"
	"github.com/riskibarqy/jadwal-pertandingan/internal/render"
)

type ScheduleServiceConfig struct {
	Delimiter rune
	Location  *time.Location
	Now       func() time.Time
	Link      schedule.LinkFunc
}

// ScheduleService renders the scheduled feed. The feed body is the snapshot; every
// call re-parses it and classifies against a fresh clock reading.
type ScheduleService struct {
	feed      schedule.Feed
	renderer  *render.Renderer
	logger    *logging.Logger
	delimiter rune
	location  *time.Location
	now       func() time.Time
	link      schedule.LinkFunc
}

func NewScheduleService(feed schedule.Feed, renderer *render.Renderer, logger *logging.Logger, cfg ScheduleServiceConfig) *ScheduleService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ','
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &ScheduleService{
		feed:      feed,
		renderer:  renderer,
		logger:    logger,
		delimiter: cfg.Delimiter,
		location:  cfg.Location,
		now:       cfg.Now,
		link:      cfg.Link,
	}
}

func (s *ScheduleService) Matches(ctx context.Context) ([]schedule.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Matches")
	defer span.End()

	raw, err := s.feed.FetchRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule feed: %w", err)
	}

	text := string(raw)
	if missing := schedule.MissingColumns(tabular.Header(text, s.delimiter)); len(missing) > 0 {
		s.logger.WarnContext(ctx, "schedule feed header is missing columns", "missing", missing)
	}
	return schedule.FromRecords(tabular.Parse(text, s.delimiter)), nil
}

func (s *ScheduleService) Board(ctx context.Context, query string) (schedule.Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Board")
	defer span.End()

	matches, err := s.Matches(ctx)
	if err != nil {
		return schedule.Board{}, err
	}

	return schedule.BuildBoard(matches, query, s.now(), s.location, s.link), nil
}

// Render returns the scheduled region markup. Any failure collapses the whole region
// into the single failure message.
func (s *ScheduleService) Render(ctx context.Context, query string) template.HTML {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Render")
	defer span.End()

	board, err := s.Board(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "schedule feed unavailable", "error", err)
		return s.renderer.ScheduleMessage(schedule.FailedMessage)
	}

	out, err := s.renderer.Schedule(board)
	if err != nil {
		s.logger.ErrorContext(ctx, "render schedule failed", "error", err)
		return s.renderer.ScheduleMessage(schedule.FailedMessage)
	}
	return out
}
