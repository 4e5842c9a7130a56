package usecase

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/livematch"
	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/logging"
	"github.com/riskibarqy/jadwal-pertandingan/internal/render"
)

type LiveService struct {
	feed     livematch.Feed
	renderer *render.Renderer
	logger   *logging.Logger
	location *time.Location
}

func NewLiveService(feed livematch.Feed, renderer *render.Renderer, logger *logging.Logger, location *time.Location) *LiveService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if location == nil {
		location = time.Local
	}

	return &LiveService{
		feed:     feed,
		renderer: renderer,
		logger:   logger,
		location: location,
	}
}

func (s *LiveService) Cards(ctx context.Context) ([]livematch.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveService.Cards")
	defer span.End()

	raw, err := s.feed.FetchRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch live feed: %w", err)
	}

	matches, err := livematch.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	cards, err := livematch.BuildCards(matches, s.location)
	if err != nil {
		return nil, fmt.Errorf("build live cards: %w", err)
	}
	return cards, nil
}

// Render returns the live region markup. Fetch and shape failures share one message;
// an empty list renders its own message.
func (s *LiveService) Render(ctx context.Context) template.HTML {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveService.Render")
	defer span.End()

	cards, err := s.Cards(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "live feed unavailable", "error", err)
		return s.renderer.LiveMessage(livematch.FailedMessage)
	}

	out, err := s.renderer.Live(cards)
	if err != nil {
		s.logger.ErrorContext(ctx, "render live matches failed", "error", err)
		return s.renderer.LiveMessage(livematch.FailedMessage)
	}
	return out
}
