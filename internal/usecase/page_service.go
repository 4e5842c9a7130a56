package usecase

import (
	"context"
	"html/template"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/jadwal-pertandingan/internal/render"
)

const defaultPageTitle = "Jadwal Pertandingan"

// PageService assembles the full page from both feeds. The feeds are independent and
// each writes only its own region, so they render concurrently.
type PageService struct {
	schedule *ScheduleService
	live     *LiveService
	title    string
}

func NewPageService(scheduleService *ScheduleService, liveService *LiveService, title string) *PageService {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultPageTitle
	}
	return &PageService{
		schedule: scheduleService,
		live:     liveService,
		title:    title,
	}
}

func (s *PageService) Build(ctx context.Context, query string) render.Page {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.Build")
	defer span.End()

	var scheduleHTML, liveHTML template.HTML
	var wg conc.WaitGroup
	wg.Go(func() {
		scheduleHTML = s.schedule.Render(ctx, query)
	})
	wg.Go(func() {
		liveHTML = s.live.Render(ctx)
	})
	wg.Wait()

	return render.Page{
		Title:    s.title,
		Query:    query,
		Schedule: scheduleHTML,
		Live:     liveHTML,
	}
}
