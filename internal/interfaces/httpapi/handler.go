package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/logging"
	"github.com/riskibarqy/jadwal-pertandingan/internal/render"
	"github.com/riskibarqy/jadwal-pertandingan/internal/usecase"
)

type Handler struct {
	pageService     *usecase.PageService
	scheduleService *usecase.ScheduleService
	liveService     *usecase.LiveService
	renderer        *render.Renderer
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	pageService *usecase.PageService,
	scheduleService *usecase.ScheduleService,
	liveService *usecase.LiveService,
	renderer *render.Renderer,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		pageService:     pageService,
		scheduleService: scheduleService,
		liveService:     liveService,
		renderer:        renderer,
		logger:          logger,
		validator:       validator.New(),
	}
}

type scheduleQuery struct {
	Query string `validate:"max=100"`
}

func (h *Handler) parseScheduleQuery(ctx context.Context, r *http.Request) (string, error) {
	payload := scheduleQuery{Query: r.URL.Query().Get("q")}
	if err := h.validateRequest(ctx, payload); err != nil {
		return "", err
	}
	return payload.Query, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Page")
	defer span.End()

	query, err := h.parseScheduleQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page := h.pageService.Build(ctx, query)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Page(w, page); err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "error", err)
		writeInternalError(ctx, w)
	}
}

func (h *Handler) ScheduleFragment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleFragment")
	defer span.End()

	query, err := h.parseScheduleQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeHTML(ctx, w, http.StatusOK, h.scheduleService.Render(ctx, query))
}

func (h *Handler) LiveFragment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveFragment")
	defer span.End()

	writeHTML(ctx, w, http.StatusOK, h.liveService.Render(ctx))
}

func (h *Handler) ScheduleJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleJSON")
	defer span.End()

	query, err := h.parseScheduleQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.scheduleService.Board(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "get schedule board failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleBoardDTO{
		Query:    query,
		Empty:    board.Empty(),
		Sections: board.Sections,
	})
}

func (h *Handler) LiveJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveJSON")
	defer span.End()

	cards, err := h.liveService.Cards(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get live cards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, liveListDTO{
		Items: cards,
		Total: len(cards),
	})
}
