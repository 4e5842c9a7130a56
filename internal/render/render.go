// Package render turns schedule boards and live cards into HTML.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/livematch"
	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/schedule"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data behind the full schedule page.
type Page struct {
	Title    string
	Query    string
	Schedule template.HTML
	Live     template.HTML
}

type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("render").Funcs(template.FuncMap{
		"logoURL":              logoURL,
		"emptyScheduleMessage": func() string { return schedule.EmptyMessage },
		"emptyLiveMessage":     func() string { return livematch.EmptyMessage },
		"noLinksLabel":         func() string { return livematch.NoLinksLabel },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Schedule renders the scheduled-feed region. An empty board renders the single
// "no matches available" block.
func (r *Renderer) Schedule(board schedule.Board) (template.HTML, error) {
	return r.fragment("schedule", board)
}

// ScheduleMessage renders a placeholder that replaces the whole scheduled region.
func (r *Renderer) ScheduleMessage(msg string) template.HTML {
	out, err := r.fragment("schedule_message", msg)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(msg))
	}
	return out
}

func (r *Renderer) Live(cards []livematch.Card) (template.HTML, error) {
	return r.fragment("live", cards)
}

func (r *Renderer) LiveMessage(msg string) template.HTML {
	out, err := r.fragment("live_message", msg)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(msg))
	}
	return out
}

func (r *Renderer) Page(w io.Writer, page Page) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := r.templates.ExecuteTemplate(buf, "page", page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := r.templates.ExecuteTemplate(buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// logoURL lets the inline placeholder GIF through the URL sanitizer; every other
// value is still filtered.
func logoURL(v string) any {
	if v == schedule.PlaceholderLogo {
		return template.URL(v)
	}
	return v
}
