package main

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taigrr/glc/pkg/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A56E0")).
			Padding(0, 1)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C"))
)

const helpLine = "wasd move · r/t rotate · 1-3 projection · 4-6 object · b background · esc quit"

// statusLine names the active projection and object, title-cased.
func statusLine(sess *session.Session) string {
	title := cases.Title(language.English)
	return fmt.Sprintf("%s · %s", title.String(sess.Projection.String()), title.String(sess.ObjectName()))
}

// hud draws the title bar and the eased render progress bar.
type hud struct {
	spring   harmonica.Spring
	shown    float64
	velocity float64

	done, total atomic.Int64
	status      string
}

func newHUD(fps int) *hud {
	return &hud{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// begin resets the bar for a new render.
func (h *hud) begin() {
	h.done.Store(0)
	h.total.Store(0)
	h.shown, h.velocity = 0, 0
}

// progress records completed rows. It is called from render workers.
func (h *hud) progress(done, total int) {
	h.total.Store(int64(total))
	for {
		cur := h.done.Load()
		if int64(done) <= cur || h.done.CompareAndSwap(cur, int64(done)) {
			return
		}
	}
}

// target is the fraction of rows finished so far.
func (h *hud) target() float64 {
	total := h.total.Load()
	if total == 0 {
		return 0
	}
	return float64(h.done.Load()) / float64(total)
}

// tick advances the bar animation by one frame.
func (h *hud) tick() {
	h.shown, h.velocity = h.spring.Update(h.shown, h.velocity, h.target())
	h.shown = math.Max(0, math.Min(1, h.shown))
}

func (h *hud) draw(scr uv.Screen, area uv.Rectangle, sess *session.Session, busy bool) {
	if area.Dy() < 1 {
		return
	}
	top := uv.Rect(area.Min.X, area.Min.Y, area.Dx(), 1)
	uv.NewStyledString(titleStyle.Render("glc") + " " + statusLine(sess)).Draw(scr, top)

	if area.Dy() < 2 {
		return
	}
	bottom := uv.Rect(area.Min.X, area.Max.Y-1, area.Dx(), 1)
	var line string
	switch {
	case h.status != "":
		line = errStyle.Render(h.status)
	case busy:
		line = progressBar(min(area.Dx(), 40), h.shown)
	default:
		line = hintStyle.Render(helpLine)
	}
	uv.NewStyledString(line).Draw(scr, bottom)
}

// progressBar renders frac in [0,1] as a bar of width cells.
func progressBar(width int, frac float64) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(frac * float64(width)))
	filled = max(0, min(width, filled))
	return barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}
