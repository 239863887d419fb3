// Package window shows the glc raster in a desktop window.
package window

import (
	"context"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/taigrr/glc/pkg/render"
	"github.com/taigrr/glc/pkg/session"
)

// keys maps polled keyboard keys to the names session.KeyEvent expects.
var keys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyD, "d"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyT, "t"},
	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeyDigit4, "4"},
	{ebiten.KeyDigit5, "5"},
	{ebiten.KeyDigit6, "6"},
	{ebiten.KeyB, "b"},
	{ebiten.KeyEscape, "esc"},
}

// Game implements ebiten.Game. Each finished raster is uploaded into a
// texture that covers the whole window.
type Game struct {
	sess      *session.Session
	renderer  *render.Renderer
	scheduler *render.Scheduler
	cancel    context.CancelFunc

	img   *ebiten.Image
	shown *render.Raster

	mu     sync.Mutex
	status string
}

// New creates the game and requests the first frame.
func New(ctx context.Context, sess *session.Session, r *render.Renderer) *Game {
	ctx, cancel := context.WithCancel(ctx)
	g := &Game{sess: sess, renderer: r, cancel: cancel}
	g.scheduler = render.NewScheduler(ctx, r, g.onResult)
	g.request()
	return g
}

func (g *Game) onResult(res render.Result) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if res.Err != nil {
		g.status = res.Err.Error()
		return
	}
	g.status = ""
}

func (g *Game) setStatus(s string) {
	g.mu.Lock()
	g.status = s
	g.mu.Unlock()
}

func (g *Game) request() {
	f, err := g.sess.Frame()
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	g.scheduler.Request(f)
}

// Update polls the keyboard and schedules a render when the session changed.
func (g *Game) Update() error {
	rerender := false
	for _, k := range keys {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		ev, ok := session.KeyEvent(k.name)
		if !ok {
			continue
		}
		res := g.sess.Apply(ev)
		if res.Quit {
			return ebiten.Termination
		}
		rerender = rerender || res.Rerender
	}
	if rerender {
		g.request()
	}
	return nil
}

// Draw uploads the current raster when it changed and draws it.
func (g *Game) Draw(screen *ebiten.Image) {
	if cur := g.renderer.Current(); cur != nil && cur != g.shown {
		if g.img == nil {
			g.img = ebiten.NewImage(cur.Width, cur.Height)
		}
		g.img.WritePixels(cur.ToImage().Pix)
		g.shown = cur
	}
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}

	g.mu.Lock()
	status := g.status
	g.mu.Unlock()
	label := fmt.Sprintf("%s / %s", g.sess.Projection, g.sess.ObjectName())
	if status != "" {
		label += "\n" + status
	}
	ebitenutil.DebugPrintAt(screen, label, 4, 4)
}

// Layout keeps the logical screen at the raster size; ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	opts := g.renderer.Options()
	return opts.Width, opts.Height
}

// Close cancels any render in flight and waits for it to stop.
func (g *Game) Close() {
	g.cancel()
	g.scheduler.Wait()
}

// Run opens a window scale times the raster size and blocks until it is
// closed or the session quits.
func Run(g *Game, scale int) error {
	defer g.Close()

	opts := g.renderer.Options()
	scale = max(scale, 1)
	ebiten.SetWindowTitle("glc")
	ebiten.SetWindowSize(opts.Width*scale, opts.Height*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
