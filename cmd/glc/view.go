package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/glc/pkg/render"
	"github.com/taigrr/glc/pkg/session"
)

// viewKeys are the key names forwarded to session.KeyEvent.
var viewKeys = []string{
	"d", "a", "w", "s", "r", "t",
	"1", "2", "3", "4", "5", "6",
	"b", "esc", "ctrl+c",
}

func newViewCmd() *cobra.Command {
	var (
		f   sceneFlags
		fps int
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Interactive viewer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, r, err := f.build()
			if err != nil {
				return err
			}
			return runView(cmd.Context(), sess, r, fps)
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&fps, "fps", 30, "screen refresh rate")
	return cmd
}

// keyEvent translates a terminal key press into a session event.
func keyEvent(ev uv.KeyPressEvent) (session.Event, bool) {
	for _, name := range viewKeys {
		if ev.MatchString(name) {
			return session.KeyEvent(name)
		}
	}
	return nil, false
}

func runView(ctx context.Context, sess *session.Session, r *render.Renderer, fps int) error {
	fps = max(fps, 1)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	h := newHUD(fps)
	r.OnProgress(h.progress)
	defer r.OnProgress(nil)

	results := make(chan render.Result, 1)
	sched := render.NewScheduler(ctx, r, func(res render.Result) {
		select {
		case results <- res:
		case <-ctx.Done():
		}
	})

	cleanup := func() {
		cancel()
		sched.Wait()
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	request := func() {
		frame, err := sess.Frame()
		if err != nil {
			h.status = err.Error()
			return
		}
		h.status = ""
		h.begin()
		sched.Request(frame)
	}
	request()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-term.Events():
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				if err := term.Resize(width, height); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
			case uv.KeyPressEvent:
				e, ok := keyEvent(ev)
				if !ok {
					continue
				}
				res := sess.Apply(e)
				if res.Quit {
					return nil
				}
				if res.Rerender {
					request()
				}
			}

		case res := <-results:
			if res.Err != nil {
				// Keep showing the previous raster.
				h.status = res.Err.Error()
			}

		case <-ticker.C:
			h.tick()
			screen := uv.Rect(0, 0, width, height)
			term.Erase()
			if cur := r.Current(); cur != nil {
				body := uv.Rect(0, 1, width, max(height-2, 0))
				cur.Draw(term, render.FitArea(cur.Width, cur.Height, body))
			}
			h.draw(term, screen, sess, sched.Busy())
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
