package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/glc/pkg/glc"
	"github.com/taigrr/glc/pkg/math3d"
	"github.com/taigrr/glc/pkg/models"
	"github.com/taigrr/glc/pkg/render"
	"github.com/taigrr/glc/pkg/session"
)

// sceneFlags are the flags shared by every subcommand: raster options and
// the initial session state.
type sceneFlags struct {
	projection string
	object     string
	mesh       string
	fit        float64
	size       string
	clip       string
	zOffset    float64
	tx, ty     float64
	rotateX    float64
	rotateY    float64
	bg         string
	seed       uint64
	workers    int
	verbose    bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.projection, "projection", "p", "perspective", "camera projection (perspective, orthogonal, pushbroom)")
	fs.StringVar(&f.object, "object", "cube", "built-in object (cube, triangle, teapot)")
	fs.StringVarP(&f.mesh, "mesh", "m", "", "render an OBJ/GLB file instead of a built-in object")
	fs.Float64Var(&f.fit, "fit", 1, "scale --mesh so its largest dimension equals this (0 keeps file units)")
	fs.StringVar(&f.size, "size", "256x256", "raster size in pixels (WxH or N)")
	fs.StringVar(&f.clip, "clip", "5x5", "world span covered by the raster (WxH or N)")
	fs.Float64Var(&f.zOffset, "z-offset", glc.DefaultZOffset, "z shift applied after the scene transform")
	fs.Float64Var(&f.tx, "tx", 0, "initial translation along X")
	fs.Float64Var(&f.ty, "ty", 0, "initial translation along Y")
	fs.Float64Var(&f.rotateX, "rotate-x", 0, "initial rotation around X in degrees")
	fs.Float64Var(&f.rotateY, "rotate-y", 0, "initial rotation around Y in degrees")
	fs.StringVar(&f.bg, "bg", "white", "background color (R,G,B, #rrggbb, white, black or random)")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for random backgrounds (0 uses the clock)")
	fs.IntVarP(&f.workers, "workers", "j", 0, "rows rendered in parallel (0 = one per CPU)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log render timings to stderr")
}

// options converts the raster flags into render options.
func (f *sceneFlags) options() (render.Options, error) {
	opts := render.DefaultOptions()

	w, h, err := parseIntPair(f.size)
	if err != nil {
		return opts, fmt.Errorf("--size: %w", err)
	}
	cw, ch, err := parseFloatPair(f.clip)
	if err != nil {
		return opts, fmt.Errorf("--clip: %w", err)
	}

	opts.Width, opts.Height = w, h
	opts.ClipWidth, opts.ClipHeight = cw, ch
	opts.ZOffset = f.zOffset
	opts.Workers = f.workers
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// session builds the initial session from the flags.
func (f *sceneFlags) session() (*session.Session, error) {
	proj, err := glc.ParseProjection(f.projection)
	if err != nil {
		return nil, fmt.Errorf("--projection: %w", err)
	}
	obj, err := models.ParseObject(f.object)
	if err != nil {
		return nil, fmt.Errorf("--object: %w", err)
	}

	seed := f.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sess := session.New(models.NewLibrary(f.fit), seed)
	sess.Projection = proj
	sess.Object = obj
	sess.CustomPath = f.mesh
	sess.State = glc.SceneState{
		Translation: math3d.V3(f.tx, f.ty, 0),
		RotateX:     f.rotateX,
		RotateY:     f.rotateY,
	}

	switch strings.ToLower(f.bg) {
	case "random":
		sess.Apply(session.BackgroundEvent{})
	default:
		c, err := parseColor(f.bg)
		if err != nil {
			return nil, fmt.Errorf("--bg: %w", err)
		}
		sess.Background = c
	}
	return sess, nil
}

// setupLogging installs a stderr logger when --verbose is set.
func (f *sceneFlags) setupLogging() {
	if !f.verbose {
		return
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// build prepares the session and renderer for a subcommand.
func (f *sceneFlags) build() (*session.Session, *render.Renderer, error) {
	f.setupLogging()
	opts, err := f.options()
	if err != nil {
		return nil, nil, err
	}
	sess, err := f.session()
	if err != nil {
		return nil, nil, err
	}
	r, err := render.NewRenderer(opts)
	if err != nil {
		return nil, nil, err
	}
	return sess, r, nil
}

func parseIntPair(s string) (int, int, error) {
	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		b = a
	}
	w, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q", s)
	}
	return w, h, nil
}

func parseFloatPair(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		b = a
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad extent %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad extent %q", s)
	}
	return w, h, nil
}

// parseColor accepts "R,G,B", "#rrggbb" and a few names.
func parseColor(s string) (render.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return render.ColorWhite, nil
	case "black":
		return render.ColorBlack, nil
	case "gray", "grey":
		return render.ColorGray, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || len(hex) != 6 {
			return render.Color{}, fmt.Errorf("bad color %q", s)
		}
		return render.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return render.Color{}, fmt.Errorf("bad color %q", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return render.Color{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return render.RGB(rgb[0], rgb[1], rgb[2]), nil
}
