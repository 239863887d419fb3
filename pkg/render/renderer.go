package render

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/glc/pkg/glc"
	"github.com/taigrr/glc/pkg/models"
)

// ErrNoMesh is returned when a frame has no mesh to render.
var ErrNoMesh = errors.New("no mesh")

// Options configures the render pass.
type Options struct {
	Width, Height         int     // raster size in pixels
	ClipWidth, ClipHeight float64 // world span covered by the raster
	ZOffset               float64 // added to z after the scene transform
	Workers               int     // rows rendered concurrently
}

// DefaultOptions returns a 256x256 raster over a 5x5 world window.
func DefaultOptions() Options {
	return Options{
		Width:      256,
		Height:     256,
		ClipWidth:  5,
		ClipHeight: 5,
		ZOffset:    glc.DefaultZOffset,
		Workers:    runtime.NumCPU(),
	}
}

// Validate checks that the options describe a usable raster.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("raster size %dx%d must be positive", o.Width, o.Height)
	}
	if !(o.ClipWidth > 0) || !(o.ClipHeight > 0) {
		return fmt.Errorf("clip size %gx%g must be positive", o.ClipWidth, o.ClipHeight)
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers %d must not be negative", o.Workers)
	}
	return nil
}

// Frame is everything one render pass reads.
type Frame struct {
	Projection glc.Projection
	Mesh       *models.Mesh
	State      glc.SceneState
	Background Color
}

// Renderer casts one ray per raster pixel. Finished rasters are published
// atomically; a failed or cancelled pass leaves the previous one current.
type Renderer struct {
	opts   Options
	mapper glc.PixelMapper

	mu   sync.Mutex // serializes Render
	tris []glc.Triangle
	back *Raster

	current  atomic.Pointer[Raster]
	progress atomic.Pointer[func(done, total int)]
}

// NewRenderer creates a renderer. Workers == 0 means one per CPU.
func NewRenderer(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("render options: %w", err)
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{
		opts: opts,
		mapper: glc.PixelMapper{
			Width:      opts.Width,
			Height:     opts.Height,
			ClipWidth:  opts.ClipWidth,
			ClipHeight: opts.ClipHeight,
		},
	}, nil
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options {
	return r.opts
}

// OnProgress registers fn to be called after each completed row. It runs on
// worker goroutines and must be safe for concurrent use. nil removes it.
func (r *Renderer) OnProgress(fn func(done, total int)) {
	if fn == nil {
		r.progress.Store(nil)
		return
	}
	r.progress.Store(&fn)
}

// Current returns the last published raster, or nil before the first
// successful render. Published rasters are never written again.
func (r *Renderer) Current() *Raster {
	return r.current.Load()
}

// Render runs one full pass over f and publishes the result.
func (r *Renderer) Render(ctx context.Context, f Frame) (*Raster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	log := Logger()

	if f.Mesh == nil {
		return nil, ErrNoMesh
	}
	if err := f.Mesh.Validate(); err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Mesh.Name, err)
	}
	gen, err := glc.NewRayGenerator(glc.NewModel(f.Projection))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Projection, err)
	}

	r.tris = glc.TransformMesh(r.tris, f.Mesh, f.State, r.opts.ZOffset)
	if r.back == nil {
		r.back = NewRaster(r.opts.Width, r.opts.Height)
	}

	if err := r.renderRows(ctx, gen, f.Background); err != nil {
		log.Warn("render aborted", "mesh", f.Mesh.Name, "err", err)
		return nil, err
	}

	out := r.back
	r.back = nil
	r.current.Store(out)

	log.Debug("frame rendered",
		"mesh", f.Mesh.Name,
		"projection", f.Projection.String(),
		"triangles", len(r.tris),
		"workers", r.opts.Workers,
		"elapsed", time.Since(start))
	return out, nil
}

// renderRows fills r.back, distributing rows over the worker limit.
func (r *Renderer) renderRows(ctx context.Context, gen *glc.RayGenerator, bg Color) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	w, h := r.opts.Width, r.opts.Height
	tris := r.tris
	pixels := r.back.Pixels
	report := r.progress.Load()
	var done atomic.Int64

	for y := range h {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for x := range w {
				idx := y*w + x
				n := glc.CastRay(gen.Ray(r.mapper.World(idx)), tris)
				if n.IsZero() {
					pixels[idx] = bg
				} else {
					pixels[idx] = glc.Colorize(n)
				}
			}
			if report != nil {
				(*report)(int(done.Add(1)), h)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
