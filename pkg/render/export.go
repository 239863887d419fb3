package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ExportOptions controls PNG export.
type ExportOptions struct {
	Scale int    // integer upscale factor, values below 1 mean 1
	Label string // optional caption printed on a strip under the image
}

// labelHeight is the caption strip height in output pixels.
const labelHeight = 18

// Compose returns the raster as an image, upscaled and captioned per opts.
func Compose(r *Raster, opts ExportOptions) *image.RGBA {
	scale := max(opts.Scale, 1)
	src := r.ToImage()

	w, h := r.Width*scale, r.Height*scale
	strip := 0
	if opts.Label != "" {
		strip = labelHeight
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h+strip))
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, w, h), src, src.Bounds(), draw.Src, nil)

	if strip > 0 {
		bar := image.Rect(0, h, w, h+strip)
		draw.Draw(dst, bar, image.NewUniform(ColorBlack), image.Point{}, draw.Src)
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(ColorWhite),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, h+strip-5),
		}
		d.DrawString(opts.Label)
	}
	return dst
}

// WritePNG encodes the composed raster to w.
func WritePNG(w io.Writer, r *Raster, opts ExportOptions) error {
	if err := png.Encode(w, Compose(r, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportPNG writes the composed raster to path.
func ExportPNG(path string, r *Raster, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := WritePNG(f, r, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
