// Package render runs the GLC render pass and presents its output.
package render

import "image"

// Raster is a fixed-size grid of opaque pixels written by the render pass.
// Storage is row-major with index = y*Width + x, and row 0 is the bottom
// row of the picture, as in a GL texture.
type Raster struct {
	Width  int
	Height int
	Pixels []Color
}

// NewRaster creates a raster with the given dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear fills the raster with a solid color.
func (r *Raster) Clear(c Color) {
	for i := range r.Pixels {
		r.Pixels[i] = c
	}
}

// SetPixel sets the pixel at (x, y), counting rows from the bottom.
// Out of range coordinates are ignored.
func (r *Raster) SetPixel(x, y int, c Color) {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return
	}
	r.Pixels[y*r.Width+x] = c
}

// GetPixel returns the pixel at (x, y), counting rows from the bottom.
// Returns transparent black if out of bounds.
func (r *Raster) GetPixel(x, y int) Color {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return Color{}
	}
	return r.Pixels[y*r.Width+x]
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	c := NewRaster(r.Width, r.Height)
	copy(c.Pixels, r.Pixels)
	return c
}

// CopyFrom overwrites r with the contents of src, resizing as needed.
func (r *Raster) CopyFrom(src *Raster) {
	r.Width, r.Height = src.Width, src.Height
	if cap(r.Pixels) < len(src.Pixels) {
		r.Pixels = make([]Color, len(src.Pixels))
	}
	r.Pixels = r.Pixels[:len(src.Pixels)]
	copy(r.Pixels, src.Pixels)
}

// Equal reports whether both rasters have the same size and pixels.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Width != o.Width || r.Height != o.Height || len(r.Pixels) != len(o.Pixels) {
		return false
	}
	for i := range r.Pixels {
		if r.Pixels[i] != o.Pixels[i] {
			return false
		}
	}
	return true
}

// ToImage converts the raster to an image.RGBA with row 0 at the top.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetRGBA(x, r.Height-1-y, r.Pixels[y*r.Width+x])
		}
	}
	return img
}

// SavePNG saves the raster as a PNG file at its native size.
func (r *Raster) SavePNG(path string) error {
	return ExportPNG(path, r, ExportOptions{})
}
