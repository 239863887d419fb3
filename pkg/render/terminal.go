package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorGray  = color.RGBA{128, 128, 128, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Draw scales the raster to area with nearest sampling and draws it as
// half-block cells: each cell shows two vertically stacked pixels.
func (r *Raster) Draw(scr uv.Screen, area uv.Rectangle) {
	cols, rows := area.Dx(), area.Dy()
	if cols <= 0 || rows <= 0 || r.Width == 0 || r.Height == 0 {
		return
	}
	pixelRows := rows * 2

	// Image rows count from the top, raster rows from the bottom.
	sample := func(col, imgRow int) Color {
		x := col * r.Width / cols
		y := r.Height - 1 - imgRow*r.Height/pixelRows
		return r.GetPixel(x, y)
	}

	for row := range rows {
		for col := range cols {
			// ▀ with fg=top color and bg=bottom color
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(sample(col, row*2)),
					Bg: rgbaToColor(sample(col, row*2+1)),
				},
			}
			scr.SetCell(area.Min.X+col, area.Min.Y+row, cell)
		}
	}
}

// FitArea returns the largest rectangle centered in area that shows a
// width x height raster with square pixels, assuming cells twice as tall as
// they are wide.
func FitArea(width, height int, area uv.Rectangle) uv.Rectangle {
	if width <= 0 || height <= 0 || area.Dx() <= 0 || area.Dy() <= 0 {
		return uv.Rectangle{Min: area.Min, Max: area.Min}
	}
	cols := area.Dx()
	rows := cols * height / width / 2
	if rows > area.Dy() {
		rows = area.Dy()
		cols = rows * 2 * width / height
	}
	cols, rows = max(cols, 1), max(rows, 1)

	x := area.Min.X + (area.Dx()-cols)/2
	y := area.Min.Y + (area.Dy()-rows)/2
	return uv.Rect(x, y, cols, rows)
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c Color) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
