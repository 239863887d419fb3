package render

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestRasterDrawHalfBlocks(t *testing.T) {
	top, bottom := RGB(255, 0, 0), RGB(0, 0, 255)
	r := NewRaster(2, 2)
	r.SetPixel(0, 1, top)
	r.SetPixel(1, 1, top)
	r.SetPixel(0, 0, bottom)
	r.SetPixel(1, 0, bottom)

	scr := uv.NewScreenBuffer(4, 3)
	r.Draw(scr, uv.Rect(1, 1, 2, 1))

	for x := 1; x <= 2; x++ {
		cell := scr.CellAt(x, 1)
		if cell == nil || cell.Content != "▀" {
			t.Fatalf("Cell (%d,1) = %+v, want half block", x, cell)
		}
		if cell.Style.Fg != top {
			t.Errorf("Cell (%d,1) fg = %v, want %v", x, cell.Style.Fg, top)
		}
		if cell.Style.Bg != bottom {
			t.Errorf("Cell (%d,1) bg = %v, want %v", x, cell.Style.Bg, bottom)
		}
	}
	if cell := scr.CellAt(0, 0); cell != nil && cell.Content == "▀" {
		t.Error("Draw wrote outside its area")
	}
}

func TestRasterDrawScales(t *testing.T) {
	r := NewRaster(8, 8)
	r.Clear(ColorGray)
	for _, p := range [][2]int{{6, 6}, {7, 6}, {6, 7}, {7, 7}} {
		r.SetPixel(p[0], p[1], ColorBlack) // top-right
	}

	scr := uv.NewScreenBuffer(4, 2)
	r.Draw(scr, uv.Rect(0, 0, 4, 2))

	if got := scr.CellAt(3, 0).Style.Fg; got != ColorBlack {
		t.Errorf("Top-right cell fg = %v, want black", got)
	}
	if got := scr.CellAt(0, 1).Style.Bg; got != ColorGray {
		t.Errorf("Bottom-left cell bg = %v, want gray", got)
	}
}

func TestFitArea(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		area uv.Rectangle
		want uv.Rectangle
	}{
		{"wide terminal", 256, 256, uv.Rect(0, 0, 100, 20), uv.Rect(30, 0, 40, 20)},
		{"tall terminal", 256, 256, uv.Rect(0, 0, 40, 50), uv.Rect(0, 15, 40, 20)},
		{"offset area", 100, 50, uv.Rect(10, 5, 40, 30), uv.Rect(10, 15, 40, 10)},
		{"empty area", 256, 256, uv.Rect(3, 3, 0, 0), uv.Rect(3, 3, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitArea(tt.w, tt.h, tt.area); got != tt.want {
				t.Errorf("FitArea = %v, want %v", got, tt.want)
			}
		})
	}
}
