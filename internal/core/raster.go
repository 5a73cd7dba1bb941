package core

import (
	"math"
	"sort"
)

// Glyphs used by Raster.
const (
	FillRune   = '█'
	StrokeRune = '*'
	DotRune    = '•'
)

// Raster is a Canvas that rasterizes world-space primitives onto a Screen.
// The world rectangle [0, worldW) x [0, worldH) is stretched over the whole
// screen, so one cell covers worldW/cols by worldH/rows units.
type Raster struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewRaster creates a raster canvas for a worldW x worldH playfield.
func NewRaster(screen *Screen, worldW, worldH float64) *Raster {
	return &Raster{screen: screen, worldW: worldW, worldH: worldH}
}

func (r *Raster) sx() float64 { return float64(r.screen.Width()) / r.worldW }
func (r *Raster) sy() float64 { return float64(r.screen.Height()) / r.worldH }

// toCell converts a world point to fractional cell coordinates.
func (r *Raster) toCell(p Vec2) Vec2 {
	return Vec2{
		X: p.X * float64(r.screen.Width()) / r.worldW,
		Y: p.Y * float64(r.screen.Height()) / r.worldH,
	}
}

// cellOf returns the integer cell containing a world point.
func (r *Raster) cellOf(p Vec2) (int, int) {
	c := r.toCell(p)
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

// Clear implements Canvas. Terminals draw the background themselves, so the
// color only matters for non-default palettes.
func (r *Raster) Clear(c Color) {
	r.screen.Clear()
	if c == ColorDefault || c == ColorBlack {
		return
	}
	for y := 0; y < r.screen.Height(); y++ {
		for x := 0; x < r.screen.Width(); x++ {
			r.screen.SetCell(x, y, Cell{Rune: ' ', Color: c})
		}
	}
}

// FillPolygon implements Canvas with an even-odd scanline fill sampled at
// cell centers. A polygon too small to cover any center still marks the
// cell holding its first vertex.
func (r *Raster) FillPolygon(points []Vec2, c Color) {
	if len(points) == 0 {
		return
	}
	cells := make([]Vec2, len(points))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		cells[i] = r.toCell(p)
		minY = math.Min(minY, cells[i].Y)
		maxY = math.Max(maxY, cells[i].Y)
	}

	cell := Cell{Rune: FillRune, Color: c}
	filled := false
	y0 := Clamp(int(math.Floor(minY)), 0, r.screen.Height())
	y1 := Clamp(int(math.Ceil(maxY)), 0, r.screen.Height())
	xs := make([]float64, 0, len(cells))
	for y := y0; y < y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := range cells {
			a, b := cells[i], cells[(i+1)%len(cells)]
			if (a.Y <= yc) == (b.Y <= yc) {
				continue
			}
			t := (yc - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start := int(math.Ceil(xs[i] - 0.5))
			end := int(math.Floor(xs[i+1] - 0.5))
			for x := start; x <= end; x++ {
				r.screen.SetCell(x, y, cell)
				filled = true
			}
		}
	}

	if !filled {
		x, y := r.cellOf(points[0])
		r.screen.SetCell(x, y, cell)
	}
}

// StrokePolygon implements Canvas. Width is ignored: every edge is one cell
// thick.
func (r *Raster) StrokePolygon(points []Vec2, c Color, _ float64) {
	n := len(points)
	for i := 0; i < n; i++ {
		r.line(points[i], points[(i+1)%n], Cell{Rune: StrokeRune, Color: c})
	}
}

// line draws a DDA line between two world points.
func (r *Raster) line(a, b Vec2, cell Cell) {
	ca, cb := r.toCell(a), r.toCell(b)
	d := cb.Sub(ca)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		r.screen.SetCell(int(math.Floor(ca.X)), int(math.Floor(ca.Y)), cell)
		return
	}
	for i := 0; i <= steps; i++ {
		p := ca.Add(d.Scale(float64(i) / float64(steps)))
		r.screen.SetCell(int(math.Floor(p.X)), int(math.Floor(p.Y)), cell)
	}
}

// FillCircle implements Canvas. Cells whose centers fall inside the circle
// (measured in world units) are filled; the center cell is always marked so
// that small projectiles stay visible.
func (r *Raster) FillCircle(center Vec2, radius float64, c Color) {
	cell := Cell{Rune: DotRune, Color: c}
	cx, cy := r.cellOf(center)
	r.screen.SetCell(cx, cy, cell)

	sx, sy := r.sx(), r.sy()
	x0, y0 := r.cellOf(center.Sub(V(radius, radius)))
	x1, y1 := r.cellOf(center.Add(V(radius, radius)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w := V((float64(x)+0.5)/sx, (float64(y)+0.5)/sy)
			if w.Dist(center) <= radius {
				r.screen.SetCell(x, y, cell)
			}
		}
	}
}

// DrawText implements Canvas. The size is ignored; the text starts in the
// cell containing pos.
func (r *Raster) DrawText(text string, _ float64, c Color, pos Vec2) {
	x, y := r.cellOf(pos)
	r.screen.DrawText(x, y, text, c)
}
