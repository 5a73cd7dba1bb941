package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {255, 255, 255, 255},
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorRed:     {255, 0, 0, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// fontHeight is the pixel height of the bitmap face; text sizes scale it.
const fontHeight = 13

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws world-space primitives onto an ebiten image. World units are
// pixels.
type Canvas struct {
	dst *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas wraps dst.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// Clear implements core.Canvas.
func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(rgba(col))
}

// FillPolygon implements core.Canvas with a triangle fan, which is exact for
// convex outlines such as the ship.
func (c *Canvas) FillPolygon(points []core.Vec2, col core.Color) {
	if len(points) < 3 {
		return
	}
	rgb := rgba(col)
	r, g, b, a := float32(rgb.R)/255, float32(rgb.G)/255, float32(rgb.B)/255, float32(rgb.A)/255

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	for _, p := range points {
		c.vertices = append(c.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i+1 < len(points); i++ {
		c.indices = append(c.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

// StrokePolygon implements core.Canvas.
func (c *Canvas) StrokePolygon(points []core.Vec2, col core.Color, width float64) {
	rgb := rgba(col)
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), rgb, true)
	}
}

// FillCircle implements core.Canvas.
func (c *Canvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	vector.FillCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), rgba(col), true)
}

// DrawText implements core.Canvas. The bitmap face is scaled so that its
// cell height equals size; pos is the top-left corner of the text.
func (c *Canvas) DrawText(s string, size float64, col core.Color, pos core.Vec2) {
	scale := size / fontHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(rgba(col))
	text.Draw(c.dst, s, hudFace, op)
}
