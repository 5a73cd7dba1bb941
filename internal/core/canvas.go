package core

// Canvas is the drawing surface a host hands to Game.Render each frame.
// All coordinates are world units; implementations scale as needed.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillPolygon draws a filled polygon through points.
	FillPolygon(points []Vec2, c Color)

	// StrokePolygon draws the closed outline through points.
	StrokePolygon(points []Vec2, c Color, width float64)

	// FillCircle draws a filled circle.
	FillCircle(center Vec2, radius float64, c Color)

	// DrawText draws text with its top-left corner at pos. size is the
	// nominal glyph height in world units; cell-based canvases may ignore it.
	DrawText(text string, size float64, c Color, pos Vec2)
}
