package game

// Surface is the drawing collaborator a match renders onto. Coordinates are
// in surface pixels with the origin at the top-left corner.
type Surface interface {
	Size() (w, h float64)
	ClearRect(x, y, w, h float64)
	Arc(x, y, r, startDeg, endDeg float64)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64)
	Text(text string, x, y, size float64)
}

// NopSurface discards every draw call.
type NopSurface struct {
	W, H float64
}

func (n NopSurface) Size() (float64, float64) { return n.W, n.H }
func (NopSurface) ClearRect(_, _, _, _ float64) {}
func (NopSurface) Arc(_, _, _, _, _ float64) {}
func (NopSurface) Line(_, _, _, _ float64) {}
func (NopSurface) Rect(_, _, _, _ float64) {}
func (NopSurface) Text(_ string, _, _, _ float64) {}
