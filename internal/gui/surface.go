package gui

import (
	"math"

	"github.com/appengine-ltd/finger-duel/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const arcSegmentDeg = 10

// rlSurface draws game primitives into the current raylib frame.
type rlSurface struct {
	width, height int32
	bg, ink       rl.Color
	thickness     float32
}

var _ game.Surface = (*rlSurface)(nil)

func newSurface(width, height int32) *rlSurface {
	return &rlSurface{
		width:     width,
		height:    height,
		bg:        colorBG,
		ink:       colorInk,
		thickness: 2,
	}
}

func (s *rlSurface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

func (s *rlSurface) ClearRect(x, y, w, h float64) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), s.bg)
}

func (s *rlSurface) Arc(x, y, r, startDeg, endDeg float64) {
	steps := int(math.Ceil(math.Abs(endDeg-startDeg) / arcSegmentDeg))
	if steps == 0 {
		return
	}
	step := (endDeg - startDeg) / float64(steps)
	px, py := game.PosFrom(r, startDeg)
	for i := 1; i <= steps; i++ {
		nx, ny := game.PosFrom(r, startDeg+step*float64(i))
		s.Line(x+px, y+py, x+nx, y+ny)
		px, py = nx, ny
	}
}

func (s *rlSurface) Line(x1, y1, x2, y2 float64) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x1), float32(y1)),
		rl.NewVector2(float32(x2), float32(y2)),
		s.thickness, s.ink,
	)
}

func (s *rlSurface) Rect(x, y, w, h float64) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), 1, s.ink)
}

// Text takes a baseline position; raylib draws from the top-left corner.
func (s *rlSurface) Text(text string, x, y, size float64) {
	rl.DrawText(text, int32(x), int32(y-size), int32(size), s.ink)
}
