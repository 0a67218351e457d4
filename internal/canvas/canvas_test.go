package canvas

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/finger-duel/internal/game"
)

var _ game.Surface = (*Canvas)(nil)

func inkAt(c *Canvas, x, y int) bool {
	r, g, b, _ := c.Image().At(x, y).RGBA()
	br, bg, bb, _ := color.Color(Background).RGBA()
	return r != br || g != bg || b != bb
}

func TestLineLeavesInk(t *testing.T) {
	c := New(40, 20)
	c.SetLineWidth(2)
	c.Line(0, 10, 39, 10)
	if !inkAt(c, 20, 10) {
		t.Fatalf("expected ink on the line")
	}
	if inkAt(c, 20, 2) {
		t.Fatalf("expected background away from the line")
	}
}

func TestClearRectRestoresBackground(t *testing.T) {
	c := New(20, 20)
	c.Rect(2, 2, 10, 10)
	if !inkAt(c, 2, 6) {
		t.Fatalf("expected rect outline")
	}
	w, h := c.Size()
	c.ClearRect(0, 0, w, h)
	if inkAt(c, 2, 6) {
		t.Fatalf("expected clear to wipe the outline")
	}
}

func TestMatchRendersOntoCanvas(t *testing.T) {
	m, err := game.NewMatch(game.DefaultMatchConfig())
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	c := New(int(game.DefaultWidth), int(game.DefaultHeight))
	if _, err := m.Tick(c); err != nil {
		t.Fatalf("tick: %v", err)
	}
	hand := m.Hands()[0]
	// Health bar top edge sits HealthBarOffsetY below the hand centre.
	if !inkAt(c, int(hand.X)+50, int(hand.Y+game.HealthBarOffsetY)) {
		t.Fatalf("expected health bar outline")
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("save png: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected png on disk: %v", err)
	}
}

func TestANSIHalfBlocks(t *testing.T) {
	c := New(4, 4)
	out := ANSI(c.Image())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 text rows for 4 pixel rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "▀") {
		t.Fatalf("expected half block glyphs, got %q", lines[0])
	}
}

func TestFitScalesDown(t *testing.T) {
	c := New(640, 360)
	img := Fit(c.Image(), 80, 20)
	b := img.Bounds()
	if b.Dx() > 80 || b.Dy() > 40 {
		t.Fatalf("fit produced %dx%d, want within 80x40", b.Dx(), b.Dy())
	}
	if small := Fit(New(10, 10).Image(), 80, 20); small.Bounds().Dx() != 10 {
		t.Fatalf("small images must not be scaled")
	}
}
