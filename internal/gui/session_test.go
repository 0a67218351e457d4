package gui

import (
	"testing"
	"time"

	"github.com/appengine-ltd/finger-duel/internal/game"
)

type bannerSurface struct {
	game.NopSurface
	texts []string
}

func (s *bannerSurface) Text(text string, _, _, _ float64) {
	s.texts = append(s.texts, text)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func holding(keys ...string) func(string) bool {
	set := map[string]bool{}
	for _, k := range keys {
		set[k] = true
	}
	return func(k string) bool { return set[k] }
}

func TestSessionShowsWinnerAndRestartsAfterDelay(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s, err := newSession(game.DefaultMatchConfig(), 3*time.Second, clock.now)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	first := s.match.ID()
	surf := &bannerSurface{NopSurface: game.NopSurface{W: 640, H: 360}}

	// left hand rests on rock, right hand holds two keys for scissors.
	for i := 0; i < 400 && s.match.State() == game.Running; i++ {
		if err := s.step(holding("j", "k"), surf); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if s.match.Winner() != game.HandA {
		t.Fatalf("expected hand a to win, got %q", s.match.Winner())
	}
	if s.banner == nil || s.banner.Text != "YOU WIN!!" || s.banner.X != 80 || s.banner.Y != 80 {
		t.Fatalf("unexpected banner %+v", s.banner)
	}

	clock.t = clock.t.Add(time.Second)
	if err := s.step(holding(), surf); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.match.ID() != first {
		t.Fatalf("restarted before delay elapsed")
	}
	if last := surf.texts[len(surf.texts)-1]; last != "YOU WIN!!" {
		t.Fatalf("expected banner drawn while waiting, got %q", last)
	}

	clock.t = clock.t.Add(2 * time.Second)
	if err := s.step(holding(), surf); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.match.ID() == first || s.restarts != 1 {
		t.Fatalf("expected fresh match after delay, restarts=%d", s.restarts)
	}
	if s.banner != nil || s.match.Ticks() != 1 {
		t.Fatalf("fresh match should have ticked once without a banner")
	}
}

func TestSessionMutualEliminationShowsDraw(t *testing.T) {
	cfg := game.DefaultMatchConfig()
	cfg.InitialHealth = 1
	s, err := newSession(cfg, time.Second, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	surf := &bannerSurface{}
	// both hands fumble with one key held and lose 0.25 a tick.
	for i := 0; i < 10 && s.match.State() == game.Running; i++ {
		if err := s.step(holding("a", "j"), surf); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if s.match.State() != game.Concluded || s.match.Winner() != "" {
		t.Fatalf("expected concluded draw, got %s winner %q", s.match.State(), s.match.Winner())
	}
	if s.banner == nil || s.banner.Text != "DRAW" {
		t.Fatalf("expected DRAW banner, got %+v", s.banner)
	}
}

func TestSessionManualRestartResetsKeys(t *testing.T) {
	s, err := newSession(game.DefaultMatchConfig(), time.Second, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.step(holding("a", "s", "d"), game.NopSurface{}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if err := s.restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.match.Bus().IsHeld("a") || s.match.Ticks() != 0 {
		t.Fatalf("restart should start from a clean match")
	}
}
