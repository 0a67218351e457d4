package gui

import (
	"errors"
	"time"

	"github.com/appengine-ltd/finger-duel/internal/game"
)

type banner struct {
	Text string
	X, Y float64
}

// session owns the current match and replaces it with a fresh one after a
// finished match has been on screen for delay.
type session struct {
	cfg   game.MatchConfig
	delay time.Duration
	now   func() time.Time

	match    *game.Match
	endedAt  time.Time
	banner   *banner
	restarts int
}

func newSession(cfg game.MatchConfig, delay time.Duration, now func() time.Time) (*session, error) {
	if now == nil {
		now = time.Now
	}
	s := &session{cfg: cfg, delay: delay, now: now}
	if err := s.restart(); err != nil {
		return nil, err
	}
	s.restarts = 0
	return s, nil
}

func (s *session) restart() error {
	m, err := game.NewMatch(s.cfg)
	if err != nil {
		return err
	}
	m.OnConcluded = s.concluded
	s.match = m
	s.banner = nil
	s.endedAt = time.Time{}
	s.restarts++
	return nil
}

func (s *session) concluded(winner game.HandID) {
	s.endedAt = s.now()
	s.banner = bannerFor(s.match, winner)
}

func bannerFor(m *game.Match, winner game.HandID) *banner {
	if h, ok := m.Hand(winner); ok && winner != "" {
		return &banner{Text: "YOU WIN!!", X: h.X, Y: h.Y}
	}
	text := "DRAW"
	if m.Err() != nil {
		text = "ROUND FAULT"
	}
	return &banner{Text: text, X: m.Config().Width/2 - 30, Y: m.Config().Height / 2}
}

// step runs one frame. held reports the physical state of a bound key.
// A judge fault is returned after the match has concluded; the session keeps
// running and restarts on schedule.
func (s *session) step(held func(key string) bool, surf game.Surface) error {
	if s.match.State() == game.Concluded {
		if s.now().Sub(s.endedAt) >= s.delay {
			if err := s.restart(); err != nil {
				return err
			}
		} else {
			w, h := surf.Size()
			surf.ClearRect(0, 0, w, h)
			s.match.Draw(surf)
			s.drawBanner(surf)
			return nil
		}
	}

	bus := s.match.Bus()
	for _, h := range s.match.Hands() {
		for _, k := range h.Keys {
			bus.SetKeyState(k, held(k))
		}
	}
	_, err := s.match.Tick(surf)
	s.drawBanner(surf)
	if errors.Is(err, game.ErrMatchConcluded) {
		return nil
	}
	return err
}

func (s *session) drawBanner(surf game.Surface) {
	if s.banner == nil {
		return
	}
	surf.Text(s.banner.Text, s.banner.X, s.banner.Y, 20)
}
