package replay

import (
	"errors"
	"fmt"

	"github.com/appengine-ltd/finger-duel/internal/game"
)

var ErrTickLimit = errors.New("tick limit reached")

type HandOutcome struct {
	ID     game.HandID
	Name   string
	Health float64
	Stats  game.HandStats
}

type Outcome struct {
	MatchID   string
	Ticks     int
	Concluded bool
	Winner    game.HandID
	Hands     []HandOutcome
}

// Run plays script against a fresh match until it concludes or maxTicks ticks
// have run. Reaching the limit returns the partial outcome with ErrTickLimit.
func Run(cfg game.MatchConfig, script Script, maxTicks int, s game.Surface) (Outcome, error) {
	m, err := game.NewMatch(cfg)
	if err != nil {
		return Outcome{}, err
	}
	return Play(m, script, maxTicks, s)
}

func Play(m *game.Match, script Script, maxTicks int, s game.Surface) (Outcome, error) {
	if maxTicks <= 0 {
		return Outcome{}, fmt.Errorf("max ticks must be positive, got %d", maxTicks)
	}
	for m.State() == game.Running && m.Ticks() < maxTicks {
		script.Apply(m.Ticks()+1, m.Bus())
		if _, err := m.Tick(s); err != nil {
			return outcomeOf(m), err
		}
	}
	out := outcomeOf(m)
	if !out.Concluded {
		return out, ErrTickLimit
	}
	return out, nil
}

func outcomeOf(m *game.Match) Outcome {
	out := Outcome{
		MatchID:   m.ID(),
		Ticks:     m.Ticks(),
		Concluded: m.State() == game.Concluded,
		Winner:    m.Winner(),
	}
	for _, h := range m.Hands() {
		out.Hands = append(out.Hands, HandOutcome{ID: h.ID, Name: h.Label(), Health: h.Health, Stats: h.Stats})
	}
	return out
}
