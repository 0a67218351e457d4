package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrMatchConcluded = errors.New("match concluded")

// Match drives one game from start to conclusion. All methods must be called
// from the goroutine that owns it.
type Match struct {
	id    string
	cfg   MatchConfig
	bus   *InputBus
	hands []*Hand
	judge *Judge

	state  MatchState
	ticks  int
	winner HandID
	err    error
	last   RoundResult

	// OnConcluded fires once, on the tick the match ends. winner is empty on
	// mutual elimination or when the match faulted.
	OnConcluded func(winner HandID)
}

func NewMatch(cfg MatchConfig) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("match config: %w", err)
	}
	m := &Match{
		id:  uuid.NewString(),
		cfg: cfg,
		bus: NewInputBus(),
	}
	for _, hc := range cfg.Hands {
		m.hands = append(m.hands, newHand(hc, cfg.InitialHealth, m.bus))
	}
	m.judge = NewJudge(m.hands)
	return m, nil
}

func (m *Match) ID() string { return m.id }
func (m *Match) Config() MatchConfig { return m.cfg }
func (m *Match) Bus() *InputBus { return m.bus }
func (m *Match) Hands() []*Hand { return m.hands }
func (m *Match) State() MatchState { return m.state }
func (m *Match) Ticks() int { return m.ticks }
func (m *Match) Winner() HandID { return m.winner }
func (m *Match) LastRound() RoundResult { return m.last }

// Err reports the fault that ended the match, if any.
func (m *Match) Err() error { return m.err }

func (m *Match) Hand(id HandID) (*Hand, bool) {
	for _, h := range m.hands {
		if h.ID == id {
			return h, true
		}
	}
	return nil, false
}

// Tick runs one simulation step: clear, dispatch input, decide every hand,
// resolve the round, draw, then check termination. s may be nil.
func (m *Match) Tick(s Surface) (RoundResult, error) {
	if m.state == Concluded {
		return RoundResult{}, ErrMatchConcluded
	}
	if s == nil {
		s = NopSurface{W: m.cfg.Width, H: m.cfg.Height}
	}
	m.ticks++

	w, h := s.Size()
	s.ClearRect(0, 0, w, h)

	m.bus.Dispatch()

	weapons := make([]Weapon, len(m.hands))
	for i, hand := range m.hands {
		weapons[i] = hand.Decide(m.bus)
	}

	res, err := m.judge.Resolve(weapons)
	m.last = res
	m.Draw(s)
	if err != nil {
		m.err = fmt.Errorf("tick %d: %w", m.ticks, err)
		m.conclude("")
		return res, m.err
	}
	if res.Concluded {
		m.conclude(res.Winner)
	}
	return res, nil
}

func (m *Match) conclude(winner HandID) {
	m.state = Concluded
	m.winner = winner
	if m.OnConcluded != nil {
		m.OnConcluded(winner)
	}
}

// Draw renders hands, fingers and health bars without touching match state.
func (m *Match) Draw(s Surface) {
	if s == nil {
		return
	}
	for _, h := range m.hands {
		h.draw(s)
	}
}
