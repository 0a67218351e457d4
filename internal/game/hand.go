package game

import "fmt"

// Charge holds the per-weapon hold counters of a hand. At most one of them is
// non-zero at a time.
type Charge struct {
	Rock     int
	Paper    int
	Scissors int
}

type HandStats struct {
	Commits    int
	Fumbles    int
	RoundsLost int
	Damage     float64
}

type Hand struct {
	ID     HandID
	Name   string
	X, Y   float64
	Health float64
	Keys   [3]string
	Charge Charge
	Stats  HandStats

	LastWeapon Weapon

	fingers [3]*Finger
}

func newHand(cfg HandConfig, health float64, bus *InputBus) *Hand {
	h := &Hand{
		ID:     cfg.ID,
		Name:   cfg.Name,
		X:      cfg.X,
		Y:      cfg.Y,
		Health: health,
		Keys:   cfg.Keys,
	}
	for i, key := range cfg.Keys {
		h.fingers[i] = newFinger(key, i, bus)
	}
	return h
}

func (h *Hand) Fingers() [3]*Finger {
	return h.fingers
}

func (h *Hand) Alive() bool {
	return h.Health > 0
}

func (h *Hand) AddHealth(delta float64) {
	h.Health += delta
	if delta < 0 {
		h.Stats.Damage -= delta
	}
}

func (h *Hand) Label() string {
	if h.Name != "" {
		return h.Name
	}
	return string(h.ID)
}

// Decide reads the three bound keys and advances the charge counters by one
// tick, returning the weapon committed this tick or NoCommit.
func (h *Hand) Decide(bus *InputBus) Weapon {
	for _, f := range h.fingers {
		if f != nil {
			f.relax(bus)
		}
	}

	held := 0
	for _, key := range h.Keys {
		if bus.IsHeld(key) {
			held++
		}
	}

	w := NoCommit
	switch held {
	case 0:
		h.Charge = Charge{Rock: h.Charge.Rock + ChargeStep}
		if h.Charge.Rock > CommitThreshold {
			w = Rock
		}
	case 3:
		h.Charge = Charge{Paper: h.Charge.Paper + ChargeStep}
		if h.Charge.Paper > CommitThreshold {
			w = Paper
		}
	case 2:
		h.Charge = Charge{Scissors: h.Charge.Scissors + ChargeStep}
		if h.Charge.Scissors > CommitThreshold {
			w = Scissors
		}
	}

	if w == NoCommit {
		h.Stats.Fumbles++
	} else {
		h.Stats.Commits++
	}
	h.LastWeapon = w
	return w
}

func (h *Hand) draw(s Surface) {
	s.Arc(h.X, h.Y, HandRadius, 0, 360)
	for _, f := range h.fingers {
		if f != nil {
			f.draw(s, h.X, h.Y)
		}
	}
	// Health bar width tracks remaining health; nothing is drawn once it is gone.
	if h.Health > 0 {
		s.Rect(h.X, h.Y+HealthBarOffsetY, h.Health, HealthBarHeight)
	}
	s.Text(fmt.Sprintf("%s %.2f", h.Label(), h.Health), h.X, h.Y+HealthBarOffsetY+HealthBarHeight+14, 12)
}
