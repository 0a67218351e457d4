package game

import (
	"fmt"
	"strings"
)

type HandID string

const (
	HandA HandID = "a"
	HandB HandID = "b"
)

type HandConfig struct {
	ID   HandID
	Name string
	X, Y float64
	Keys [3]string
}

type MatchConfig struct {
	Width         float64
	Height        float64
	InitialHealth float64
	Hands         []HandConfig
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		InitialHealth: InitialHealth,
		Hands: []HandConfig{
			{ID: HandA, Name: "Left", X: 80, Y: 80, Keys: [3]string{"a", "s", "d"}},
			{ID: HandB, Name: "Right", X: 300, Y: 80, Keys: [3]string{"j", "k", "l"}},
		},
	}
}

func (c MatchConfig) Validate() error {
	if len(c.Hands) != 2 {
		return fmt.Errorf("match needs exactly 2 hands, got %d", len(c.Hands))
	}
	if c.InitialHealth <= 0 {
		return fmt.Errorf("initial health must be positive, got %g", c.InitialHealth)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid surface size %gx%g", c.Width, c.Height)
	}

	ids := make(map[HandID]bool, len(c.Hands))
	owners := make(map[string]HandID, 6)
	for i, h := range c.Hands {
		if strings.TrimSpace(string(h.ID)) == "" {
			return fmt.Errorf("hand %d: empty id", i)
		}
		if ids[h.ID] {
			return fmt.Errorf("hand %d: duplicate id %q", i, h.ID)
		}
		ids[h.ID] = true

		for f, key := range h.Keys {
			if strings.TrimSpace(key) == "" {
				return fmt.Errorf("hand %q finger %d: empty key", h.ID, f+1)
			}
			if owner, taken := owners[key]; taken {
				return fmt.Errorf("hand %q finger %d: key %q already bound to hand %q", h.ID, f+1, key, owner)
			}
			owners[key] = h.ID
		}
	}
	return nil
}
