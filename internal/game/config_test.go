package game

import (
	"strings"
	"testing"
)

func TestDefaultMatchConfigValid(t *testing.T) {
	if err := DefaultMatchConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestMatchConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MatchConfig)
		want   string
	}{
		{name: "three hands", mutate: func(c *MatchConfig) { c.Hands = append(c.Hands, c.Hands[0]) }, want: "exactly 2 hands"},
		{name: "zero health", mutate: func(c *MatchConfig) { c.InitialHealth = 0 }, want: "initial health"},
		{name: "duplicate id", mutate: func(c *MatchConfig) { c.Hands[1].ID = c.Hands[0].ID }, want: "duplicate id"},
		{name: "empty key", mutate: func(c *MatchConfig) { c.Hands[0].Keys[2] = " " }, want: "empty key"},
		{name: "shared key", mutate: func(c *MatchConfig) { c.Hands[1].Keys[0] = "a" }, want: "already bound"},
		{name: "repeated key", mutate: func(c *MatchConfig) { c.Hands[0].Keys[1] = "a" }, want: "already bound"},
		{name: "no surface", mutate: func(c *MatchConfig) { c.Width = 0 }, want: "surface size"},
	}
	for _, tc := range tests {
		cfg := DefaultMatchConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}
