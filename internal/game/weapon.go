package game

import (
	"fmt"
	"strings"
)

// Weapon is the per-tick decision of a hand. The zero value is NoCommit.
type Weapon int8

const (
	NoCommit Weapon = iota
	Rock
	Scissors
	Paper
)

var weaponNames = [...]string{
	NoCommit: "other",
	Rock:     "rock",
	Scissors: "scissors",
	Paper:    "paper",
}

func (w Weapon) String() string {
	if w < 0 || int(w) >= len(weaponNames) {
		return fmt.Sprintf("weapon(%d)", int8(w))
	}
	return weaponNames[w]
}

// Valid reports whether w is one of the declared weapons, NoCommit included.
func (w Weapon) Valid() bool {
	return w >= NoCommit && w <= Paper
}

// Offensive reports whether w is an attacking weapon.
func (w Weapon) Offensive() bool {
	return w >= Rock && w <= Paper
}

// offenceID orders the attacking weapons rock(0) < scissors(1) < paper(2).
func (w Weapon) offenceID() int {
	return int(w) - int(Rock)
}

// losesTo reports whether a is the losing kind when a and b meet.
func losesTo(a, b Weapon) bool {
	return (a.offenceID()-b.offenceID()+3)%3 == 1
}

// Beats reports whether a beats b under the cyclic rule
// rock > scissors > paper > rock.
func Beats(a, b Weapon) bool {
	if !a.Offensive() || !b.Offensive() || a == b {
		return false
	}
	return losesTo(b, a)
}

func ParseWeapon(s string) (Weapon, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "rock":
		return Rock, nil
	case "scissors":
		return Scissors, nil
	case "paper":
		return Paper, nil
	case "other", "none", "":
		return NoCommit, nil
	}
	return NoCommit, fmt.Errorf("unknown weapon: %q", s)
}
