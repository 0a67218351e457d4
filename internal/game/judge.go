package game

import (
	"errors"
	"fmt"
)

// ErrContractBroken marks a round the judge cannot arbitrate because the
// weapons handed to it violate what hands are able to produce.
var ErrContractBroken = errors.New("round contract broken")

type RoundResult struct {
	Weapons    []Weapon
	LosingKind Weapon // NoCommit on a draw
	Losers     []int
	Penalized  []int
	Draw       bool
	Concluded  bool
	Winner     HandID // empty when nobody survives or the match goes on
}

type Judge struct {
	hands []*Hand
}

func NewJudge(hands []*Hand) *Judge {
	return &Judge{hands: hands}
}

// Resolve applies one round: the NoCommit penalty pass, the rock-paper-scissors
// resolution and the termination check. weapons is in hand order.
func (j *Judge) Resolve(weapons []Weapon) (RoundResult, error) {
	if len(weapons) != len(j.hands) {
		return RoundResult{}, fmt.Errorf("%w: %d weapons for %d hands", ErrContractBroken, len(weapons), len(j.hands))
	}
	for i, w := range weapons {
		if !w.Valid() {
			return RoundResult{}, fmt.Errorf("%w: hand %d played %s", ErrContractBroken, i, w)
		}
	}

	res := RoundResult{Weapons: append([]Weapon(nil), weapons...)}

	for i, w := range weapons {
		if w == NoCommit {
			j.hands[i].AddHealth(-OtherPenalty)
			res.Penalized = append(res.Penalized, i)
		}
	}

	losing, err := losingKind(weapons)
	if err != nil {
		return res, err
	}
	res.LosingKind = losing
	res.Draw = losing == NoCommit

	if !res.Draw {
		for i, w := range weapons {
			if w == losing {
				j.hands[i].AddHealth(-LossPenalty)
				j.hands[i].Stats.RoundsLost++
				res.Losers = append(res.Losers, i)
			}
		}
	}

	var alive []*Hand
	for _, h := range j.hands {
		if h.Alive() {
			alive = append(alive, h)
		}
	}
	if len(alive) <= 1 {
		res.Concluded = true
		if len(alive) == 1 {
			res.Winner = alive[0].ID
		}
	}
	return res, nil
}

// losingKind returns the weapon kind that loses this round, or NoCommit when
// the round is a draw. Kinds are compared in first-occurrence order.
func losingKind(weapons []Weapon) (Weapon, error) {
	kinds := make([]Weapon, 0, 3)
	seen := [Paper + 1]bool{}
	for _, w := range weapons {
		if !w.Offensive() || seen[w] {
			continue
		}
		seen[w] = true
		kinds = append(kinds, w)
	}

	switch len(kinds) {
	case 0, 1, 3:
		// A lone attacker facing only NoCommit hands is a draw as well.
		return NoCommit, nil
	case 2:
		if losesTo(kinds[0], kinds[1]) {
			return kinds[0], nil
		}
		return kinds[1], nil
	default:
		return NoCommit, fmt.Errorf("%w: %d distinct weapon kinds", ErrContractBroken, len(kinds))
	}
}
