package game

import (
	"errors"
	"fmt"
)

var (
	ErrSameFaction        = errors.New("target territory is owned by the same faction")
	ErrInsufficientTroops = errors.New("not enough troops to attack")
	ErrSelfAttack         = errors.New("a territory cannot attack itself")
	ErrInvalidIndex       = errors.New("invalid territory index")
	ErrInvalidTerritory   = errors.New("invalid territory")
)

// AttackError is returned by ResolveAttack when an attack is refused. It wraps
// one of ErrSameFaction, ErrInsufficientTroops or ErrSelfAttack.
type AttackError struct {
	Attacker string
	Defender string
	Err      error
}

func (e *AttackError) Error() string {
	return fmt.Sprintf("cannot attack %s from %s: %v", e.Defender, e.Attacker, e.Err)
}

func (e *AttackError) Unwrap() error {
	return e.Err
}

// Side identifies who won a battle.
type Side int

const (
	Attacker Side = iota
	Defender
)

func (s Side) String() string {
	switch s {
	case Attacker:
		return "attacker"
	case Defender:
		return "defender"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// AttackOutcome describes a resolved attack. Attacker and Defender are copies of
// both territories taken after the battle.
type AttackOutcome struct {
	AttackRoll  int
	DefenseRoll int
	Winner      Side
	Conquered   bool
	Attacker    Territory
	Defender    Territory
}

// Attack resolves an attack under the standard rules.
func Attack(src Source, attacker, defender *Territory) (AttackOutcome, error) {
	return ResolveAttack(NewStandardRules(), src, attacker, defender)
}

// ResolveAttack rolls one die for each side and applies the result to both
// territories. A refused attack rolls nothing and changes nothing.
//
// On an attacker win the defender changes color and its garrison becomes half
// the attacker's troops, rounded down. Otherwise the attacker loses one troop.
func ResolveAttack(rules Rules, src Source, attacker, defender *Territory) (AttackOutcome, error) {
	if attacker == defender {
		return AttackOutcome{}, &AttackError{Attacker: attacker.Name, Defender: defender.Name, Err: ErrSelfAttack}
	}
	if attacker.Color == defender.Color {
		return AttackOutcome{}, &AttackError{Attacker: attacker.Name, Defender: defender.Name, Err: ErrSameFaction}
	}
	if attacker.Troops < rules.MinAttackTroops() {
		return AttackOutcome{}, &AttackError{Attacker: attacker.Name, Defender: defender.Name, Err: ErrInsufficientTroops}
	}

	outcome := AttackOutcome{
		AttackRoll:  rollDie(src, rules.DieSides()),
		DefenseRoll: rollDie(src, rules.DieSides()),
	}

	if rules.IsAttackSuccessful(outcome.AttackRoll, outcome.DefenseRoll) {
		defender.Troops = attacker.Troops / 2
		defender.Color = attacker.Color
		outcome.Winner = Attacker
		outcome.Conquered = true
	} else {
		attacker.Troops--
		outcome.Winner = Defender
	}

	outcome.Attacker = *attacker
	outcome.Defender = *defender
	return outcome, nil
}
