package game

import "war/meta"

type StandardRules struct {
	Sides           int
	MinAttackForces int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sides:           meta.DIE_SIDES,
		MinAttackForces: meta.MIN_ATTACK_TROOPS,
	}
}

func (sr *StandardRules) DieSides() int {
	return sr.Sides
}

func (sr *StandardRules) MinAttackTroops() int {
	return sr.MinAttackForces
}

// IsAttackSuccessful compares strictly: a tie goes to the defender.
func (sr *StandardRules) IsAttackSuccessful(attackRoll, defenseRoll int) bool {
	return attackRoll > defenseRoll
}
