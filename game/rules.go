package game

type Rules interface {
	DieSides() int
	MinAttackTroops() int
	IsAttackSuccessful(attackRoll, defenseRoll int) bool
}
