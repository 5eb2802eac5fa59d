// meta/meta.go
package meta

// DIE_SIDES is the number of faces on the attack and defense dice.
const DIE_SIDES = 6

// MIN_ATTACK_TROOPS is the smallest garrison allowed to launch an attack.
// The attacker must keep at least one troop behind.
const MIN_ATTACK_TROOPS = 2

// MAX_NAME_LEN bounds a territory name, in runes.
const MAX_NAME_LEN = 29

// MAX_COLOR_LEN bounds a faction color token, in runes.
const MAX_COLOR_LEN = 9

// DEFAULT_TERRITORIES is the board size suggested by the setup prompt.
const DEFAULT_TERRITORIES = 5

// TEN_TROOPS is the garrison the "have 10 troops" mission asks for.
const TEN_TROOPS = 10

// THREE_TERRITORIES is the territory count the "conquer 3 territories" mission asks for.
const THREE_TERRITORIES = 3

// Menu options of the game loop.
const (
	OPTION_QUIT    = 0
	OPTION_ATTACK  = 1
	OPTION_MISSION = 2
)
