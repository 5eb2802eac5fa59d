package game

// Player is the human side of a session: the faction it commands and its secret mission.
type Player struct {
	Color   string
	Mission Mission
}

// NewPlayer draws a mission for the player commanding color.
func NewPlayer(color string, src Source) Player {
	return Player{
		Color:   color,
		Mission: AssignMission(src),
	}
}

// HasWon checks the player's mission against the board.
func (p Player) HasWon(board *Board) bool {
	return CheckMission(p.Mission, board, p.Color)
}
