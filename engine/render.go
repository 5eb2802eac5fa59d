package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"war/game"
	"war/gamemaster"
)

const rule = "-------------------------------------------"

func renderBoard(w io.Writer, territories []game.Territory) {
	fmt.Fprintf(w, "\n===== TERRITORY MAP =====\n")
	fmt.Fprintf(w, "%-3s | %-20s | %-10s | %-7s\n", "ID", "Name", "Color", "Troops")
	fmt.Fprintln(w, rule)
	for i, t := range territories {
		fmt.Fprintf(w, "%-3d | %-20s | %-10s | %-7d\n", i, t.Name, t.Color, t.Troops)
	}
	fmt.Fprintln(w, rule)
}

func renderMission(w io.Writer, mission game.Mission) {
	fmt.Fprintf(w, "\n===== YOUR MISSION =====\n")
	fmt.Fprintln(w, mission.Text)
	fmt.Fprintln(w, strings.Repeat("=", 24))
}

func renderMenu(w io.Writer) {
	fmt.Fprintf(w, "\n===== MAIN MENU =====\n")
	fmt.Fprintln(w, "1 - Attack a territory")
	fmt.Fprintln(w, "2 - Check mission")
	fmt.Fprintln(w, "0 - Quit")
}

// renderAttack reports a resolved attack. attacker and defender are the
// territories as they were before the battle.
func renderAttack(w io.Writer, attacker, defender game.Territory, outcome game.AttackOutcome) {
	fmt.Fprintf(w, "\nAttack from %s (%s) against %s (%s)\n", attacker.Name, attacker.Color, defender.Name, defender.Color)
	fmt.Fprintf(w, "Attacker die: %d | Defender die: %d\n", outcome.AttackRoll, outcome.DefenseRoll)
	if outcome.Winner == game.Attacker {
		fmt.Fprintln(w, ">> The attacker wins!")
		fmt.Fprintf(w, "%s now belongs to the %s army with %d troops!\n",
			outcome.Defender.Name, outcome.Defender.Color, outcome.Defender.Troops)
		return
	}
	fmt.Fprintln(w, ">> The defense holds!")
	fmt.Fprintf(w, "%s is left with %d troops.\n", outcome.Attacker.Name, outcome.Attacker.Troops)
}

func renderAttackError(w io.Writer, err error) {
	switch {
	case errors.Is(err, game.ErrSameFaction):
		fmt.Fprintln(w, "\n[ERROR] You cannot attack a territory of the same color!")
	case errors.Is(err, game.ErrInsufficientTroops):
		fmt.Fprintln(w, "\n[ERROR] The attacking territory needs at least 2 troops!")
	case errors.Is(err, game.ErrSelfAttack):
		fmt.Fprintln(w, "\n[ERROR] A territory cannot attack itself!")
	case errors.Is(err, game.ErrInvalidIndex):
		fmt.Fprintln(w, "\n[ERROR] Invalid indices!")
	case errors.Is(err, gamemaster.ErrGameOver):
		fmt.Fprintln(w, "\n[ERROR] The game is over.")
	default:
		fmt.Fprintf(w, "\n[ERROR] %v\n", err)
	}
}

func renderVictory(w io.Writer) {
	fmt.Fprintf(w, "\n========== VICTORY ==========\n")
	fmt.Fprintln(w, "Congratulations! You fulfilled your mission!")
	fmt.Fprintln(w, strings.Repeat("=", 29))
}
