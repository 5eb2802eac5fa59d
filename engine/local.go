package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"

	"war/game"
	"war/gamemaster"
	"war/meta"
)

// Engine drives a session from a terminal: it reads the player's choices and
// prints the board, the battles and the mission checks.
type Engine struct {
	Session *gamemaster.Session
	prompt  *prompter
	out     io.Writer
}

func LocalEngine(session *gamemaster.Session, in io.Reader, out io.Writer) *Engine {
	return &Engine{
		Session: session,
		prompt:  newPrompter(in, out),
		out:     out,
	}
}

// Setup registers the territories and the player's color interactively, then
// starts a session with them.
func Setup(in io.Reader, out io.Writer, options ...gamemaster.Option) (*Engine, error) {
	p := newPrompter(in, out)

	territories, err := readTerritories(p)
	if err != nil {
		return nil, err
	}
	board, err := game.NewBoard(territories)
	if err != nil {
		return nil, err
	}

	var color string
	for {
		color, err = p.line("\nWhat is the color of your army? ")
		if err != nil {
			return nil, err
		}
		if _, err = game.NewTerritory("", color, 0); err == nil {
			break
		}
		fmt.Fprintf(out, "[ERROR] %v\n", err)
	}

	session, err := gamemaster.NewSession(board, color, options...)
	if err != nil {
		return nil, err
	}
	return &Engine{Session: session, prompt: p, out: out}, nil
}

func readTerritories(p *prompter) ([]game.Territory, error) {
	var n int
	for {
		var err error
		n, err = p.number(fmt.Sprintf("How many territories do you want to register? (usually %d) ", meta.DEFAULT_TERRITORIES))
		if err != nil {
			return nil, err
		}
		if n > 0 {
			break
		}
		fmt.Fprintln(p.out, "[ERROR] Register at least one territory.")
	}

	territories := make([]game.Territory, 0, n)
	for i := 0; i < n; {
		fmt.Fprintf(p.out, "\n--- Territory %d ---\n", i)
		name, err := p.line("Name: ")
		if err != nil {
			return nil, err
		}
		color, err := p.line("Army color: ")
		if err != nil {
			return nil, err
		}
		troops, err := p.number("Troops: ")
		if err != nil {
			return nil, err
		}
		t, err := game.NewTerritory(name, color, troops)
		if err != nil {
			fmt.Fprintf(p.out, "[ERROR] %v\n", err)
			continue
		}
		territories = append(territories, t)
		i++
	}
	return territories, nil
}

// Run shows the mission and loops on the main menu until the mission is
// fulfilled, the player quits or the input ends.
func (e *Engine) Run() error {
	renderMission(e.out, e.Session.Player().Mission)

	for !e.Session.Over() {
		renderMenu(e.out)
		answer, err := e.prompt.line("Choose an option: ")
		if err != nil {
			return e.stop(err)
		}

		option, err := strconv.Atoi(answer)
		if err != nil {
			option = -1
		}
		switch option {
		case meta.OPTION_ATTACK:
			if err := e.attack(); err != nil {
				return e.stop(err)
			}
		case meta.OPTION_MISSION:
			if e.Session.CheckMission() {
				renderVictory(e.out)
			} else {
				fmt.Fprintln(e.out, "\nMission not fulfilled yet. Keep playing!")
			}
		case meta.OPTION_QUIT:
			e.Session.Quit()
		default:
			fmt.Fprintln(e.out, "\nInvalid option!")
		}
	}
	return nil
}

func (e *Engine) attack() error {
	board := e.Session.Board()
	renderBoard(e.out, board.Territories())

	from, err := e.prompt.number("\nChoose the attacking territory (index): ")
	if err != nil {
		return err
	}
	to, err := e.prompt.number("Choose the defending territory (index): ")
	if err != nil {
		return err
	}

	before := board.Territories()
	outcome, err := e.Session.Attack(from, to)
	if err != nil {
		renderAttackError(e.out, err)
		return nil
	}
	renderAttack(e.out, before[from], before[to], outcome)
	return nil
}

// stop ends the session when the input runs out; other read errors are returned.
func (e *Engine) stop(err error) error {
	e.Session.Quit()
	if errors.Is(err, io.EOF) {
		log.Info().Msg("input closed, leaving the game")
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
