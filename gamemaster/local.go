package gamemaster

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"war/game"
	"war/metrics"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

type Option func(s *Session)

func WithSource(src game.Source) Option {
	return func(s *Session) {
		if src != nil {
			s.src = src
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithMission gives the player a fixed mission instead of drawing one.
func WithMission(text string) Option {
	return func(s *Session) {
		if text != "" {
			mission := game.NewMission(text)
			s.mission = &mission
		}
	}
}

func WithMetrics() Option {
	return func(s *Session) {
		s.metrics = metrics.NewCollector()
	}
}

// Session is one game: the board, the human player and everything needed to
// resolve their attacks. It is not safe for concurrent use.
type Session struct {
	board   *game.Board
	player  game.Player
	rules   game.Rules
	src     game.Source
	mission *game.Mission
	metrics metrics.Collector
	records []metrics.AttackRecord
	won     bool
	quit    bool
}

// NewSession starts a game on board for the player commanding color and
// assigns the player's mission.
func NewSession(board *game.Board, color string, options ...Option) (*Session, error) {
	if board == nil {
		return nil, fmt.Errorf("cannot start session: no board")
	}
	if _, err := game.NewTerritory("", color, 0); err != nil {
		return nil, fmt.Errorf("cannot start session: player color: %w", err)
	}

	s := &Session{ // Default values
		board:   board,
		rules:   game.NewStandardRules(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.src == nil {
		seed, err := game.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("cannot start session: %w", err)
		}
		s.src = game.NewSource(seed)
	}

	s.player = game.Player{Color: color}
	if s.mission != nil {
		s.player.Mission = *s.mission
	} else {
		s.player.Mission = game.AssignMission(s.src)
	}

	s.metrics.Start(color, s.player.Mission.Text)
	log.Info().Msgf("session started with %d territories, player %s has mission %q (%s)",
		board.Len(), color, s.player.Mission.Text, s.player.Mission.Kind)
	return s, nil
}

// Attack resolves an attack from territory index from against index to.
func (s *Session) Attack(from, to int) (game.AttackOutcome, error) {
	if s.Over() {
		return game.AttackOutcome{}, ErrGameOver
	}

	record := metrics.AttackRecord{Step: len(s.records) + 1, From: from, To: to}
	outcome, err := s.attack(from, to, &record)
	if err != nil {
		record.Error = err.Error()
		s.records = append(s.records, record)
		s.metrics.AddRefused()
		log.Warn().Msgf("attack %d -> %d refused: %v", from, to, err)
		return game.AttackOutcome{}, err
	}

	record.AttackerColor = outcome.Attacker.Color
	record.DefenderColor = outcome.Defender.Color
	record.AttackRoll = outcome.AttackRoll
	record.DefenseRoll = outcome.DefenseRoll
	record.Winner = outcome.Winner.String()
	record.Conquered = outcome.Conquered
	s.records = append(s.records, record)
	s.metrics.AddAttack(outcome)

	log.Debug().Msgf("attack %s -> %s rolled %d vs %d, %s wins",
		outcome.Attacker.Name, outcome.Defender.Name, outcome.AttackRoll, outcome.DefenseRoll, outcome.Winner)
	if outcome.Conquered {
		log.Info().Msgf("%s now belongs to %s with %d troops", outcome.Defender.Name, outcome.Defender.Color, outcome.Defender.Troops)
	}
	return outcome, nil
}

func (s *Session) attack(from, to int, record *metrics.AttackRecord) (game.AttackOutcome, error) {
	attacker, err := s.board.At(from)
	if err != nil {
		return game.AttackOutcome{}, fmt.Errorf("attacker: %w", err)
	}
	record.Attacker = attacker.Name
	defender, err := s.board.At(to)
	if err != nil {
		return game.AttackOutcome{}, fmt.Errorf("defender: %w", err)
	}
	record.Defender = defender.Name
	return game.ResolveAttack(s.rules, s.src, attacker, defender)
}

// CheckMission evaluates the player's mission. A fulfilled mission ends the game.
func (s *Session) CheckMission() bool {
	fulfilled := s.player.HasWon(s.board)
	s.metrics.AddMissionCheck(fulfilled)
	if fulfilled {
		s.won = true
		log.Info().Msgf("player %s fulfilled mission %q", s.player.Color, s.player.Mission.Text)
	} else {
		log.Debug().Msgf("mission %q not fulfilled yet", s.player.Mission.Text)
	}
	return fulfilled
}

// Quit ends the game without a winner.
func (s *Session) Quit() {
	if !s.Over() {
		log.Info().Msg("player left the game")
	}
	s.quit = true
}

func (s *Session) Over() bool {
	return s.won || s.quit
}

func (s *Session) Won() bool {
	return s.won
}

func (s *Session) Board() *game.Board {
	return s.board
}

func (s *Session) Player() game.Player {
	return s.player
}

// Log returns the attacks attempted so far, refused ones included.
func (s *Session) Log() []metrics.AttackRecord {
	out := make([]metrics.AttackRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Stats returns the session summary. It is empty unless the session was built WithMetrics.
func (s *Session) Stats() metrics.SessionMetric {
	return s.metrics.Complete()
}
