package metrics

import (
	"sync/atomic"
	"time"

	"war/game"
)

// AttackRecord is one line of the battle log, resolved or refused.
type AttackRecord struct {
	Step          int
	From          int
	To            int
	Attacker      string
	Defender      string
	AttackerColor string // After the battle
	DefenderColor string // After the battle
	AttackRoll    int
	DefenseRoll   int
	Winner        string // "" when the attack was refused
	Conquered     bool
	Error         string
}

// SessionMetric summarises a game session.
type SessionMetric struct {
	PlayerColor   string
	Mission       string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Attacks       int
	Refused       int
	AttackerWins  int
	DefenderWins  int
	Conquests     int
	MissionChecks int
	Won           bool
}

type Collector interface {
	Start(playerColor, mission string)
	AddAttack(outcome game.AttackOutcome)
	AddRefused()
	AddMissionCheck(fulfilled bool)
	Complete() SessionMetric
}

type collector struct {
	playerColor   string
	mission       string
	startTime     time.Time
	attacks       atomic.Int32
	refused       atomic.Int32
	attackerWins  atomic.Int32
	defenderWins  atomic.Int32
	conquests     atomic.Int32
	missionChecks atomic.Int32
	won           atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(playerColor, mission string) {
	m.startTime = time.Now()
	m.playerColor = playerColor
	m.mission = mission
}

func (m *collector) AddAttack(outcome game.AttackOutcome) {
	m.attacks.Add(1)
	if outcome.Winner == game.Attacker {
		m.attackerWins.Add(1)
	} else {
		m.defenderWins.Add(1)
	}
	if outcome.Conquered {
		m.conquests.Add(1)
	}
}

func (m *collector) AddRefused() {
	m.refused.Add(1)
}

func (m *collector) AddMissionCheck(fulfilled bool) {
	m.missionChecks.Add(1)
	if fulfilled {
		m.won.Store(true)
	}
}

func (m *collector) Complete() SessionMetric {
	end := time.Now()
	return SessionMetric{
		PlayerColor:   m.playerColor,
		Mission:       m.mission,
		StartTime:     m.startTime,
		EndTime:       end,
		Duration:      end.Sub(m.startTime),
		Attacks:       int(m.attacks.Load()),
		Refused:       int(m.refused.Load()),
		AttackerWins:  int(m.attackerWins.Load()),
		DefenderWins:  int(m.defenderWins.Load()),
		Conquests:     int(m.conquests.Load()),
		MissionChecks: int(m.missionChecks.Load()),
		Won:           m.won.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(playerColor, mission string)    {}
func (m *dummyCollector) AddAttack(outcome game.AttackOutcome) {}
func (m *dummyCollector) AddRefused()                          {}
func (m *dummyCollector) AddMissionCheck(fulfilled bool)       {}
func (m *dummyCollector) Complete() SessionMetric              { return SessionMetric{} }
