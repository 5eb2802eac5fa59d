package game

import (
	"fmt"
	"strings"

	"war/meta"
	"war/utils"
)

// catalog is the fixed list of secret missions, in draw order.
var catalog = [...]string{
	"Conquer 3 territories in a row",
	"Eliminate all red troops",
	"Conquer 5 territories in a single round",
	"Have 10 troops in a single territory",
	"Conquer all territories on the map",
}

// redColors are the color tokens that count as the red faction.
var redColors = []string{"red", "vermelha"}

// MissionKind is the rule a mission text is checked against.
type MissionKind int

const (
	MissionUnknown MissionKind = iota
	MissionThreeTerritories
	MissionEliminateRed
	MissionTenTroops
	MissionConquerAll
)

func (k MissionKind) String() string {
	switch k {
	case MissionUnknown:
		return "unknown"
	case MissionThreeTerritories:
		return "three-territories"
	case MissionEliminateRed:
		return "eliminate-red"
	case MissionTenTroops:
		return "ten-troops"
	case MissionConquerAll:
		return "conquer-all"
	default:
		return fmt.Sprintf("MissionKind(%d)", int(k))
	}
}

// missionRules maps key phrases to kinds. Order matters: a text is matched
// against the first rule with a phrase it contains and no other.
var missionRules = []struct {
	kind    MissionKind
	phrases []string
}{
	{MissionThreeTerritories, []string{"conquer 3 territories in a row", "conquistar 3 territórios seguidos"}},
	{MissionEliminateRed, []string{"eliminate all red troops", "eliminar todas as tropas da cor vermelha"}},
	{MissionTenTroops, []string{"have 10 troops", "ter 10 tropas"}},
	{MissionConquerAll, []string{"conquer all territories", "conquistar todos os territórios"}},
}

// Mission is the secret goal held by a player.
type Mission struct {
	Text string
	Kind MissionKind
}

func (m Mission) String() string {
	return m.Text
}

// Missions returns a copy of the mission catalog.
func Missions() []string {
	out := make([]string, len(catalog))
	copy(out, catalog[:])
	return out
}

// MissionIndex returns the catalog position of text, or -1 for a text outside the catalog.
func MissionIndex(text string) int {
	return utils.FindIndex(catalog[:], text)
}

// NewMission parses text into a mission.
func NewMission(text string) Mission {
	return Mission{Text: text, Kind: ParseMission(text)}
}

// AssignMission draws a mission uniformly from the catalog.
func AssignMission(src Source) Mission {
	return NewMission(catalog[src.Intn(len(catalog))])
}

// ParseMission finds the rule a mission text refers to by looking for a key
// phrase in it, ignoring case. Texts with no known phrase are MissionUnknown.
func ParseMission(text string) MissionKind {
	lower := strings.ToLower(text)
	for _, rule := range missionRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				return rule.kind
			}
		}
	}
	return MissionUnknown
}

// CheckMissionText parses text and checks it against the board.
func CheckMissionText(text string, board *Board, color string) bool {
	return CheckMission(NewMission(text), board, color)
}

// CheckMission reports whether the mission is fulfilled for the player holding color.
// The board is only read.
func CheckMission(mission Mission, board *Board, color string) bool {
	territories := board.territories
	switch mission.Kind {
	case MissionThreeTerritories:
		return board.Owned(color) >= meta.THREE_TERRITORIES
	case MissionEliminateRed:
		for _, t := range territories {
			if isRed(t.Color) {
				return false
			}
		}
		return true
	case MissionTenTroops:
		for _, t := range territories {
			if t.Color == color && t.Troops >= meta.TEN_TROOPS {
				return true
			}
		}
		return false
	case MissionConquerAll:
		for _, t := range territories {
			if t.Color != color {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isRed(color string) bool {
	return utils.FindIndex(redColors, color) >= 0
}
