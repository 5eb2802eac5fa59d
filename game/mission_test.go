package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustBoard(t require.TestingT, territories ...Territory) *Board {
	b, err := NewBoard(territories)
	require.NoError(t, err)
	return b
}

func TestParseMission(t *testing.T) {
	cases := []struct {
		text string
		want MissionKind
	}{
		{"Conquer 3 territories in a row", MissionThreeTerritories},
		{"Eliminate all red troops", MissionEliminateRed},
		{"Conquer 5 territories in a single round", MissionUnknown},
		{"Have 10 troops in a single territory", MissionTenTroops},
		{"Conquer all territories on the map", MissionConquerAll},
		{"conquer 3 territories in a row", MissionThreeTerritories},
		{"ELIMINATE ALL RED TROOPS!", MissionEliminateRed},
		{"Conquistar 3 territórios seguidos.", MissionThreeTerritories},
		{"Eliminar todas as tropas da cor vermelha.", MissionEliminateRed},
		{"Ter 10 tropas em um unico territorio.", MissionTenTroops},
		{"Conquistar todos os territórios do mapa.", MissionConquerAll},
		{"", MissionUnknown},
		{"win the game", MissionUnknown},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			require.Equal(t, c.want, ParseMission(c.text))
		})
	}

	t.Run("first matching phrase wins", func(t *testing.T) {
		text := "Have 10 troops, then conquer 3 territories in a row and eliminate all red troops"
		require.Equal(t, MissionThreeTerritories, ParseMission(text))
	})
}

func TestCheckMission(t *testing.T) {
	t.Run("red territory left means red is not eliminated", func(t *testing.T) {
		board := mustBoard(t,
			Territory{Name: "a", Color: "blue", Troops: 5},
			Territory{Name: "b", Color: "red", Troops: 3},
		)
		require.False(t, CheckMissionText("eliminate all red troops", board, "blue"))
	})

	t.Run("red is eliminated once no red territory is left", func(t *testing.T) {
		board := mustBoard(t,
			Territory{Name: "a", Color: "blue", Troops: 5},
			Territory{Name: "b", Color: "green", Troops: 3},
		)
		require.True(t, CheckMissionText("Eliminate all red troops", board, "blue"))
	})

	t.Run("vermelha counts as red", func(t *testing.T) {
		board := mustBoard(t,
			Territory{Name: "a", Color: "azul", Troops: 5},
			Territory{Name: "b", Color: "vermelha", Troops: 3},
		)
		require.False(t, CheckMissionText("Eliminar todas as tropas da cor vermelha.", board, "azul"))
	})

	t.Run("three owned territories", func(t *testing.T) {
		board := mustBoard(t,
			Territory{Name: "a", Color: "blue", Troops: 5},
			Territory{Name: "b", Color: "blue", Troops: 3},
			Territory{Name: "c", Color: "blue", Troops: 1},
		)
		require.True(t, CheckMissionText("conquer 3 territories in a row", board, "blue"))
		require.False(t, CheckMissionText("conquer 3 territories in a row", board, "red"))
	})

	t.Run("three territories does not fall through to later rules", func(t *testing.T) {
		board := mustBoard(t,
			Territory{Name: "a", Color: "blue", Troops: 12},
			Territory{Name: "b", Color: "green", Troops: 3},
		)
		text := "Conquer 3 territories in a row or have 10 troops"
		require.True(t, CheckMissionText("Have 10 troops", board, "blue"))
		require.False(t, CheckMissionText(text, board, "blue"), "Only the first matching rule should be checked")
	})

	t.Run("ten troops on an owned territory", func(t *testing.T) {
		board := mustBoard(t,
			Territory{Name: "a", Color: "blue", Troops: 9},
			Territory{Name: "b", Color: "red", Troops: 15},
		)
		mission := NewMission("Have 10 troops in a single territory")
		require.False(t, CheckMission(mission, board, "blue"), "Troops of another faction should not count")

		territory, err := board.At(0)
		require.NoError(t, err)
		territory.Troops = 10
		require.True(t, CheckMission(mission, board, "blue"))
	})

	t.Run("conquer all territories", func(t *testing.T) {
		board := mustBoard(t,
			Territory{Name: "a", Color: "blue", Troops: 1},
			Territory{Name: "b", Color: "blue", Troops: 1},
		)
		require.True(t, CheckMissionText("Conquer all territories on the map", board, "blue"))

		territory, err := board.At(1)
		require.NoError(t, err)
		territory.Color = "red"
		require.False(t, CheckMissionText("Conquer all territories on the map", board, "blue"))
	})

	t.Run("conquer all on an empty board", func(t *testing.T) {
		require.True(t, CheckMissionText("Conquer all territories", mustBoard(t), "blue"))
	})

	t.Run("five territories in a round is never fulfilled", func(t *testing.T) {
		board := mustBoard(t,
			Territory{Name: "a", Color: "blue", Troops: 10},
			Territory{Name: "b", Color: "blue", Troops: 10},
			Territory{Name: "c", Color: "blue", Troops: 10},
			Territory{Name: "d", Color: "blue", Troops: 10},
			Territory{Name: "e", Color: "blue", Troops: 10},
		)
		require.False(t, CheckMissionText("Conquer 5 territories in a single round", board, "blue"))
	})

	t.Run("unknown mission is false", func(t *testing.T) {
		board := mustBoard(t, Territory{Name: "a", Color: "blue", Troops: 10})
		require.False(t, CheckMissionText("garbled ###", board, "blue"))
	})
}

func TestCheckMissionIsPure(t *testing.T) {
	colors := []string{"blue", "red", "green"}
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "n")
		territories := make([]Territory, n)
		for i := range territories {
			territories[i] = Territory{
				Name:   "t",
				Color:  rapid.SampledFrom(colors).Draw(rt, "color"),
				Troops: rapid.IntRange(0, 15).Draw(rt, "troops"),
			}
		}
		board := mustBoard(rt, territories...)
		mission := NewMission(rapid.SampledFrom(Missions()).Draw(rt, "mission"))
		color := rapid.SampledFrom(colors).Draw(rt, "player")

		first := CheckMission(mission, board, color)
		second := CheckMission(mission, board, color)

		require.Equal(rt, first, second)
		require.Equal(rt, territories, board.Territories(), "Board should not be modified")
	})
}

func TestAssignMission(t *testing.T) {
	t.Run("picks the catalog entry at the drawn index", func(t *testing.T) {
		for i, text := range Missions() {
			mission := AssignMission(&scriptedSource{values: []int{i}})
			require.Equal(t, text, mission.Text)
			require.Equal(t, ParseMission(text), mission.Kind)
			require.Equal(t, i, MissionIndex(mission.Text))
		}
	})

	t.Run("always returns a catalog entry", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			mission := AssignMission(NewSource(rapid.Uint64().Draw(rt, "seed")))
			require.GreaterOrEqual(rt, MissionIndex(mission.Text), 0)
		})
	})

	t.Run("catalog copies are independent", func(t *testing.T) {
		missions := Missions()
		require.Len(t, missions, 5)
		missions[0] = "changed"
		require.Equal(t, "Conquer 3 territories in a row", Missions()[0])
	})
}

func TestPlayer(t *testing.T) {
	player := NewPlayer("blue", &scriptedSource{values: []int{4}})
	require.Equal(t, MissionConquerAll, player.Mission.Kind)

	board := mustBoard(t, Territory{Name: "a", Color: "blue", Troops: 1})
	require.True(t, player.HasWon(board))
}
