package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teams(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func TestRoundRobinEveryTeamPlaysEveryOther(t *testing.T) {
	rr := RoundRobin(teams(6))
	assert.Len(t, rr, 5)
	counts := make(map[string]int)
	for _, round := range rr {
		seen := make(map[string]bool)
		for _, g := range round {
			counts[g.Home]++
			counts[g.Away]++
			assert.False(t, seen[g.Home])
			assert.False(t, seen[g.Away])
			seen[g.Home] = true
			seen[g.Away] = true
		}
	}
	for _, c := range counts {
		assert.Equal(t, 5, c)
	}
}

func TestRoundRobinOddTeamsInsertsBye(t *testing.T) {
	rr := RoundRobin(teams(5))
	for _, round := range rr {
		assert.LessOrEqual(t, len(round), 2)
	}
}

func TestBuildMLBScheduleHitsTargetGamesPerTeam(t *testing.T) {
	games, err := BuildMLBSchedule(teams(4), 24)
	require.NoError(t, err)
	require.NoError(t, Validate(games, teams(4), 24))
}

func TestBuildMLBScheduleRejectsSingleTeam(t *testing.T) {
	_, err := BuildMLBSchedule([]string{"A"}, 24)
	assert.Error(t, err)
}

func TestExpandInsertsAllStarBreak(t *testing.T) {
	games, err := BuildMLBSchedule(teams(4), 24)
	require.NoError(t, err)
	maxDay := 0
	for _, g := range games {
		if g.Day > maxDay {
			maxDay = g.Day
		}
	}
	// 24 games across series of length 2-4 plus travel buffers plus a
	// 6-day break must span well beyond the raw game count.
	assert.Greater(t, maxDay, 24)
}
