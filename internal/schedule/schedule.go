// Package schedule implements the round-robin and MLB-style schedule
// generators.
package schedule

import (
	"github.com/baseball-sim/core/internal/simerrors"
)

// Game is one scheduled matchup.
type Game struct {
	Home, Away string
	Day        int // 0-based day offset within the produced calendar
}

// RoundRobin produces n-1 rounds where each of n teams plays every
// other team once; on odd n a bye is inserted; home/away alternates
// round to round.
func RoundRobin(teams []string) [][]Game {
	n := len(teams)
	working := make([]string, n)
	copy(working, teams)
	hasBye := n%2 == 1
	if hasBye {
		working = append(working, "")
		n++
	}

	rounds := n - 1
	half := n / 2
	rotation := make([]string, n)
	copy(rotation, working)

	out := make([][]Game, 0, rounds)
	for r := 0; r < rounds; r++ {
		var round []Game
		for i := 0; i < half; i++ {
			home, away := rotation[i], rotation[n-1-i]
			if home == "" || away == "" {
				continue
			}
			if r%2 == 1 {
				home, away = away, home
			}
			round = append(round, Game{Home: home, Away: away, Day: r})
		}
		out = append(out, round)

		// Rotate all but the first element.
		fixed := rotation[0]
		rest := append([]string{}, rotation[1:]...)
		rest = append(rest[len(rest)-1:], rest[:len(rest)-1]...)
		rotation = append([]string{fixed}, rest...)
	}
	return out
}

// seriesEntry is one planned series within the MLB-style builder.
type seriesEntry struct {
	Home, Away string
	Length     int
}

// BuildMLBSchedule implements the MLB-style builder: pick
// a cycle count so that cycles land games-per-team in range, plan a
// deterministic double round-robin per cycle, shrink/grow series
// length to hit the target exactly, then expand day-by-day with a
// 6-day All-Star break and 1-day travel buffers.
func BuildMLBSchedule(teams []string, gamesPerTeam int) ([]Game, error) {
	n := len(teams)
	if n < 2 {
		return nil, simerrors.Insufficient("", "schedule requires at least 2 teams")
	}

	cycles := 1
	for {
		minGames := cycles * 4 * (n - 1)
		maxGames := cycles * 8 * (n - 1)
		if gamesPerTeam >= minGames && gamesPerTeam <= maxGames {
			break
		}
		cycles++
		if cycles > 50 {
			return nil, simerrors.ScheduleAnomaly("", "")
		}
	}

	matchupCounts := make(map[[2]string]int)
	teamIndex := make(map[string]int, n)
	for i, t := range teams {
		teamIndex[t] = i
	}

	var plan []seriesEntry
	for c := 0; c < cycles; c++ {
		rr := RoundRobin(teams)
		for leg := 0; leg < 2; leg++ {
			for _, round := range rr {
				for _, g := range round {
					home, away := g.Home, g.Away
					if (c+leg+teamIndex[home]+teamIndex[away])%2 == 1 {
						home, away = away, home
					}
					plan = append(plan, seriesEntry{Home: home, Away: away, Length: 3})
					key := key(home, away)
					matchupCounts[key]++
				}
			}
		}
	}

	totalPerTeam := func() map[string]int {
		totals := make(map[string]int)
		for _, s := range plan {
			totals[s.Home] += s.Length
			totals[s.Away] += s.Length
		}
		return totals
	}

	totals := totalPerTeam()
	overTarget := false
	for _, t := range teams {
		if totals[t] > gamesPerTeam {
			overTarget = true
		}
	}

	adjustToward := func(target int, grow bool) bool {
		changed := false
		for i := range plan {
			totals := totalPerTeam()
			allMatch := true
			for _, t := range teams {
				if totals[t] != target {
					allMatch = false
					break
				}
			}
			if allMatch {
				return true
			}
			s := &plan[i]
			homeOver := totals[s.Home] > target
			awayOver := totals[s.Away] > target
			homeUnder := totals[s.Home] < target
			awayUnder := totals[s.Away] < target
			if grow && homeUnder && awayUnder && s.Length < 4 {
				s.Length++
				changed = true
			} else if !grow && homeOver && awayOver && s.Length > 2 {
				s.Length--
				changed = true
			}
		}
		return changed
	}

	if overTarget {
		for i := 0; i < 500; i++ {
			totals = totalPerTeam()
			done := true
			for _, t := range teams {
				if totals[t] != gamesPerTeam {
					done = false
				}
			}
			if done {
				break
			}
			if !adjustToward(gamesPerTeam, false) {
				break
			}
		}
	} else {
		for i := 0; i < 500; i++ {
			totals = totalPerTeam()
			done := true
			for _, t := range teams {
				if totals[t] != gamesPerTeam {
					done = false
				}
			}
			if done {
				break
			}
			if !adjustToward(gamesPerTeam, true) {
				break
			}
		}
	}

	totals = totalPerTeam()
	for _, t := range teams {
		if totals[t] != gamesPerTeam {
			return nil, simerrors.ScheduleAnomaly(t, "")
		}
	}

	return expand(plan, n), nil
}

func key(a, b string) [2]string {
	if a < b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

func expand(plan []seriesEntry, numTeams int) []Game {
	var games []Game
	day := 0
	halfway := len(plan) / 2
	breakInserted := false

	for i, s := range plan {
		for g := 0; g < s.Length; g++ {
			games = append(games, Game{Home: s.Home, Away: s.Away, Day: day})
			day++
		}
		day++ // 1-day travel buffer between series

		if !breakInserted && i >= halfway {
			day += 6
			breakInserted = true
		}
	}
	return games
}

// Validate runs post-hoc validation of a produced schedule.
func Validate(games []Game, teams []string, gamesPerTeam int) error {
	counts := make(map[string]int)
	for _, g := range games {
		counts[g.Home]++
		counts[g.Away]++
	}
	for _, t := range teams {
		if counts[t] != gamesPerTeam {
			return simerrors.ScheduleAnomaly(t, "")
		}
	}
	return nil
}
