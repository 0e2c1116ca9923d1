// Package season implements the season driver: steps
// one calendar day at a time through a schedule, firing an All-Star
// break callback at the midpoint and a Draft-Day hook that can pause
// advancement on a roster error.
package season

import (
	"math/rand"
	"sort"

	"github.com/baseball-sim/core/internal/schedule"
	"github.com/baseball-sim/core/internal/simerrors"
)

// GameResult is what the per-game simulator hands back for embedding
// into the game record passed to AfterGame.
type GameResult struct {
	HomeScore, AwayScore int
}

// PlayedGame pairs a scheduled game with its simulated result.
type PlayedGame struct {
	Game   schedule.Game
	Result GameResult
}

// AllStarBreak fires once, at the schedule's midpoint day.
type AllStarBreak func()

// DraftDayHook runs on the configured draft day; returning a
// simerrors draft-roster error pauses the driver.
type DraftDayHook func(day int) error

// GameSimulator seeds and plays one game deterministically.
type GameSimulator func(seed int64, g schedule.Game) GameResult

// AfterGame is invoked once per played game with the result embedded.
type AfterGame func(day int, played PlayedGame)

// Driver steps through a schedule's distinct day list one call at a
// time.
type Driver struct {
	gamesByDay map[int][]schedule.Game
	dates      []int // sorted, distinct; includes draft day even if gameless
	index      int
	midpoint   int

	allStarPlayed bool
	draftDay      int
	hasDraftDay   bool
	draftTriggered bool

	rng *rand.Rand
}

// NewDriver builds a Driver from a flat game list. draftDay is ignored
// when hasDraftDay is false. seed drives the day-level RNG used to
// seed each individual game, preserving the ordering guarantee that
// per-game seeds are drawn from the day RNG in schedule iteration
// order.
func NewDriver(games []schedule.Game, draftDay int, hasDraftDay bool, seed int64) *Driver {
	byDay := make(map[int][]schedule.Game)
	dateSet := make(map[int]bool)
	for _, g := range games {
		byDay[g.Day] = append(byDay[g.Day], g)
		dateSet[g.Day] = true
	}
	if hasDraftDay {
		dateSet[draftDay] = true
	}

	dates := make([]int, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Ints(dates)

	return &Driver{
		gamesByDay:  byDay,
		dates:       dates,
		midpoint:    len(dates) / 2,
		draftDay:    draftDay,
		hasDraftDay: hasDraftDay,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// RemainingDays returns the number of scheduled days left until the
// All-Star break.
func (d *Driver) RemainingDays() int {
	if d.index >= d.midpoint {
		return 0
	}
	return d.midpoint - d.index
}

// RemainingScheduleDays returns the number of scheduled days left in
// the whole season.
func (d *Driver) RemainingScheduleDays() int {
	if d.index >= len(d.dates) {
		return 0
	}
	return len(d.dates) - d.index
}

// Done reports whether every day has been simulated.
func (d *Driver) Done() bool { return d.index >= len(d.dates) }

// SimulateNextDay advances the driver by one day. On a Draft-Day roster error it returns the error
// without advancing index, so a later call retries the same day.
func (d *Driver) SimulateNextDay(allStar AllStarBreak, draftHook DraftDayHook, sim GameSimulator, after AfterGame) error {
	if d.Done() {
		return nil
	}

	if !d.allStarPlayed && d.index >= d.midpoint {
		if allStar != nil {
			allStar()
		}
		d.allStarPlayed = true
	}

	currentDay := d.dates[d.index]

	if d.hasDraftDay && !d.draftTriggered && currentDay == d.draftDay {
		if draftHook != nil {
			if err := draftHook(currentDay); err != nil {
				if se, ok := err.(*simerrors.SimError); ok && se.Kind == simerrors.KindDraftRoster {
					return err // propagate without advancing
				}
				d.draftTriggered = true
				return err
			}
		}
		d.draftTriggered = true
	}

	games := d.gamesByDay[currentDay]
	if len(games) == 0 {
		d.index++
		return nil
	}

	for _, g := range games {
		gameSeed := d.rng.Int63()
		result := sim(gameSeed, g)
		if after != nil {
			after(currentDay, PlayedGame{Game: g, Result: result})
		}
	}

	d.index++
	return nil
}
