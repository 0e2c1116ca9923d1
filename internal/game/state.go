// Package game implements the half-inning and game loop, including the pitcher hook (§4.7.1), relief selection
// (§4.7.2), and rotation ordering (§4.7.3).
package game

import (
	"github.com/baseball-sim/core/internal/atbat"
	"github.com/baseball-sim/core/internal/ratings"
)

// LineupState is the per-team batting-order and defensive assignment
// state for one game.
type LineupState struct {
	Order         []string // 9 batter IDs, index 0 = leadoff
	Positions     map[string]ratings.Position
	Players       map[string]*ratings.Batter
	Bench         []*ratings.Batter
	UsedBench     map[string]bool
	SubLog        []string
	BatterLines   map[string]*atbat.BatterLine
	FieldingLines map[string]*atbat.FieldingLine

	battingIndex int
}

// NewLineupState builds an empty-stats lineup from a batting order,
// position map and roster lookup.
func NewLineupState(order []string, positions map[string]ratings.Position, players map[string]*ratings.Batter, bench []*ratings.Batter) *LineupState {
	ls := &LineupState{
		Order:         order,
		Positions:     positions,
		Players:       players,
		Bench:         bench,
		UsedBench:     make(map[string]bool),
		BatterLines:   make(map[string]*atbat.BatterLine),
		FieldingLines: make(map[string]*atbat.FieldingLine),
	}
	for _, id := range order {
		ls.BatterLines[id] = &atbat.BatterLine{}
		ls.FieldingLines[id] = &atbat.FieldingLine{}
	}
	return ls
}

// NextBatter returns the next batter ID in the order and advances the
// index, wrapping around.
func (ls *LineupState) NextBatter() string {
	id := ls.Order[ls.battingIndex%len(ls.Order)]
	ls.battingIndex++
	return id
}

// Substitute replaces a lineup player with a bench player at the same
// batting-order slot, keeping the prior batter's accumulated line.
func (ls *LineupState) Substitute(outID, inID string, pos ratings.Position) {
	for i, id := range ls.Order {
		if id == outID {
			ls.Order[i] = inID
			break
		}
	}
	ls.Positions[inID] = pos
	ls.UsedBench[inID] = true
	if _, ok := ls.BatterLines[inID]; !ok {
		ls.BatterLines[inID] = &atbat.BatterLine{}
	}
	if _, ok := ls.FieldingLines[inID]; !ok {
		ls.FieldingLines[inID] = &atbat.FieldingLine{}
	}
	ls.SubLog = append(ls.SubLog, outID+"->"+inID)
}

// PositionMap builds the position -> Batter map fielding.Assign needs.
func (ls *LineupState) PositionMap() map[ratings.Position]*ratings.Batter {
	out := make(map[ratings.Position]*ratings.Batter, len(ls.Positions))
	for id, pos := range ls.Positions {
		if b, ok := ls.Players[id]; ok {
			out[pos] = b
		}
	}
	return out
}

// PitcherState is the per-pitcher in-game workload/usage snapshot
//.
type PitcherState struct {
	Pitcher                *ratings.Pitcher
	Pitches                int
	FatigueStart           float64
	FatigueLimit           float64
	LastFatiguePenalty     float64
	PregamePenalty         float64
	UsageMultiplier        float64
	Debt                   float64
	Used                   bool
	Available              bool
	StaffRole              ratings.Role
	RestRole               ratings.Role
	InSaveSituation        bool
	EnteredSaveOpportunity bool
}

// FatigueFactor derives the per-pitch fatigue multiplier from pitches
// thrown relative to fatigue_start/fatigue_limit.
func (ps *PitcherState) FatigueFactor() float64 {
	if ps.FatigueLimit <= ps.FatigueStart {
		return 1.0
	}
	if float64(ps.Pitches) <= ps.FatigueStart {
		return 1.0
	}
	span := ps.FatigueLimit - ps.FatigueStart
	over := float64(ps.Pitches) - ps.FatigueStart
	frac := over / span
	if frac > 1 {
		frac = 1
	}
	return 1.0 - 0.25*frac
}

// TeamPitchingState is the per-team pitching staff state for one game
//.
type TeamPitchingState struct {
	Starter *PitcherState
	Bullpen []*PitcherState
	Current *PitcherState
	Lines   map[string]*atbat.PitcherLine
}

// NewTeamPitchingState builds the staff state with the starter active.
func NewTeamPitchingState(starter *PitcherState, bullpen []*PitcherState) *TeamPitchingState {
	tps := &TeamPitchingState{
		Starter: starter,
		Bullpen: bullpen,
		Current: starter,
		Lines:   make(map[string]*atbat.PitcherLine),
	}
	tps.Lines[starter.Pitcher.ID] = &atbat.PitcherLine{G: 1, GS: 1}
	return tps
}

// ChangePitcher swaps the active pitcher, running exit bookkeeping
// for the outgoing pitcher (a hold for a non-closer leaving a save
// situation with no save or blown save on the line; no save or blown
// save is credited here) and entry
// bookkeeping (inherited runners, save-opportunity flag) for the
// incoming one.
func (tps *TeamPitchingState) ChangePitcher(next *PitcherState, inherited int, saveOpportunity bool) {
	outLine := tps.Lines[tps.Current.Pitcher.ID]
	if outLine != nil && tps.Current.InSaveSituation && !blownOrSaved(outLine) {
		// Leaving mid-save-situation without recording the save or a
		// blown save is a hold for a non-closer reliever.
		if tps.Current.StaffRole != ratings.RoleCloser {
			outLine.HLD++
		}
	}

	tps.Current.Used = true
	tps.Current = next
	next.Used = true
	next.InSaveSituation = saveOpportunity
	next.EnteredSaveOpportunity = saveOpportunity

	if _, ok := tps.Lines[next.Pitcher.ID]; !ok {
		tps.Lines[next.Pitcher.ID] = &atbat.PitcherLine{G: 1}
	}
	line := tps.Lines[next.Pitcher.ID]
	line.IR += inherited
}

func blownOrSaved(line *atbat.PitcherLine) bool {
	return line.SV > 0 || line.BS > 0
}
