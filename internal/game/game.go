package game

import (
	"github.com/baseball-sim/core/internal/atbat"
	"github.com/baseball-sim/core/internal/baserunning"
	"github.com/baseball-sim/core/internal/fielding"
	"github.com/baseball-sim/core/internal/injury"
	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
)

// Team bundles one side's lineup and pitching staff for a game.
type Team struct {
	Lineup   *LineupState
	Pitching *TeamPitchingState
	Injuries []injury.Outcome
}

// Config carries game-level switches.
type Config struct {
	ExtraInningsRunnerFromInning int // 0 disables the rule
	MaxInnings                   int
	Postseason                   bool
	InjuryCatalog                *injury.Catalog
}

// Result is the completed-game summary.
type Result struct {
	HomeScore, AwayScore int
	InningRunsHome       []int
	InningRunsAway       []int
	Innings              int
	EndedInTie           bool
	WalkOff              bool
}

// Play simulates a full game between home and away.
func Play(ctx *simctx.Context, home, away *Team, cfg Config) Result {
	if cfg.MaxInnings <= 0 {
		cfg.MaxInnings = 19
	}

	var res Result
	inning := 1

	for inning <= cfg.MaxInnings {
		topOuts := playHalf(ctx, away, home, inning, false, cfg, &res)
		_ = topOuts
		res.InningRunsAway = append(res.InningRunsAway, lastInningRuns(&res, false))

		if inning >= 9 && res.HomeScore > res.AwayScore {
			res.Innings = inning
			return res
		}

		bottomOuts := playHalf(ctx, home, away, inning, true, cfg, &res)
		_ = bottomOuts
		res.InningRunsHome = append(res.InningRunsHome, lastInningRuns(&res, true))

		if res.WalkOff {
			res.Innings = inning
			return res
		}

		if inning >= 9 && res.HomeScore != res.AwayScore {
			res.Innings = inning
			return res
		}

		inning++
	}

	res.Innings = cfg.MaxInnings
	res.EndedInTie = res.HomeScore == res.AwayScore
	return res
}

func lastInningRuns(res *Result, home bool) int {
	// playHalf adds runs straight to the cumulative score and returns
	// only outs; the per-inning total is the cumulative score minus the
	// innings already recorded.
	if home {
		total := 0
		for _, r := range res.InningRunsHome {
			total += r
		}
		return res.HomeScore - total
	}
	total := 0
	for _, r := range res.InningRunsAway {
		total += r
	}
	return res.AwayScore - total
}

// playHalf runs one half-inning for the batting team against the
// fielding team's current pitcher, returning outs recorded.
func playHalf(ctx *simctx.Context, batting, fielding_ *Team, inning int, isBottom bool, cfg Config, res *Result) int {
	bases := &baserunning.State{}
	outs := 0
	unchargedError := false

	applyExtraInningsRunner(ctx, cfg, inning, batting, bases)
	maybeDefensiveSubstitution(ctx, fielding_, inning, res)
	maybeSaveSituationCallUp(ctx, fielding_, inning, isBottom, res)

	for outs < 3 {
		batterID := batting.Lineup.NextBatter()
		pitcherState := fielding_.Pitching.Current
		pitcherRatings := pitcherState.Pitcher

		scoreDiff := res.HomeScore - res.AwayScore
		if isBottom {
			scoreDiff = -scoreDiff
		}

		batterID = maybePinchHit(ctx, batting, batterID, pitcherRatings.Throws, inning, outs, scoreDiff, bases)
		batterRatings := batting.Lineup.Players[batterID]

		fatigueFactor := pitcherState.FatigueFactor()
		bc := atbat.DeriveBatterContext(batterRatings, pitcherRatings.Throws, 1.0)
		pc := atbat.DerivePitcherContext(pitcherRatings, fatigueFactor)

		def := atbat.Defense{
			Positions: fielding_.Lineup.PositionMap(),
			Pitcher:   pitcherRatings,
			Catcher:   fielding_.Lineup.Players[findCatcherID(fielding_.Lineup)],
		}

		batterLine := batting.Lineup.BatterLines[batterID]
		pitcherLine := fielding_.Pitching.Lines[pitcherRatings.ID]
		pitcherLine.BF++

		var paRes atbat.Result
		switch {
		case atbat.ShouldIntentionalWalk(ctx, offenseScore(batterRatings)+platoonGain(batterRatings, pitcherRatings.Throws), inning, scoreDiff, bases.Runners[0] == nil):
			batterLine.PA++
			batterLine.BB++
			batterLine.IBB++
			pitcherLine.Walks++
			pitcherLine.IBB++
			walkRes := baserunning.ForceWalk(bases, &baserunning.Runner{ID: batterID, Speed: batterRatings.Speed})
			paRes = atbat.Result{Walk: true, IBB: true, RunsScored: walkRes.RunsScored, UnearnedRun: unchargedError}

		case atbat.ShouldBunt(ctx, outs, bases.Runners[0] != nil, bases.Runners[1] != nil, scoreDiff):
			batterLine.PA++
			bunt := atbat.ResolveBunt(ctx, bases, batterRatings, atbat.InfieldRange(def), outs)
			if bunt.Sacrifice {
				batterLine.SH++
			} else {
				batterLine.AB++
				if bunt.Hit {
					batterLine.H++
					batterLine.Single++
					pitcherLine.Hits++
					pitcherLine.Single++
					pitcherLine.ConsecutiveHits++
				}
				if bunt.DoublePlay {
					batterLine.GIDP++
				}
			}
			paRes = atbat.Result{
				RunsScored:   bunt.RunsScored,
				OutsRecorded: bunt.OutsRecorded,
				DoublePlay:   bunt.DoublePlay,
				InPlay:       true,
				UnearnedRun:  unchargedError,
			}

		default:
			paRes = atbat.Run(ctx, bc, pc, bases, &baserunning.Runner{ID: batterID, Speed: batterRatings.Speed}, def,
				batterLine, pitcherLine, atbat.Situation{
					Inning: inning, Outs: outs, HomeScore: res.HomeScore, AwayScore: res.AwayScore,
					UnearnedErrorOccurred: unchargedError,
				})
		}
		if paRes.Error != fielding.NoError {
			unchargedError = true
		}

		outs += paRes.OutsRecorded
		pitcherLine.Outs += paRes.OutsRecorded
		if paRes.OutsRecorded > 0 {
			pitcherLine.ConsecutiveHits = 0
		}

		runsIn := len(paRes.RunsScored)
		if runsIn > 0 {
			pitcherLine.Runs += runsIn
			for _, scored := range paRes.RunsScored {
				if !paRes.UnearnedRun && !scored.Unearned {
					pitcherLine.ER++
				}
			}
			if isBottom {
				res.HomeScore += runsIn
			} else {
				res.AwayScore += runsIn
			}
		}

		if isBottom && inning >= 9 && res.HomeScore > res.AwayScore {
			res.WalkOff = true
			return outs
		}

		if cfg.InjuryCatalog != nil {
			maybeRollInjury(ctx, cfg, fielding_, pitcherState)
		}

		if outs < 3 && ShouldHook(ctx, pitcherState, pitcherLine, inning, isCloseGame(res), cfg.Postseason) {
			hookPitcher(ctx, fielding_, pitcherState, inning, res, isBottom)
		}
	}

	return outs
}

// offenseScore combines contact and power into a single bench-vs-
// lineup comparison figure.
func offenseScore(b *ratings.Batter) float64 {
	return float64(b.Contact)*0.55 + float64(b.Power)*0.45
}

// platoonGain is the extra offense a left-handed-mashing bat gets
// against a left-handed pitcher; zero against a right-hander.
func platoonGain(b *ratings.Batter, pitcherHand ratings.Hand) float64 {
	if pitcherHand != ratings.Left {
		return 0
	}
	return (float64(b.VsLeft) - 50) / 6.0
}

// maybePinchHit swaps in the best available bench bat for batterID
// when the gain clears the configured threshold, returning whichever
// ID should actually hit.
func maybePinchHit(ctx *simctx.Context, batting *Team, batterID string, pitcherHand ratings.Hand, inning, outs, scoreDiff int, bases *baserunning.State) string {
	if inning < int(ctx.Tuning.GetDefault("pinch_hit_inning")) {
		return batterID
	}
	if float64(scoreDiff) > ctx.Tuning.GetDefault("pinch_hit_close_run_diff") {
		return batterID
	}
	if outs >= 2 && bases.Runners[0] == nil && bases.Runners[1] == nil && bases.Runners[2] == nil {
		return batterID
	}

	current := batting.Lineup.Players[batterID]
	currentScore := offenseScore(current)

	var best *ratings.Batter
	var bestTotal float64
	for _, cand := range batting.Lineup.Bench {
		if batting.Lineup.UsedBench[cand.ID] {
			continue
		}
		benchScore := offenseScore(cand)
		gain := platoonGain(cand, pitcherHand)
		if !atbat.ShouldPinchHit(ctx, benchScore, currentScore, gain) {
			continue
		}
		total := benchScore + gain
		if best == nil || total > bestTotal {
			best = cand
			bestTotal = total
		}
	}
	if best == nil {
		return batterID
	}

	pos := batting.Lineup.Positions[batterID]
	batting.Lineup.Players[best.ID] = best
	batting.Lineup.Substitute(batterID, best.ID, pos)
	return best.ID
}

func isCloseGame(res *Result) bool {
	diff := res.HomeScore - res.AwayScore
	if diff < 0 {
		diff = -diff
	}
	return diff <= 2
}

func applyExtraInningsRunner(ctx *simctx.Context, cfg Config, inning int, batting *Team, bases *baserunning.State) {
	if cfg.ExtraInningsRunnerFromInning <= 0 || inning < cfg.ExtraInningsRunnerFromInning {
		return
	}
	// Place the preceding batter on 2nd, marked unearned.
	n := len(batting.Lineup.Order)
	idx := (batting.Lineup.battingIndex - 1 + n) % n
	precedingID := batting.Lineup.Order[idx]
	bases.Runners[1] = &baserunning.Runner{ID: precedingID, Unearned: true}
}

// defenseRatingForPos scales a fielder's raw Fielding rating by how
// well the position fits them: full value at their primary spot, a
// discount at a listed secondary position, a steeper one out of
// position entirely.
func defenseRatingForPos(ctx *simctx.Context, b *ratings.Batter, pos ratings.Position) float64 {
	rating := float64(b.Fielding)
	switch {
	case b.PrimaryPosition == pos:
		rating *= ctx.Tuning.GetDefault("defense_primary_scale")
	case b.EligibleAt(pos):
		rating *= ctx.Tuning.GetDefault("defense_secondary_scale")
	default:
		rating *= ctx.Tuning.GetDefault("defense_out_of_pos_scale")
	}
	return rating
}

// selectDefensiveReplacement finds the bench player who would improve
// the team's fielding the most at any one currently-assigned position.
func selectDefensiveReplacement(ctx *simctx.Context, ls *LineupState) (outID string, pos ratings.Position, cand *ratings.Batter, gain float64) {
	bestGain := 0.0
	var bestOut string
	var bestPos ratings.Position
	var bestCand *ratings.Batter

	for id, p := range ls.Positions {
		current, ok := ls.Players[id]
		if !ok {
			continue
		}
		currentRating := defenseRatingForPos(ctx, current, p)
		for _, candidate := range ls.Bench {
			if ls.UsedBench[candidate.ID] {
				continue
			}
			if candidate.PrimaryPosition != p && !candidate.EligibleAt(p) {
				continue
			}
			candRating := defenseRatingForPos(ctx, candidate, p)
			if g := candRating - currentRating; g > bestGain {
				bestGain = g
				bestOut = id
				bestPos = p
				bestCand = candidate
			}
		}
	}
	return bestOut, bestPos, bestCand, bestGain
}

func maybeDefensiveSubstitution(ctx *simctx.Context, fielding_ *Team, inning int, res *Result) {
	if inning < int(ctx.Tuning.GetDefault("defensive_sub_inning")) {
		return
	}
	diff := res.HomeScore - res.AwayScore
	absDiff := diff
	if absDiff < 0 {
		absDiff = -absDiff
	}
	if float64(absDiff) > ctx.Tuning.GetDefault("defensive_sub_close_run_diff") {
		return
	}
	if diff < 0 {
		return
	}

	outID, pos, cand, gain := selectDefensiveReplacement(ctx, fielding_.Lineup)
	if cand == nil || gain < ctx.Tuning.GetDefault("defensive_sub_fielding_diff") {
		return
	}
	fielding_.Lineup.Players[cand.ID] = cand
	fielding_.Lineup.Substitute(outID, cand.ID, pos)
}

func maybeSaveSituationCallUp(ctx *simctx.Context, fielding_ *Team, inning int, isBottom bool, res *Result) {
	if inning < 9 {
		return
	}
	current := fielding_.Pitching.Current
	if current.StaffRole == ratings.RoleCloser {
		return
	}
	diff := res.HomeScore - res.AwayScore
	if isBottom {
		diff = -diff
	}
	if diff < 0 || diff > 3 {
		return
	}
	for _, cand := range fielding_.Pitching.Bullpen {
		if cand.StaffRole == ratings.RoleCloser && cand.Available && !cand.Used {
			fielding_.Pitching.ChangePitcher(cand, 0, true)
			return
		}
	}
}

func findCatcherID(ls *LineupState) string {
	for id, pos := range ls.Positions {
		if pos == ratings.PosCatcher {
			return id
		}
	}
	return ""
}

func maybeRollInjury(ctx *simctx.Context, cfg Config, fielding_ *Team, ps *PitcherState) {
	metrics := injury.Metrics{
		PitchVelocity: float64(ps.Pitcher.ArmStrength),
		Fatigue:       1.0 - ps.FatigueFactor(),
		Durability:    float64(ps.Pitcher.Durability),
	}
	outcome, ok := injury.MaybeCreateInjury(ctx, cfg.InjuryCatalog, "pitch", true, metrics, false)
	if ok {
		fielding_.Injuries = append(fielding_.Injuries, *outcome)
	}
}

func hookPitcher(ctx *simctx.Context, fielding_ *Team, current *PitcherState, inning int, res *Result, isBottom bool) {
	lev := DeriveLeverage(inning, res.HomeScore-res.AwayScore)
	next := SelectReliever(ctx, fielding_.Pitching.Bullpen, current, lev, ratings.Right, res.HomeScore-res.AwayScore)
	if next == current {
		return
	}
	fielding_.Pitching.ChangePitcher(next, 0, current.InSaveSituation)
}
