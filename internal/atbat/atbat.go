package atbat

import (
	"github.com/baseball-sim/core/internal/baserunning"
	"github.com/baseball-sim/core/internal/battedball"
	"github.com/baseball-sim/core/internal/fielding"
	"github.com/baseball-sim/core/internal/pitchres"
	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
)

// Defense bundles what the plate appearance engine needs about the
// fielding side: the position map, pitcher context, and catcher rating.
type Defense struct {
	Positions map[ratings.Position]*ratings.Batter
	Pitcher   *ratings.Pitcher
	Catcher   *ratings.Batter
}

// Situation is the game-state context the PA engine needs beyond
// count.
type Situation struct {
	Inning      int
	Outs        int
	HomeScore   int
	AwayScore   int
	BatterIsHome bool
	ThreatScore float64 // prior data on batter threat

	// UnearnedErrorOccurred is true once any fielding error has already
	// put a batter or runner on base this half-inning; every run scored
	// from that point on is unearned regardless of how it scores.
	UnearnedErrorOccurred bool
}

// Result summarizes what happened in one plate appearance.
type Result struct {
	RunsScored    []*baserunning.Runner
	OutsRecorded  int
	DoublePlay    bool
	TriplePlay    bool
	Walk, IBB, HBP bool
	Strikeout     bool
	InPlay        bool
	HitType       battedball.HitType
	Error         fielding.ErrorType
	Events        []baserunning.Event
	UnearnedRun   bool
}

// DeriveBatterContext applies platoon/fatigue adjustment to a raw
// batter rating.
func DeriveBatterContext(b *ratings.Batter, pitcherHand ratings.Hand, fatigueFactor float64) pitchres.BatterContext {
	contact := float64(b.Contact)
	power := float64(b.Power)
	eye := float64(b.Eye)

	platoonAdj := 0.0
	if (b.Bats == ratings.Right && pitcherHand == ratings.Left) ||
		(b.Bats == ratings.Left && pitcherHand == ratings.Right) {
		platoonAdj = float64(b.VsLeft-50) / 10.0
	}
	contact = (contact + platoonAdj) * fatigueFactor
	power = power * fatigueFactor

	zoneBottom, zoneTop := b.ZoneBottom, b.ZoneTop
	if zoneTop == 0 {
		zoneBottom, zoneTop = 1.5, 3.5
	}

	return pitchres.BatterContext{
		Contact:     contact,
		Power:       power,
		Eye:         eye,
		Hand:        b.Bats,
		ZoneBottom:  zoneBottom,
		ZoneTop:     zoneTop,
		HeightIn:    b.HeightIn,
		ChaseOffset: -(eye - 50) / 100.0,
		GroundBall:  float64(b.GroundBall),
		Pull:        float64(b.Pull),
	}
}

// DerivePitcherContext applies fatigue adjustment to a raw pitcher
// rating.
func DerivePitcherContext(p *ratings.Pitcher, fatigueFactor float64) pitchres.PitcherContext {
	velocity := 80 + float64(p.ArmStrength-50)/2.0
	return pitchres.PitcherContext{
		Repertoire:    p.Repertoire,
		Velocity:      velocity,
		Control:       float64(p.Control),
		Movement:      float64(p.Movement),
		FatigueFactor: fatigueFactor,
		Hand:          p.Throws,
		VsLeft:        float64(p.VsLeft),
	}
}

// ShouldIntentionalWalk implements the IBB rule: prior
// batter threat score, inning, score diff, and whether first is open.
func ShouldIntentionalWalk(ctx *simctx.Context, threatScore float64, inning, scoreDiff int, firstOpen bool) bool {
	if !firstOpen || inning < 7 {
		return false
	}
	threshold := ctx.Tuning.GetDefault("ibb_threat_threshold")
	if threatScore < threshold {
		return false
	}
	if scoreDiff < -3 || scoreDiff > 3 {
		return false
	}
	return true
}

// ShouldBunt implements the situational bunt rule.
func ShouldBunt(ctx *simctx.Context, outs int, runnerOn1st, runnerOn2nd bool, scoreDiff int) bool {
	if outs >= 2 || scoreDiff > 1 {
		return false
	}
	if !runnerOn1st && !runnerOn2nd {
		return false
	}
	scale := ctx.Tuning.GetDefault("bunt_situational_scale")
	return ctx.Bernoulli(0.08 * scale)
}

// ShouldPinchHit implements the pinch-hit rule: bench vs
// current hitter offense score, adjusted for platoon.
func ShouldPinchHit(ctx *simctx.Context, benchOffense, currentOffense float64, platoonGain float64) bool {
	gain := benchOffense + platoonGain - currentOffense
	threshold := ctx.Tuning.GetDefault("pinch_hit_gain_threshold")
	return gain >= threshold
}

// BuntResult summarizes a resolved bunt attempt.
type BuntResult struct {
	RunsScored   []*baserunning.Runner
	OutsRecorded int
	Hit          bool
	Sacrifice    bool
	DoublePlay   bool
}

// InfieldRange averages the fielding rating of the infield positions
// def covers, for use as ResolveBunt's defense input.
func InfieldRange(def Defense) float64 {
	positions := []ratings.Position{ratings.PosFirst, ratings.PosSecond, ratings.PosThird, ratings.PosShortstop}
	sum, n := 0, 0
	for _, p := range positions {
		if b, ok := def.Positions[p]; ok {
			sum += b.Fielding
			n++
		}
	}
	if n == 0 {
		return 50
	}
	return float64(sum) / float64(n)
}

// ResolveBunt resolves a bunt attempt that ShouldBunt has already
// approved: a small chance of reaching on a bunt hit, else a
// successful sacrifice advancing the lead runner(s) one base (with a
// third-to-home squeeze chance), else a bunt out that can double off
// the runner on 1st.
func ResolveBunt(ctx *simctx.Context, bases *baserunning.State, batter *ratings.Batter, infieldRange float64, outs int) BuntResult {
	var res BuntResult

	hitProb := ctx.Tuning.GetDefault("bunt_hit_base") +
		(float64(batter.Speed)-50)/250.0 + (float64(batter.Contact)-50)/300.0 - (infieldRange-50)/400.0
	hitProb = simctx.Clamp(hitProb, 0, 0.2)
	if ctx.Bernoulli(hitProb) {
		res.Hit = true
		adv := baserunning.OnHit(ctx, bases, &baserunning.Runner{ID: batter.ID, Speed: batter.Speed}, battedball.Single, infieldRange)
		res.RunsScored = adv.RunsScored
		return res
	}

	successProb := ctx.Tuning.GetDefault("bunt_success_base") +
		(float64(batter.Contact)-50)/200.0 - (infieldRange-50)/260.0
	successProb = simctx.Clamp(successProb, 0.25, 0.95)
	if outs < 2 && ctx.Bernoulli(successProb) {
		res.Sacrifice = true
		res.OutsRecorded = 1
		if r3 := bases.Runners[2]; r3 != nil {
			if ctx.Bernoulli(ctx.Tuning.GetDefault("bunt_squeeze_rate")) {
				res.RunsScored = append(res.RunsScored, r3)
				bases.Runners[2] = nil
			}
		}
		if r2 := bases.Runners[1]; r2 != nil && bases.Runners[2] == nil {
			bases.Runners[2] = r2
			bases.Runners[1] = nil
		}
		if r1 := bases.Runners[0]; r1 != nil && bases.Runners[1] == nil {
			bases.Runners[1] = r1
			bases.Runners[0] = nil
		}
		return res
	}

	res.OutsRecorded = 1
	if r1 := bases.Runners[0]; r1 != nil && outs < 2 {
		dpProb := ctx.Tuning.GetDefault("bunt_double_play_base") +
			(infieldRange-50)/300.0 - (float64(r1.Speed)-50)/350.0
		dpProb = simctx.Clamp(dpProb, 0.01, 0.35)
		if ctx.Bernoulli(dpProb) {
			res.DoublePlay = true
			res.OutsRecorded = 2
			bases.Runners[0] = nil
		}
	}
	return res
}

// Run executes the pitch-by-pitch PA loop: pre-pitch rules
// are the caller's responsibility (IBB/bunt/pinch-hit are evaluated
// once per PA before Run is invoked); Run resolves pitches until the
// PA terminates.
func Run(ctx *simctx.Context, bc pitchres.BatterContext, pc pitchres.PitcherContext,
	bases *baserunning.State, batter *baserunning.Runner, def Defense,
	batterLine *BatterLine, pitcherLine *PitcherLine, sit Situation) Result {

	var res Result
	res.UnearnedRun = sit.UnearnedErrorOccurred
	balls, strikes := 0, 0
	batterLine.PA++

	for {
		// Dead-ball events (catcher interference, HBP) are rolled by the
		// PA engine in preference to a sampled pitch.
		if ctx.Bernoulli(ctx.Tuning.GetDefault("catcher_interference_base")) {
			batterLine.CI++
			ciRes := baserunning.ForceWalk(bases, batter)
			res.RunsScored = append(res.RunsScored, ciRes.RunsScored...)
			return res
		}

		if ctx.Bernoulli(0.008) {
			res.HBP = true
			batterLine.HBP++
			pitcherLine.HBP++
			walkRes := baserunning.ForceWalk(bases, batter)
			res.RunsScored = append(res.RunsScored, walkRes.RunsScored...)
			return res
		}

		pitchSit := pitchres.Situation{
			Balls: balls, Strikes: strikes, Inning: sit.Inning, Outs: sit.Outs,
		}
		pitch := pitchres.Resolve(ctx, bc, pc, pitchSit)

		pitcherLine.Pitches++
		batterLine.PitchesSeen++
		if pitch.InZone {
			pitcherLine.ZonePitches++
		} else {
			pitcherLine.OZonePitches++
		}
		if pitch.Swing {
			if pitch.InZone {
				pitcherLine.ZoneSwings++
			} else {
				pitcherLine.OZoneSwings++
			}
			if pitch.Contact {
				if pitch.InZone {
					pitcherLine.ZoneContacts++
				} else {
					pitcherLine.OZoneContacts++
				}
			}
		}
		if pitcherLine.Pitches == 1 && (pitch.Outcome == pitchres.CalledStrike || pitch.Outcome == pitchres.SwingingStrike || pitch.Outcome == pitchres.Foul) {
			pitcherLine.FirstPitchStrikes++
		}

		switch pitch.Outcome {
		case pitchres.Ball:
			balls++
			pitcherLine.Balls++
			if balls >= 4 {
				res.Walk = true
				walkRes := baserunning.ForceWalk(bases, batter)
				res.RunsScored = append(res.RunsScored, walkRes.RunsScored...)
				batterLine.BB++
				pitcherLine.Walks++
				return res
			}

		case pitchres.CalledStrike:
			strikes++
			pitcherLine.Strikes++
			if strikes >= 3 {
				return finishStrikeout(ctx, bases, batter, batterLine, pitcherLine, sit, false, def, res)
			}

		case pitchres.SwingingStrike:
			strikes++
			pitcherLine.Strikes++
			if strikes >= 3 {
				return finishStrikeout(ctx, bases, batter, batterLine, pitcherLine, sit, true, def, res)
			}

		case pitchres.Foul:
			if strikes < 2 {
				strikes++
				pitcherLine.Strikes++
			}

		case pitchres.InPlay:
			batterLine.AB++
			bb := battedball.Classify(ctx, pitch.ExitVelo, pitch.LaunchAngle, pitch.SprayAngle)
			switch bb.BallType {
			case battedball.GroundBall:
				batterLine.GB++
				pitcherLine.GBInduced++
			case battedball.LineDrive:
				batterLine.LD++
				pitcherLine.LDInduced++
			default:
				batterLine.FB++
				pitcherLine.FBInduced++
			}
			return finishInPlay(ctx, bases, batter, bb, pitch, def, bc, batterLine, pitcherLine, sit, res)
		}

		// Between pitches, if the PA continues: balk -> missed-pitch ->
		// pickoff -> steal.
		hasRunner := bases.Runners[0] != nil || bases.Runners[1] != nil || bases.Runners[2] != nil
		if !hasRunner {
			continue
		}

		control := 50.0
		if def.Pitcher != nil {
			control = float64(def.Pitcher.Control)
		}
		catcherField := 50.0
		if def.Catcher != nil {
			catcherField = float64(def.Catcher.Fielding)
		}

		if balked, adv := baserunning.Balk(ctx, bases); balked {
			res.Events = append(res.Events, baserunning.Balk)
			res.RunsScored = append(res.RunsScored, adv.RunsScored...)
			pitcherLine.BK++
			continue
		}

		occBase := ctx.Tuning.GetDefault("wp_pb_occurrence_base")
		if ctx.Bernoulli(occBase) {
			ev, adv := baserunning.MissedPitch(ctx, bases, control, catcherField, 5)
			res.Events = append(res.Events, ev)
			res.RunsScored = append(res.RunsScored, adv.RunsScored...)
			if ev == baserunning.WildPitch {
				pitcherLine.WP++
			}
			// Passed balls are reported only through res.Events; no
			// catcher FieldingLine is credited for them.
			continue
		}

		leadRunner, leadBase := bases.Runners[0], 0
		if bases.Runners[1] != nil {
			leadRunner, leadBase = bases.Runners[1], 1
		}
		if leadRunner != nil && leadBase < 2 {
			pickoffAttempt, pickoffSuccess, throwErr := baserunning.PickoffAttempt(ctx, float64(leadRunner.Speed), float64(pc.Control))
			if pickoffAttempt {
				pitcherLine.PK++
				if pickoffSuccess {
					bases.Runners[leadBase] = nil
					res.OutsRecorded++
				} else if throwErr {
					advanceRunner(bases, leadBase)
				}
				if sit.Outs+res.OutsRecorded >= 3 {
					return res
				}
				continue
			}
		}

		if leadRunner != nil && leadBase < 2 {
			attempted, success := baserunning.StealAttempt(ctx, float64(leadRunner.Speed), float64(pc.Control), float64(pc.Movement),
				catcherField, catcherField, strikes == 2, sit.Outs, sit.Inning, sit.HomeScore-sit.AwayScore)
			if attempted {
				// SB/CS are reported only through res.Events; Run does not
				// hold the runner's BatterLine, and no SB/CS is credited to it.
				if success {
					advanceRunner(bases, leadBase)
					res.Events = append(res.Events, baserunning.StolenBase)
				} else {
					bases.Runners[leadBase] = nil
					res.OutsRecorded++
					res.Events = append(res.Events, baserunning.CaughtStealing)
				}
				if sit.Outs+res.OutsRecorded >= 3 {
					return res
				}
			}
		}
	}
}

// advanceRunner moves the runner on `base` (0=1st, 1=2nd) forward one
// base if the destination is open.
func advanceRunner(bases *baserunning.State, base int) {
	r := bases.Runners[base]
	if r == nil || bases.Runners[base+1] != nil {
		return
	}
	bases.Runners[base+1] = r
	bases.Runners[base] = nil
}

func finishStrikeout(ctx *simctx.Context, bases *baserunning.State, batter *baserunning.Runner, batterLine *BatterLine, pitcherLine *PitcherLine,
	sit Situation, swinging bool, def Defense, res Result) Result {

	res.Strikeout = true
	batterLine.AB++
	if swinging {
		batterLine.SOSwinging++
	} else {
		batterLine.SOLooking++
	}
	if swinging {
		pitcherLine.SOSwinging++
	} else {
		pitcherLine.SOLooking++
	}

	catcherField := 50.0
	if def.Catcher != nil {
		catcherField = float64(def.Catcher.Fielding)
	}
	control := 50.0
	if def.Pitcher != nil {
		control = float64(def.Pitcher.Control)
	}

	dropped := baserunning.DroppedThirdStrike(ctx, bases, control, catcherField, 5, sit.Outs)
	if dropped {
		res.Events = append(res.Events, baserunning.DroppedThirdStrike)
		adv := baserunning.ForceWalk(bases, batter)
		res.RunsScored = append(res.RunsScored, adv.RunsScored...)
		return res
	}

	res.OutsRecorded = 1
	return res
}

func finishInPlay(ctx *simctx.Context, bases *baserunning.State, batter *baserunning.Runner, bb battedball.Result,
	pitch pitchres.Result, def Defense, bc pitchres.BatterContext, batterLine *BatterLine, pitcherLine *PitcherLine, sit Situation, res Result) Result {

	res.InPlay = true
	runnerOn1st := bases.Runners[0] != nil
	runnerOn2nd := bases.Runners[1] != nil

	runnerOn1stSpeed := float64(batter.Speed)
	if bases.Runners[0] != nil {
		runnerOn1stSpeed = float64(bases.Runners[0].Speed)
	}

	fielderArm := 50.0
	if len(def.Positions) > 0 {
		relevant := fielding.RelevantFielders(def.Positions, bb.BallType, false)
		if len(relevant) > 0 {
			fielderArm = float64(relevant[0].Arm)
		}
	}

	if bb.BallType == battedball.FlyBall || bb.BallType == battedball.LineDrive {
		out := fielding.ResolveOut(ctx, bb, pitch.ExitVelo, def.Positions, bc.Pull, runnerOn1stSpeed, runnerOn1st, runnerOn2nd, sit.Outs)
		if out.Out {
			res.OutsRecorded = 1
			adv := baserunning.AirOut(ctx, bases, fielderArm, sit.Outs)
			res.RunsScored = append(res.RunsScored, adv.RunsScored...)
			creditFielder(def.Positions, out.FielderID)
			return res
		}
		if out.Error != fielding.NoError {
			res.Error = out.Error
			res.UnearnedRun = true
			batterLine.ROE++
		}
	} else {
		out := fielding.ResolveOut(ctx, bb, pitch.ExitVelo, def.Positions, bc.Pull, runnerOn1stSpeed, runnerOn1st, runnerOn2nd, sit.Outs)
		if out.Out {
			res.OutsRecorded = 1
			if out.DoublePlay {
				res.DoublePlay = true
				res.OutsRecorded = 2
				batterLine.GIDP++
			}
			if out.TriplePlay {
				res.TriplePlay = true
				res.OutsRecorded = 3
			}
			creditFielder(def.Positions, out.FielderID)
			return res
		}
		if out.Error != fielding.NoError {
			res.Error = out.Error
			res.UnearnedRun = true
			batterLine.ROE++
		}
	}

	hit := bb.HitType
	hit = baserunning.MaybeStretch(ctx, hit, bb.BallType, float64(batter.Speed), fielderArm)
	res.HitType = hit

	switch hit {
	case battedball.Single:
		batterLine.Single++
		pitcherLine.Single++
	case battedball.Double:
		batterLine.Double++
		pitcherLine.Double++
	case battedball.Triple:
		batterLine.Triple++
		pitcherLine.Triple++
	case battedball.HomeRun:
		batterLine.HR++
		pitcherLine.HRs++
	}
	batterLine.H++
	pitcherLine.Hits++
	pitcherLine.ConsecutiveHits++

	adv := baserunning.OnHit(ctx, bases, batter, hit, fielderArm)
	res.RunsScored = append(res.RunsScored, adv.RunsScored...)
	return res
}

func creditFielder(positions map[ratings.Position]*ratings.Batter, id string) {
	// Records nothing: ResolveOut identifies the fielder of record, and
	// no FieldingLine PO/A is credited for it.
	_ = positions
	_ = id
}
