// Package baserunning implements the baserunning resolver: forced advancement on walks, advancement on hits and air
// outs, missed pitches, balks, steals, pickoffs, and the dropped third
// strike.
package baserunning

import (
	"github.com/baseball-sim/core/internal/battedball"
	"github.com/baseball-sim/core/internal/simctx"
)

// Event is the runner-event sum type.
type Event int

const (
	NoEvent Event = iota
	WildPitch
	PassedBall
	Balk
	StolenBase
	CaughtStealing
	Pickoff
	PickoffCaughtStealing
	DroppedThirdStrike
)

func (e Event) String() string {
	switch e {
	case WildPitch:
		return "wild_pitch"
	case PassedBall:
		return "passed_ball"
	case Balk:
		return "balk"
	case StolenBase:
		return "stolen_base"
	case CaughtStealing:
		return "caught_stealing"
	case Pickoff:
		return "pickoff"
	case PickoffCaughtStealing:
		return "pickoff_cs"
	case DroppedThirdStrike:
		return "dropped_third_strike"
	default:
		return "none"
	}
}

// Base identifies a base slot.
type Base int

const (
	First Base = iota
	Second
	Third
	Home
)

// Runner describes an occupant of a base for advancement purposes.
type Runner struct {
	ID               string
	ResponsiblePitcher string
	Speed            int
	Unearned         bool // true if placed by the extra-innings runner rule
}

// State is the three-slot base occupancy.
type State struct {
	Runners [3]*Runner // index 0=1B, 1=2B, 2=3B
}

func (s *State) occupied(b Base) bool {
	if b == Home {
		return false
	}
	return s.Runners[b] != nil
}

// AdvanceResult reports runs scored and the resulting base state.
type AdvanceResult struct {
	RunsScored  []*Runner
	OutRunner   *Runner
	ErrorOnPlay bool
}

// ForceWalk advances runners on walk/HBP/IBB/CI: runners are forced
// forward only along the unbroken chain from first.
func ForceWalk(s *State, batter *Runner) AdvanceResult {
	var res AdvanceResult
	if s.Runners[0] == nil {
		s.Runners[0] = batter
		return res
	}
	// 1st occupied: bump to 2nd.
	r1 := s.Runners[0]
	s.Runners[0] = batter
	if s.Runners[1] == nil {
		s.Runners[1] = r1
		return res
	}
	r2 := s.Runners[1]
	s.Runners[1] = r1
	if s.Runners[2] == nil {
		s.Runners[2] = r2
		return res
	}
	r3 := s.Runners[2]
	s.Runners[2] = r2
	res.RunsScored = append(res.RunsScored, r3)
	return res
}

// AdvanceProb returns the extra-base advance probability for a runner
// given their speed against the fielder's arm.
func AdvanceProb(ctx *simctx.Context, speed, fielderArm float64) float64 {
	base := ctx.Tuning.GetDefault("advance_prob_base")
	speedWeight := ctx.Tuning.GetDefault("advance_speed_weight")
	armWeight := ctx.Tuning.GetDefault("advance_arm_weight")
	p := base + (speed-50)/100.0*speedWeight - (fielderArm-50)/100.0*armWeight
	return simctx.Clamp(p, 0.05, 0.95)
}

// OnHit advances runners on a hit: HR/triple score everyone;
// double/single apply deterministic-plus-roll advancement.
func OnHit(ctx *simctx.Context, s *State, batter *Runner, hit battedball.HitType, fielderArm float64) AdvanceResult {
	var res AdvanceResult

	switch hit {
	case battedball.HomeRun:
		for i := 2; i >= 0; i-- {
			if s.Runners[i] != nil {
				res.RunsScored = append(res.RunsScored, s.Runners[i])
				s.Runners[i] = nil
			}
		}
		res.RunsScored = append(res.RunsScored, batter)
		return res
	case battedball.Triple:
		for i := 2; i >= 0; i-- {
			if s.Runners[i] != nil {
				res.RunsScored = append(res.RunsScored, s.Runners[i])
				s.Runners[i] = nil
			}
		}
		s.Runners[2] = batter
		return res
	case battedball.Double:
		if r3 := s.Runners[2]; r3 != nil {
			res.RunsScored = append(res.RunsScored, r3)
			s.Runners[2] = nil
		}
		if r2 := s.Runners[1]; r2 != nil {
			// Runner on 2nd scores with elevated prob (advance prob + 0.2),
			// else holds at 3rd.
			if ctx.Bernoulli(AdvanceProb(ctx, float64(r2.Speed), fielderArm) + 0.2) {
				res.RunsScored = append(res.RunsScored, r2)
			} else {
				s.Runners[2] = r2
			}
			s.Runners[1] = nil
		}
		if r1 := s.Runners[0]; r1 != nil {
			if s.Runners[2] == nil && ctx.Bernoulli(AdvanceProb(ctx, float64(r1.Speed), fielderArm)) {
				s.Runners[2] = r1
			} else {
				s.Runners[1] = r1
			}
			s.Runners[0] = nil
		}
		s.Runners[1] = batter
		return res
	default: // Single
		if r3 := s.Runners[2]; r3 != nil {
			res.RunsScored = append(res.RunsScored, r3)
			s.Runners[2] = nil
		}
		if r2 := s.Runners[1]; r2 != nil {
			if ctx.Bernoulli(AdvanceProb(ctx, float64(r2.Speed), fielderArm) + 0.15) {
				res.RunsScored = append(res.RunsScored, r2)
			} else {
				s.Runners[2] = r2
			}
			s.Runners[1] = nil
		}
		if r1 := s.Runners[0]; r1 != nil {
			if s.Runners[2] == nil && ctx.Bernoulli(AdvanceProb(ctx, float64(r1.Speed), fielderArm)-0.2) {
				s.Runners[2] = r1
			} else if s.Runners[1] == nil {
				s.Runners[1] = r1
			}
			s.Runners[0] = nil
		}
		s.Runners[0] = batter
		return res
	}
}

// MaybeStretch implements the stretch upgrade: a single may
// become a double, a double a triple, on ld/fb contact depending on
// batter speed vs fielder arm.
func MaybeStretch(ctx *simctx.Context, hit battedball.HitType, bt battedball.BallType, batterSpeed, fielderArm float64) battedball.HitType {
	if bt != battedball.LineDrive && bt != battedball.FlyBall {
		return hit
	}
	p := simctx.Clamp((batterSpeed-50)/150.0-(fielderArm-50)/200.0, 0, 0.3)
	if !ctx.Bernoulli(p) {
		return hit
	}
	switch hit {
	case battedball.Single:
		return battedball.Double
	case battedball.Double:
		return battedball.Triple
	default:
		return hit
	}
}

// AirOut resolves baserunning on an air out: tag-up attempt from 3rd
// with bias, and 2nd-to-3rd advance only if 3rd opens.
func AirOut(ctx *simctx.Context, s *State, fielderArm float64, outs int) AdvanceResult {
	var res AdvanceResult
	if outs >= 2 {
		return res
	}
	if r3 := s.Runners[2]; r3 != nil {
		extra := ctx.Tuning.GetDefault("tag_up_third_extra")
		p := AdvanceProb(ctx, float64(r3.Speed), fielderArm) + extra
		if ctx.Bernoulli(p) {
			res.RunsScored = append(res.RunsScored, r3)
			s.Runners[2] = nil
		}
	}
	if s.Runners[2] == nil {
		if r2 := s.Runners[1]; r2 != nil {
			if ctx.Bernoulli(AdvanceProb(ctx, float64(r2.Speed), fielderArm) - 0.3) {
				s.Runners[2] = r2
				s.Runners[1] = nil
			}
		}
	}
	return res
}

// MissedPitch resolves a wild pitch or passed ball: chooses WP vs PB
// and advances every runner one base; the advance is deterministic and
// zoneMissDist does not affect it.
func MissedPitch(ctx *simctx.Context, s *State, control, catcherField, zoneMissDist float64) (Event, AdvanceResult) {
	var res AdvanceResult
	wpControlWeight := ctx.Tuning.GetDefault("wp_pb_control_weight")
	wpShare := simctx.Clamp(0.5+wpControlWeight*(50-control)/100.0-(catcherField-50)/200.0, 0.1, 0.9)
	ev := PassedBall
	if ctx.Bernoulli(wpShare) {
		ev = WildPitch
	}

	if r3 := s.Runners[2]; r3 != nil {
		res.RunsScored = append(res.RunsScored, r3)
		s.Runners[2] = nil
	}
	if r2 := s.Runners[1]; r2 != nil {
		s.Runners[2] = r2
		s.Runners[1] = nil
	}
	if r1 := s.Runners[0]; r1 != nil {
		if s.Runners[1] == nil {
			s.Runners[1] = r1
		}
		s.Runners[0] = nil
	}
	return ev, res
}

// Balk resolves a balk: a rare Bernoulli per pitch that advances
// every runner one base on success.
func Balk(ctx *simctx.Context, s *State) (bool, AdvanceResult) {
	var res AdvanceResult
	baseProb := ctx.Tuning.GetDefault("balk_base_prob")
	if !ctx.Bernoulli(baseProb) {
		return false, res
	}
	if r3 := s.Runners[2]; r3 != nil {
		res.RunsScored = append(res.RunsScored, r3)
		s.Runners[2] = nil
	}
	if r2 := s.Runners[1]; r2 != nil {
		s.Runners[2] = r2
		s.Runners[1] = nil
	}
	if r1 := s.Runners[0]; r1 != nil {
		if s.Runners[1] == nil {
			s.Runners[1] = r1
		}
		s.Runners[0] = nil
	}
	return true, res
}

// StealAttempt derives attempt-rate and success-rate from
// speed/hold/arm/fielding, scaled by count context.
func StealAttempt(ctx *simctx.Context, runnerSpeed, pitcherHold, pitcherArm, catcherArm, catcherFielding float64,
	countFavorable bool, outs, inning, scoreDiff int) (attempt bool, success bool) {

	attemptBase := ctx.Tuning.GetDefault("steal_attempt_base")
	attemptRate := attemptBase + (runnerSpeed-50)/150.0 - (pitcherHold-50)/200.0 - (pitcherArm-50)/300.0
	if countFavorable {
		attemptRate *= 1.2
	}
	attemptRate = simctx.Clamp(attemptRate, 0, 0.5)
	if !ctx.Bernoulli(attemptRate) {
		return false, false
	}

	successBase := ctx.Tuning.GetDefault("steal_success_base")
	successRate := successBase + (runnerSpeed-50)/150.0 - (catcherArm-50)/200.0 - (catcherFielding-50)/300.0
	successRate = simctx.Clamp(successRate, 0.1, 0.95)
	return true, ctx.Bernoulli(successRate)
}

// PickoffAttempt resolves a pickoff attempt and throwing-error chance.
func PickoffAttempt(ctx *simctx.Context, runnerSpeed, pitcherHold float64) (attempt bool, success bool, throwingError bool) {
	attemptBase := ctx.Tuning.GetDefault("pickoff_attempt_base")
	attemptRate := attemptBase + (pitcherHold-50)/200.0 - (runnerSpeed-50)/300.0
	attemptRate = simctx.Clamp(attemptRate, 0, 0.3)
	if !ctx.Bernoulli(attemptRate) {
		return false, false, false
	}

	successBase := ctx.Tuning.GetDefault("pickoff_success_base")
	successRate := successBase + (pitcherHold-50)/200.0 - (runnerSpeed-50)/250.0
	successRate = simctx.Clamp(successRate, 0.02, 0.6)
	if ctx.Bernoulli(successRate) {
		return true, true, false
	}
	return true, false, ctx.Bernoulli(0.05)
}

// DroppedThirdStrike resolves reach-on-strikeout: probability scaled
// by zone-miss and inverse control/catcher fielding; runner reaches if
// 1st is unoccupied or two are out.
func DroppedThirdStrike(ctx *simctx.Context, s *State, control, catcherFielding, zoneMissDist float64, outs int) bool {
	base := ctx.Tuning.GetDefault("dropped_third_base")
	p := base + zoneMissDist/10.0 - (control-50)/200.0 - (catcherFielding-50)/200.0
	p = simctx.Clamp(p, 0, 0.2)
	if !ctx.Bernoulli(p) {
		return false
	}
	return s.Runners[0] == nil || outs >= 2
}
