// Package pitchres implements the pitch resolver: pitch
// selection, swing decision, and outcome resolution for a single
// pitch. Outcomes are modeled as a small sum type rather than stringly-typed results;
// strings are reserved for the wire boundary.
package pitchres

import (
	"math"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
)

// Outcome is the pitch outcome sum type.
type Outcome int

const (
	Ball Outcome = iota
	CalledStrike
	SwingingStrike
	Foul
	InPlay
)

func (o Outcome) String() string {
	switch o {
	case Ball:
		return "ball"
	case CalledStrike:
		return "strike"
	case SwingingStrike:
		return "swinging_strike"
	case Foul:
		return "foul"
	case InPlay:
		return "in_play"
	default:
		return "unknown"
	}
}

// BatterContext is the effective batter state fed to the resolver
//: post-platoon/post-fatigue contact/power/eye, hand,
// zone bounds, height, and the chase offset applied for platoon.
type BatterContext struct {
	Contact      float64
	Power        float64
	Eye          float64
	Hand         ratings.Hand
	ZoneBottom   float64
	ZoneTop      float64
	HeightIn     int
	ChaseOffset  float64
	GroundBall   float64
	Pull         float64
}

// PitcherContext is the effective pitcher state fed to the resolver.
type PitcherContext struct {
	Repertoire   ratings.Repertoire
	Velocity     float64 // derived from arm rating, before scale/fatigue
	Control      float64
	Movement     float64
	FatigueFactor float64
	Hand         ratings.Hand
	VsLeft       float64
}

// Situation captures count and surrounding context.
type Situation struct {
	Balls          int
	Strikes        int
	Inning         int
	Outs           int
	ScoreDiff      int
	RunnersOn      int
	CatcherField   float64
	LastPitchType  string
	RepeatCount    int
	FoulScale      float64
}

// Result is the full per-pitch outcome, including batted-ball-seed
// fields populated only when Outcome == InPlay.
type Result struct {
	PitchType   string
	Quality     int
	Velocity    float64
	LocX        float64
	LocY        float64
	InZone      bool
	Swing       bool
	Contact     bool
	Outcome     Outcome
	ExitVelo    float64
	LaunchAngle float64
	SprayAngle  float64
}

// Resolve executes the pitch selection -> swing decision ->
// outcome chain for a single pitch.
func Resolve(ctx *simctx.Context, b BatterContext, p PitcherContext, sit Situation) Result {
	pitchType, quality := p.Repertoire.Best()

	velocityScale := ctx.Tuning.GetDefault("velocity_scale")
	velocity := p.Velocity * velocityScale * p.FatigueFactor

	commandFactor := ctx.Tuning.GetDefault("command_factor")
	std := 0.15 + (1.0-p.Control/100.0)*commandFactor
	locX := ctx.Gauss(0, std)
	locY := ctx.Gauss(0, std)

	inZone := math.Abs(locX) < 0.5 && math.Abs(locY) < 0.5

	zoneBase := ctx.Tuning.GetDefault("zone_base")
	chaseBase := ctx.Tuning.GetDefault("chase_base")
	zoneSwingScale := ctx.Tuning.GetDefault("zone_swing_scale")
	chaseScale := ctx.Tuning.GetDefault("chase_scale")

	var swingProb float64
	if inZone {
		swingProb = (zoneBase + b.ChaseOffset*0.5) * zoneSwingScale
	} else {
		swingProb = (chaseBase + b.ChaseOffset) * chaseScale
	}

	if sit.Strikes >= 2 {
		swingProb += 0.10 * ctx.Tuning.GetDefault("two_strike_aggression_scale")
	}
	walkScale := ctx.Tuning.GetDefault("walk_scale")
	if walkScale > 0 {
		swingProb /= walkScale
	}
	swingProb = simctx.Clamp(swingProb, 0, 1)

	swing := ctx.Bernoulli(swingProb)

	res := Result{
		PitchType: pitchType,
		Quality:   quality,
		Velocity:  velocity,
		LocX:      locX,
		LocY:      locY,
		InZone:    inZone,
		Swing:     swing,
	}

	if !swing {
		if inZone {
			res.Outcome = CalledStrike
		} else {
			res.Outcome = Ball
		}
		return res
	}

	pitchingDomScale := ctx.Tuning.GetDefault("pitching_dom_scale")
	effectiveQuality := (0.4*p.Control + 0.4*p.Movement + 0.2*float64(quality)) * pitchingDomScale

	kScale := ctx.Tuning.GetDefault("k_scale")
	contactQualityScale := ctx.Tuning.GetDefault("contact_quality_scale")
	contactProb := b.Contact - 0.4*(effectiveQuality-50)
	contactProb *= contactQualityScale / math.Max(0.1, kScale)
	contactProb = simctx.Clamp(contactProb, 0.05, 0.95)

	contact := ctx.Bernoulli(contactProb)
	res.Contact = contact

	if !contact {
		res.Outcome = SwingingStrike
		return res
	}

	offenseScale := ctx.Tuning.GetDefault("offense_scale")
	exitVelo := math.Max(50, 0.42*velocity+0.45*b.Power) * offenseScale

	gbFbTilt := ctx.Tuning.GetDefault("gb_fb_tilt")
	launchMean := 12 - (b.GroundBall-50)/10
	launchAngle := ctx.Gauss(launchMean, 16) * gbFbTilt

	sprayMean := (b.Pull - 50) / 2
	sprayAngle := ctx.Gauss(sprayMean, 18)

	res.ExitVelo = exitVelo
	res.LaunchAngle = launchAngle
	res.SprayAngle = sprayAngle

	if ctx.Bernoulli(0.18) {
		res.Outcome = Foul
	} else {
		res.Outcome = InPlay
	}
	return res
}
