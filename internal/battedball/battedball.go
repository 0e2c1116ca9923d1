// Package battedball implements the batted-ball resolver: classifying ball_type, estimating carry distance, and
// determining the raw hit type a fair ball would produce before
// fielding/defense (internal/fielding) decides whether it is instead
// converted to an out.
package battedball

import (
	"math"

	"github.com/baseball-sim/core/internal/simctx"
)

// BallType is the gb/ld/fb classification sum type.
type BallType int

const (
	GroundBall BallType = iota
	LineDrive
	FlyBall
)

func (b BallType) String() string {
	switch b {
	case GroundBall:
		return "gb"
	case LineDrive:
		return "ld"
	case FlyBall:
		return "fb"
	default:
		return "unknown"
	}
}

// HitType is the raw hit-type sum type a batted ball resolves to
// before any out is applied.
type HitType int

const (
	Single HitType = iota
	Double
	Triple
	HomeRun
)

func (h HitType) String() string {
	switch h {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case HomeRun:
		return "hr"
	default:
		return "unknown"
	}
}

// Result is the classification of one fair ball.
type Result struct {
	BallType   BallType
	Distance   float64
	FieldAngle float64 // radians, [0, pi/2]
	HitType    HitType
}

const mphToFtS = 1.46667
const gravityFtS2 = 32.17

// Classify implements the classify + carry-distance +
// bucket-by-wall-fraction chain.
func Classify(ctx *simctx.Context, exitVelo, launchAngle, sprayAngle float64) Result {
	var bt BallType
	switch {
	case launchAngle < 10:
		bt = GroundBall
	case launchAngle < 25:
		bt = LineDrive
	default:
		bt = FlyBall
	}

	mphToFtS := ctx.Tuning.Get("mph_to_fts", mphToFtS)
	g := ctx.Tuning.Get("gravity_ft_s2", gravityFtS2)

	hrScale := ctx.Tuning.GetDefault("hr_scale")
	offenseScale := ctx.Tuning.GetDefault("offense_scale")
	altitudeScale := ctx.Park.AltitudeScale()
	carryScaleBase := ctx.Tuning.GetDefault("carry_scale_base")

	evFtS := exitVelo * mphToFtS
	theta := launchAngle * math.Pi / 180

	carryScale := carryScaleBase * hrScale * offenseScale * altitudeScale * ctx.Park.ParkFactor

	distance := 0.0
	if theta > 0 && theta < math.Pi/2 {
		distance = (evFtS * evFtS / g) * math.Sin(2*theta) * carryScale
	}

	fieldAngle := sprayAngle * math.Pi / 180
	fieldAngle = simctx.Clamp(fieldAngle, -math.Pi/2, math.Pi/2)
	absAngle := math.Abs(fieldAngle)

	wallDist := ctx.Park.WallDistanceAt(absAngle)

	var hit HitType
	switch {
	case distance > wallDist:
		hit = HomeRun
	case distance >= wallDist*ctx.Park.TripleFraction:
		hit = Triple
	case distance >= wallDist*ctx.Park.DoubleFraction:
		hit = Double
	default:
		hit = Single
	}

	return Result{
		BallType:   bt,
		Distance:   distance,
		FieldAngle: absAngle,
		HitType:    hit,
	}
}

// DefaultFractions are used when a Park does not specify its own
// triple/double thresholds.
func DefaultFractions() (triple, double float64) {
	return 0.95, 0.75
}
