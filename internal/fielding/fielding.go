// Package fielding implements the fielding & defense resolver
//: positional assignment, out probability on in-play
// balls, double-play/triple-play resolution, and error resolution.
package fielding

import (
	"sort"

	"github.com/baseball-sim/core/internal/battedball"
	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
)

// ErrorType is the sum type for the kind of defensive error charged.
type ErrorType int

const (
	NoError ErrorType = iota
	ThrowingError
	FieldingError
)

func (e ErrorType) String() string {
	switch e {
	case ThrowingError:
		return "throwing"
	case FieldingError:
		return "fielding"
	default:
		return "none"
	}
}

// Assign builds the position -> batter map from a lineup's positions,
// falling back to the highest-fielding player for any unfilled
// required position.
func Assign(lineup map[ratings.Position]*ratings.Batter, bench []*ratings.Batter) map[ratings.Position]*ratings.Batter {
	out := make(map[ratings.Position]*ratings.Batter, len(lineup))
	for pos, b := range lineup {
		out[pos] = b
	}

	required := []ratings.Position{
		ratings.PosCatcher, ratings.PosFirst, ratings.PosSecond, ratings.PosThird,
		ratings.PosShortstop, ratings.PosLeftField, ratings.PosCenterField, ratings.PosRightField,
	}
	for _, pos := range required {
		if _, ok := out[pos]; ok {
			continue
		}
		best := bestFielderFor(pos, bench)
		if best != nil {
			out[pos] = best
		}
	}
	return out
}

func bestFielderFor(pos ratings.Position, candidates []*ratings.Batter) *ratings.Batter {
	var best *ratings.Batter
	bestScore := -1
	for _, c := range candidates {
		if !c.EligibleAt(pos) {
			continue
		}
		if c.Fielding > bestScore {
			best = c
			bestScore = c.Fielding
		}
	}
	return best
}

func outBaseRate(bt battedball.BallType) float64 {
	switch bt {
	case battedball.GroundBall:
		return 0.78
	case battedball.LineDrive:
		return 0.38
	default:
		return 0.73
	}
}

// RelevantFielders picks the subset of fielders the ball is hit toward,
// used for range/arm adjustment and shift checks.
func RelevantFielders(defense map[ratings.Position]*ratings.Batter, bt battedball.BallType, pull bool) []*ratings.Batter {
	var positions []ratings.Position
	switch {
	case bt == battedball.GroundBall && pull:
		positions = []ratings.Position{ratings.PosFirst, ratings.PosSecond, ratings.PosShortstop}
	case bt == battedball.GroundBall:
		positions = []ratings.Position{ratings.PosSecond, ratings.PosShortstop, ratings.PosThird}
	case bt == battedball.LineDrive:
		positions = []ratings.Position{ratings.PosShortstop, ratings.PosSecond, ratings.PosCenterField}
	default:
		positions = []ratings.Position{ratings.PosLeftField, ratings.PosCenterField, ratings.PosRightField}
	}
	out := make([]*ratings.Batter, 0, len(positions))
	for _, p := range positions {
		if f, ok := defense[p]; ok {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fielding > out[j].Fielding })
	return out
}

func rangeOf(fielders []*ratings.Batter) float64 {
	if len(fielders) == 0 {
		return 50
	}
	sum := 0
	for _, f := range fielders {
		sum += f.Fielding
	}
	return float64(sum) / float64(len(fielders))
}

func armOf(fielders []*ratings.Batter) float64 {
	if len(fielders) == 0 {
		return 50
	}
	sum := 0
	for _, f := range fielders {
		sum += f.Arm
	}
	return float64(sum) / float64(len(fielders))
}

// OutResult is the decision made on a fair ball: whether it becomes an
// out (possibly a DP/TP) or stands as the batted-ball resolver's hit
// type, plus any charged error.
type OutResult struct {
	Out       bool
	DoublePlay bool
	TriplePlay bool
	Error     ErrorType
	FielderID string
}

// ResolveOut implements the out-probability, DP/TP, and
// error-resolution chain for one in-play ball. pullTendency is the
// batter's spray-pull rating (drives the shift check); runnerSpeed is
// the speed of the runner on 1st whose advance the DP formula discounts.
func ResolveOut(ctx *simctx.Context, bb battedball.Result, exitVelo float64, defense map[ratings.Position]*ratings.Batter,
	pullTendency, runnerSpeed float64, runnerOn1st, runnerOn2nd bool, outs int) OutResult {

	pull := pullTendency > ctx.Tuning.GetDefault("shift_pull_threshold")
	fielders := RelevantFielders(defense, bb.BallType, pull)
	fieldRange := rangeOf(fielders)
	arm := armOf(fielders)

	base := outBaseRate(bb.BallType)
	rangeAdj := (fieldRange - 50) / 250.0
	evPenalty := (exitVelo - 90) / 300.0
	if evPenalty < 0 {
		evPenalty = 0
	}

	outProb := base + rangeAdj - evPenalty
	if pull {
		outProb += ctx.Tuning.GetDefault("shift_boost")
	}
	outProb = simctx.Clamp(outProb, 0.02, 0.97)

	out := ctx.Bernoulli(outProb)

	res := OutResult{Out: out}
	if fielders != nil && len(fielders) > 0 {
		res.FielderID = fielders[0].ID
	}

	if out && bb.BallType == battedball.GroundBall && runnerOn1st && outs < 2 {
		dpProb := ctx.Tuning.GetDefault("double_play_base") +
			(fieldRange-50)/230.0 + (arm-50)/260.0 - (runnerSpeed-50)/220.0
		dpProb = simctx.Clamp(dpProb, 0.03, 0.45)
		if ctx.Bernoulli(dpProb) {
			res.DoublePlay = true
			if runnerOn1st && runnerOn2nd && outs == 0 {
				tpProb := ctx.Tuning.GetDefault("triple_play_base")
				if ctx.Bernoulli(tpProb) {
					res.TriplePlay = true
				}
			}
		}
	}

	errBase := errorBaseRate(bb.BallType)
	errRateScale := ctx.Tuning.GetDefault("error_rate_scale")
	errProb := errBase * errRateScale * (1 + (50-fieldRange)/100.0)
	errProb = simctx.Clamp(errProb, 0, 0.35)

	if ctx.Bernoulli(errProb) {
		throwingShare := ctx.Tuning.GetDefault("error_throwing_share")
		if ctx.Bernoulli(throwingShare) {
			res.Error = ThrowingError
		} else {
			res.Error = FieldingError
		}
		// an error on a would-be out reverses it; an error on a hit is
		// recorded but does not change the batted-ball's base bases.
		if res.Out {
			res.Out = false
			res.DoublePlay = false
			res.TriplePlay = false
		}
	}

	return res
}

func errorBaseRate(bt battedball.BallType) float64 {
	switch bt {
	case battedball.GroundBall:
		return 0.018
	case battedball.LineDrive:
		return 0.012
	default:
		return 0.008
	}
}
