package game

import (
	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
)

// Leverage is the qualitative game-importance label: "low", "mid",
// "high", or "long" (mop-up/extra-innings).
type Leverage int

const (
	LeverageLow Leverage = iota
	LeverageMid
	LeverageHigh
	LeverageLong
)

// DeriveLeverage maps inning/score-diff to a leverage bucket.
func DeriveLeverage(inning, scoreDiff int) Leverage {
	diff := scoreDiff
	if diff < 0 {
		diff = -diff
	}
	switch {
	case inning >= 7 && diff <= 1:
		return LeverageHigh
	case inning >= 9:
		return LeverageLong
	case diff <= 3:
		return LeverageMid
	default:
		return LeverageLow
	}
}

func roleBonus(role ratings.Role, lev Leverage) float64 {
	switch lev {
	case LeverageHigh:
		if role == ratings.RoleCloser || role == ratings.RoleSetup {
			return 20
		}
	case LeverageLong:
		if role == ratings.RoleLongRelief {
			return 15
		}
	case LeverageMid:
		if role == ratings.RoleMiddleRelief {
			return 10
		}
	}
	return 0
}

// SelectReliever scores each candidate as role bonus + stuff +
// endurance weighting + freshness, multiplied by matchup, and chooses
// the argmax among available-and-unused candidates. Falls back to the
// current pitcher when no candidate qualifies.
func SelectReliever(ctx *simctx.Context, bullpen []*PitcherState, current *PitcherState, lev Leverage,
	batterHand ratings.Hand, scoreDiff int) *PitcherState {

	var best *PitcherState
	bestScore := -1.0

	platoonWeight := ctx.Tuning.GetDefault("bullpen_platoon_weight")

	for _, cand := range bullpen {
		if !cand.Available || cand.Used {
			continue
		}
		stuff := float64(cand.Pitcher.Control+cand.Pitcher.Movement+cand.Pitcher.ArmStrength) / 3.0
		endurance := float64(cand.Pitcher.Endurance) * 0.2
		freshness := 100.0 - cand.Debt
		score := roleBonus(cand.StaffRole, lev) + stuff + endurance + freshness

		matchup := 1.0
		if cand.Pitcher.Throws == batterHand {
			matchup *= 1.0 + float64(cand.Pitcher.VsLeft-50)/200.0*platoonWeight
		}
		score *= matchup

		if score > bestScore {
			bestScore = score
			best = cand
		}
	}

	if best == nil {
		return current
	}
	return best
}
