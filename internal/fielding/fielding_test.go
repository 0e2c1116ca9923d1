package fielding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baseball-sim/core/internal/battedball"
	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
	"github.com/baseball-sim/core/internal/tuning"
	"github.com/baseball-sim/core/internal/workload"
)

func newCtx(seed int64) *simctx.Context {
	park := ratings.DefaultPark()
	return simctx.New(seed, tuning.New(), &park, workload.NewState())
}

func avgDefense() map[ratings.Position]*ratings.Batter {
	mk := func(id string, pos ratings.Position, fielding, arm int) *ratings.Batter {
		return &ratings.Batter{ID: id, PrimaryPosition: pos, Fielding: fielding, Arm: arm}
	}
	return map[ratings.Position]*ratings.Batter{
		ratings.PosFirst:      mk("1b", ratings.PosFirst, 50, 50),
		ratings.PosSecond:     mk("2b", ratings.PosSecond, 70, 50),
		ratings.PosThird:      mk("3b", ratings.PosThird, 50, 50),
		ratings.PosShortstop:  mk("ss", ratings.PosShortstop, 70, 70),
		ratings.PosLeftField:  mk("lf", ratings.PosLeftField, 50, 50),
		ratings.PosCenterField: mk("cf", ratings.PosCenterField, 50, 50),
		ratings.PosRightField: mk("rf", ratings.PosRightField, 50, 50),
		ratings.PosCatcher:    mk("c", ratings.PosCatcher, 50, 50),
	}
}

func TestAssignFallsBackToBestFielder(t *testing.T) {
	lineup := map[ratings.Position]*ratings.Batter{}
	bench := []*ratings.Batter{
		{ID: "a", PrimaryPosition: ratings.PosFirst, Fielding: 40},
		{ID: "b", PrimaryPosition: ratings.PosFirst, Fielding: 80},
	}
	out := Assign(lineup, bench)
	assert.Equal(t, "b", out[ratings.PosFirst].ID)
}

func TestResolveOutProducesDoublePlayOnGroundBallWithRunnerOn1st(t *testing.T) {
	var sawDP bool
	for i := int64(0); i < 500 && !sawDP; i++ {
		ctx := newCtx(i)
		bb := battedball.Result{BallType: battedball.GroundBall}
		res := ResolveOut(ctx, bb, 85, avgDefense(), 50, 40, true, false, 0)
		if res.DoublePlay {
			sawDP = true
		}
	}
	assert.True(t, sawDP, "expected at least one double play across samples")
}

func TestResolveOutNoDoublePlayWithTwoOuts(t *testing.T) {
	for i := int64(0); i < 50; i++ {
		ctx := newCtx(i)
		bb := battedball.Result{BallType: battedball.GroundBall}
		res := ResolveOut(ctx, bb, 85, avgDefense(), 50, 40, true, false, 2)
		assert.False(t, res.DoublePlay)
	}
}

func TestResolveOutErrorReversesOut(t *testing.T) {
	ctx := newCtx(7)
	ctx.Tuning.SetOverride("error_rate_scale", 1000)
	bb := battedball.Result{BallType: battedball.GroundBall}
	res := ResolveOut(ctx, bb, 85, avgDefense(), 50, 50, false, false, 0)
	if res.Error != NoError {
		assert.False(t, res.Out)
	}
}
