package baserunning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestForceWalkEmptyBasesPlacesBatterOnFirst(t *testing.T) {
	s := &State{}
	batter := &Runner{ID: "b"}
	res := ForceWalk(s, batter)
	assert.Empty(t, res.RunsScored)
	assert.Same(t, batter, s.Runners[0])
}

func TestForceWalkBasesLoadedForcesRunIn(t *testing.T) {
	s := &State{Runners: [3]*Runner{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}}}
	batter := &Runner{ID: "b"}
	res := ForceWalk(s, batter)
	require.Len(t, res.RunsScored, 1)
	assert.Equal(t, "r3", res.RunsScored[0].ID)
	assert.Equal(t, "r1", s.Runners[1].ID)
	assert.Equal(t, "r2", s.Runners[2].ID)
	assert.Same(t, batter, s.Runners[0])
}

func TestOnHitHomeRunScoresEveryone(t *testing.T) {
	ctx := newCtx(1)
	s := &State{Runners: [3]*Runner{{ID: "r1"}, nil, {ID: "r3"}}}
	batter := &Runner{ID: "b"}
	res := OnHit(ctx, s, batter, battedball.HomeRun, 50)
	assert.Len(t, res.RunsScored, 3)
	for _, slot := range s.Runners {
		assert.Nil(t, slot)
	}
}

func TestOnHitTripleScoresAllAndPlacesBatterAtThird(t *testing.T) {
	ctx := newCtx(1)
	s := &State{Runners: [3]*Runner{{ID: "r1"}, nil, nil}}
	batter := &Runner{ID: "b"}
	res := OnHit(ctx, s, batter, battedball.Triple, 50)
	assert.Len(t, res.RunsScored, 1)
	assert.Equal(t, "b", s.Runners[2].ID)
}

func TestOnHitSingleAlwaysScoresRunnerFromThird(t *testing.T) {
	ctx := newCtx(1)
	s := &State{Runners: [3]*Runner{nil, nil, {ID: "r3"}}}
	batter := &Runner{ID: "b"}
	res := OnHit(ctx, s, batter, battedball.Single, 50)
	require.Len(t, res.RunsScored, 1)
	assert.Equal(t, "r3", res.RunsScored[0].ID)
	assert.Equal(t, "b", s.Runners[0].ID)
}

func TestAdvanceProbClampsToRange(t *testing.T) {
	ctx := newCtx(1)
	p := AdvanceProb(ctx, 100, 0)
	assert.LessOrEqual(t, p, 0.95)
	p2 := AdvanceProb(ctx, 0, 100)
	assert.GreaterOrEqual(t, p2, 0.05)
}

func TestBalkAdvancesAllRunnersWhenTriggered(t *testing.T) {
	ctx := newCtx(1)
	ctx.Tuning.SetOverride("balk_base_prob", 1.0)
	s := &State{Runners: [3]*Runner{{ID: "r1"}, {ID: "r2"}, nil}}
	triggered, res := Balk(ctx, s)
	assert.True(t, triggered)
	assert.Equal(t, "r2", s.Runners[2].ID)
	assert.Equal(t, "r1", s.Runners[1].ID)
	assert.Empty(t, res.RunsScored)
}

func TestDroppedThirdStrikeBlockedWithRunnerOnFirstLessThanTwoOuts(t *testing.T) {
	s := &State{Runners: [3]*Runner{{ID: "r1"}, nil, nil}}
	ctx := newCtx(1)
	ctx.Tuning.SetOverride("dropped_third_base", 1.0)
	ok := DroppedThirdStrike(ctx, s, 30, 30, 5, 0)
	assert.False(t, ok)
}

func TestDroppedThirdStrikeAllowedWithTwoOuts(t *testing.T) {
	// The drop probability is capped at 0.2, so try seeds until one drops.
	ok := false
	for seed := int64(0); seed < 200 && !ok; seed++ {
		s := &State{Runners: [3]*Runner{{ID: "r1"}, nil, nil}}
		ctx := newCtx(seed)
		ctx.Tuning.SetOverride("dropped_third_base", 1.0)
		ok = DroppedThirdStrike(ctx, s, 30, 30, 5, 2)
	}
	assert.True(t, ok)
}
