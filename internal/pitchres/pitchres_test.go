package pitchres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
	"github.com/baseball-sim/core/internal/tuning"
	"github.com/baseball-sim/core/internal/workload"
)

func newCtx(seed int64) *simctx.Context {
	tune := tuning.New()
	park := ratings.DefaultPark()
	return simctx.New(seed, tune, &park, workload.NewState())
}

func avgBatter() BatterContext {
	return BatterContext{Contact: 50, Power: 50, Eye: 50, Hand: ratings.Right, GroundBall: 50, Pull: 50}
}

func avgPitcher() PitcherContext {
	return PitcherContext{
		Repertoire:    ratings.Repertoire{"fb": 50},
		Velocity:      90,
		Control:       50,
		Movement:      50,
		FatigueFactor: 1.0,
		Hand:          ratings.Right,
	}
}

func TestResolveIsDeterministicForSameSeed(t *testing.T) {
	sit := Situation{Balls: 0, Strikes: 0}
	r1 := Resolve(newCtx(42), avgBatter(), avgPitcher(), sit)
	r2 := Resolve(newCtx(42), avgBatter(), avgPitcher(), sit)
	assert.Equal(t, r1, r2)
}

func TestResolveNoSwingInZoneIsCalledStrike(t *testing.T) {
	var found bool
	for i := int64(0); i < 200 && !found; i++ {
		r := Resolve(newCtx(i), avgBatter(), avgPitcher(), Situation{})
		if !r.Swing && r.InZone {
			assert.Equal(t, CalledStrike, r.Outcome)
			found = true
		}
	}
}

func TestResolveNoSwingOutOfZoneIsBall(t *testing.T) {
	var found bool
	for i := int64(0); i < 200 && !found; i++ {
		r := Resolve(newCtx(i), avgBatter(), avgPitcher(), Situation{})
		if !r.Swing && !r.InZone {
			assert.Equal(t, Ball, r.Outcome)
			found = true
		}
	}
}

func TestResolveInPlayPopulatesBattedBallFields(t *testing.T) {
	var found bool
	for i := int64(0); i < 500 && !found; i++ {
		r := Resolve(newCtx(i), avgBatter(), avgPitcher(), Situation{})
		if r.Outcome == InPlay {
			assert.Greater(t, r.ExitVelo, 0.0)
			found = true
		}
	}
	assert.True(t, found, "expected at least one in_play outcome across samples")
}

func TestResolvePicksHighestQualityRepertoirePitch(t *testing.T) {
	p := avgPitcher()
	p.Repertoire = ratings.Repertoire{"fb": 40, "sl": 80, "cb": 0}
	r := Resolve(newCtx(1), avgBatter(), p, Situation{})
	assert.Equal(t, "sl", r.PitchType)
}
