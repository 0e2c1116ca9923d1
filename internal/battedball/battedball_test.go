package battedball

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
	"github.com/baseball-sim/core/internal/tuning"
	"github.com/baseball-sim/core/internal/workload"
)

func newCtx() *simctx.Context {
	park := ratings.DefaultPark()
	return simctx.New(1, tuning.New(), &park, workload.NewState())
}

func TestClassifyGroundBallLowLaunch(t *testing.T) {
	r := Classify(newCtx(), 90, 5, 0)
	assert.Equal(t, GroundBall, r.BallType)
}

func TestClassifyLineDriveMidLaunch(t *testing.T) {
	r := Classify(newCtx(), 90, 15, 0)
	assert.Equal(t, LineDrive, r.BallType)
}

func TestClassifyFlyBallHighLaunch(t *testing.T) {
	r := Classify(newCtx(), 90, 30, 0)
	assert.Equal(t, FlyBall, r.BallType)
}

func TestClassifySoloHomeRunScenario(t *testing.T) {
	r := Classify(newCtx(), 105, 28, 0)
	assert.InDelta(t, 458.6, r.Distance, 20)
	assert.Equal(t, HomeRun, r.HitType)
}

func TestClassifyWeakGroundBallIsSingle(t *testing.T) {
	r := Classify(newCtx(), 70, 2, 0)
	assert.Equal(t, Single, r.HitType)
}
