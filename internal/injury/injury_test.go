package injury

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
	"github.com/baseball-sim/core/internal/tuning"
	"github.com/baseball-sim/core/internal/workload"
)

func newCtx(seed int64) *simctx.Context {
	park := ratings.DefaultPark()
	return simctx.New(seed, tuning.New(), &park, workload.NewState())
}

func TestMaybeCreateInjuryForcedReturnsOutcome(t *testing.T) {
	catalog := DefaultCatalog()
	ctx := newCtx(1)
	outcome, ok := MaybeCreateInjury(ctx, catalog, "pitch", true, Metrics{}, true)
	require.True(t, ok)
	require.NotNil(t, outcome)
	assert.Greater(t, outcome.Days, 0)
}

func TestMaybeCreateInjuryUnknownTriggerReturnsFalse(t *testing.T) {
	catalog := DefaultCatalog()
	ctx := newCtx(1)
	_, ok := MaybeCreateInjury(ctx, catalog, "nonexistent", true, Metrics{}, true)
	assert.False(t, ok)
}

func TestMaybeCreateInjuryRespectsHitterOnlyTemplates(t *testing.T) {
	catalog := DefaultCatalog()
	ctx := newCtx(1)
	outcome, ok := MaybeCreateInjury(ctx, catalog, "swing", true, Metrics{}, true)
	if ok {
		assert.NotEqual(t, "oblique_strain", outcome.Template)
	}
}

func TestMaybeCreateInjuryUnforcedLowProbRarelyFires(t *testing.T) {
	catalog := DefaultCatalog()
	fires := 0
	for i := int64(0); i < 200; i++ {
		ctx := newCtx(i)
		_, ok := MaybeCreateInjury(ctx, catalog, "pitch", true, Metrics{}, false)
		if ok {
			fires++
		}
	}
	assert.Less(t, fires, 20)
}
