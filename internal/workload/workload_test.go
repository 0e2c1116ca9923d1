package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/tuning"
)

func newTune() *tuning.Registry {
	return tuning.New()
}

func TestRecordOutingAddsFatigueDebt(t *testing.T) {
	s := NewState()
	tune := newTune()
	s.RecordOuting("p1", 90, 10, 1.0, tune)

	w := s.Pitchers["p1"]
	require.NotNil(t, w)
	assert.Greater(t, w.FatigueDebt, 0.0)
	assert.Equal(t, 1, w.ConsecutiveDaysUsed)
	require.NotNil(t, w.LastUsedDay)
	assert.Equal(t, 10, *w.LastUsedDay)
}

func TestRecordOutingTracksConsecutiveDays(t *testing.T) {
	s := NewState()
	tune := newTune()
	s.RecordOuting("p1", 20, 10, 1.0, tune)
	s.RecordOuting("p1", 20, 11, 1.0, tune)

	w := s.Pitchers["p1"]
	assert.Equal(t, 2, w.ConsecutiveDaysUsed)
}

func TestRecordOutingResetsConsecutiveAfterGap(t *testing.T) {
	s := NewState()
	tune := newTune()
	s.RecordOuting("p1", 20, 10, 1.0, tune)
	s.RecordOuting("p1", 20, 15, 1.0, tune)

	w := s.Pitchers["p1"]
	assert.Equal(t, 1, w.ConsecutiveDaysUsed)
}

func TestAdvanceDayDecaysFatigueDebt(t *testing.T) {
	s := NewState()
	tune := newTune()
	p := &ratings.Pitcher{ID: "p1", Durability: 50}
	s.RecordOuting("p1", 100, 1, 1.0, tune)

	before := s.Pitchers["p1"].FatigueDebt
	s.AdvanceDay(2, []*ratings.Pitcher{p}, tune)
	after := s.Pitchers["p1"].FatigueDebt

	assert.Less(t, after, before)
}

func TestAdvanceDayFloorsAtZero(t *testing.T) {
	s := NewState()
	tune := newTune()
	p := &ratings.Pitcher{ID: "p1", Durability: 100}
	s.RecordOuting("p1", 5, 1, 1.0, tune)

	s.AdvanceDay(100, []*ratings.Pitcher{p}, tune)
	assert.Equal(t, 0.0, s.Pitchers["p1"].FatigueDebt)
}

func TestAdvanceDayIsIdempotentSameDay(t *testing.T) {
	s := NewState()
	tune := newTune()
	p := &ratings.Pitcher{ID: "p1", Durability: 50}
	s.RecordOuting("p1", 100, 1, 1.0, tune)

	s.AdvanceDay(2, []*ratings.Pitcher{p}, tune)
	mid := s.Pitchers["p1"].FatigueDebt
	s.AdvanceDay(2, []*ratings.Pitcher{p}, tune)
	assert.Equal(t, mid, s.Pitchers["p1"].FatigueDebt)
}

func TestApplyUsageStateUnavailableWhenHeavilyFatigued(t *testing.T) {
	tune := newTune()
	p := &ratings.Pitcher{ID: "p1", Role: ratings.RoleStarter}
	w := &PitcherWorkload{FatigueDebt: 1000}

	applied := ApplyUsageState(w, p, 100, 100, 10, 0.1, tune)
	assert.False(t, applied.Available)
}

func TestApplyUsageStateAvailableWhenFresh(t *testing.T) {
	tune := newTune()
	p := &ratings.Pitcher{ID: "p1", Role: ratings.RoleMiddleRelief}
	w := &PitcherWorkload{FatigueDebt: 0}

	applied := ApplyUsageState(w, p, 100, 100, 10, 0.1, tune)
	assert.True(t, applied.Available)
}

func TestApplyUsageStateEnforcesRestDaysForStarter(t *testing.T) {
	tune := newTune()
	p := &ratings.Pitcher{ID: "p1", Role: ratings.RoleStarter}
	w := &PitcherWorkload{FatigueDebt: 0}

	applied := ApplyUsageState(w, p, 100, 100, 0, 0.1, tune)
	assert.False(t, applied.Available)
}

func TestApplyUsageStateCloserConsecutiveDayCap(t *testing.T) {
	tune := newTune()
	p := &ratings.Pitcher{ID: "p1", Role: ratings.RoleCloser}
	w := &PitcherWorkload{FatigueDebt: 0, ConsecutiveDaysUsed: 5}

	applied := ApplyUsageState(w, p, 100, 100, 10, 0.1, tune)
	assert.False(t, applied.Available)
}

func TestDaysSinceUseNeverUsedIsLarge(t *testing.T) {
	w := &PitcherWorkload{}
	assert.Greater(t, DaysSinceUse(w, 5), 1000)
}

func TestDaysSinceUseComputesDelta(t *testing.T) {
	used := 3
	w := &PitcherWorkload{LastUsedDay: &used}
	assert.Equal(t, 7, DaysSinceUse(w, 10))
}
