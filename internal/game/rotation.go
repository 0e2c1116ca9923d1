package game

import (
	"sort"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/tuning"
	"github.com/baseball-sim/core/internal/workload"
)

// OrderRotation sorts starters by role suffix (SP1 < SP2 < ...).
func OrderRotation(starters []*ratings.Pitcher) []*ratings.Pitcher {
	out := make([]*ratings.Pitcher, len(starters))
	copy(out, starters)
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out
}

// SelectStarter picks by game_day modulo rotation length; if the
// chosen starter is not rested, it chooses the most rested eligible
// starter, otherwise the most rested of all.
func SelectStarter(rotation []*ratings.Pitcher, gameDay int, usage *workload.State, tune *tuning.Registry) *ratings.Pitcher {
	if len(rotation) == 0 {
		return nil
	}
	idx := gameDay % len(rotation)
	chosen := rotation[idx]

	restDays := int(tune.GetDefault("rest_days_sp"))
	daysSince := workload.DaysSinceUse(usageFor(usage, chosen.ID), usage.CurrentDay)
	if daysSince >= restDays {
		return chosen
	}

	var mostRestedEligible *ratings.Pitcher
	mostRestedEligibleDays := -1
	var mostRestedAny *ratings.Pitcher
	mostRestedAnyDays := -1

	for _, p := range rotation {
		d := workload.DaysSinceUse(usageFor(usage, p.ID), usage.CurrentDay)
		if d > mostRestedAnyDays {
			mostRestedAnyDays = d
			mostRestedAny = p
		}
		if d >= restDays && d > mostRestedEligibleDays {
			mostRestedEligibleDays = d
			mostRestedEligible = p
		}
	}

	if mostRestedEligible != nil {
		return mostRestedEligible
	}
	return mostRestedAny
}

func usageFor(usage *workload.State, id string) *workload.PitcherWorkload {
	if w, ok := usage.Pitchers[id]; ok {
		return w
	}
	return &workload.PitcherWorkload{}
}
