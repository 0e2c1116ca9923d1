// Package workload implements the pitcher/batter fatigue tracker that feeds availability back into starter
// selection and bullpen management.
package workload

import (
	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/tuning"
)

// PitcherWorkload is the per-pitcher fatigue ledger.
type PitcherWorkload struct {
	FatigueDebt         float64
	LastUsedDay         *int
	ConsecutiveDaysUsed int
	LastUpdateDay       *int
}

// BatterWorkload is the per-batter fatigue ledger.
type BatterWorkload struct {
	FatigueDebt    float64
	LastGameCounted *int
}

// State is the UsageState: current day plus per-player ledgers
//.
type State struct {
	CurrentDay int
	Pitchers   map[string]*PitcherWorkload
	Batters    map[string]*BatterWorkload
}

// NewState returns an empty usage state at day 0.
func NewState() *State {
	return &State{
		Pitchers: make(map[string]*PitcherWorkload),
		Batters:  make(map[string]*BatterWorkload),
	}
}

func (s *State) pitcher(id string) *PitcherWorkload {
	w, ok := s.Pitchers[id]
	if !ok {
		w = &PitcherWorkload{}
		s.Pitchers[id] = w
	}
	return w
}

// AdvanceDay decays each pitcher's fatigue debt not already updated
// today by days_passed * (base_recovery + durability*durability_scale),
// floored at 0, and resets the consecutive-day counter once 2+ days
// have elapsed since last use.
func (s *State) AdvanceDay(day int, pitchers []*ratings.Pitcher, tune *tuning.Registry) {
	s.CurrentDay = day
	baseRecovery := tune.GetDefault("base_recovery")
	durabilityScale := tune.GetDefault("durability_scale")

	for _, p := range pitchers {
		w := s.pitcher(p.ID)
		if w.LastUpdateDay != nil && *w.LastUpdateDay == day {
			continue
		}

		daysPassed := 1
		if w.LastUpdateDay != nil {
			daysPassed = day - *w.LastUpdateDay
			if daysPassed < 0 {
				daysPassed = 0
			}
		}

		recoveryRate := baseRecovery + float64(p.Durability)*durabilityScale
		w.FatigueDebt -= float64(daysPassed) * recoveryRate
		if w.FatigueDebt < 0 {
			w.FatigueDebt = 0
		}

		if w.LastUsedDay != nil && day-*w.LastUsedDay >= 2 {
			w.ConsecutiveDaysUsed = 0
		}

		updated := day
		w.LastUpdateDay = &updated
	}
}

// RecordOuting adds pitches*fatigue_debt_scale*multiplier to the debt,
// tracks consecutive-day usage, and applies the extra per-day penalty.
func (s *State) RecordOuting(pitcherID string, pitches int, day int, multiplier float64, tune *tuning.Registry) {
	w := s.pitcher(pitcherID)

	fatigueDebtScale := tune.GetDefault("fatigue_debt_scale")
	w.FatigueDebt += float64(pitches) * fatigueDebtScale * multiplier

	if w.LastUsedDay != nil && day-1 == *w.LastUsedDay {
		w.ConsecutiveDaysUsed++
	} else {
		w.ConsecutiveDaysUsed = 1
	}

	if w.ConsecutiveDaysUsed > 1 {
		penalty := tune.GetDefault("consecutive_day_penalty")
		w.FatigueDebt += penalty * float64(w.ConsecutiveDaysUsed-1)
	}

	used := day
	w.LastUsedDay = &used
}

// Applied is the pregame workload adjustment computed for a pitcher by
// ApplyUsageState.
type Applied struct {
	PregamePenalty float64
	FatigueStart   float64
	FatigueLimit   float64
	Available      bool
}

// ApplyUsageState computes the pregame workload adjustment: the
// ratio of debt to limit determines a pregame penalty and reduces
// fatigue_start/fatigue_limit; availability is gated on ratio and rest
// days, with the closer held to a higher bar plus a consecutive-day and
// appearance-ratio cap.
func ApplyUsageState(w *PitcherWorkload, p *ratings.Pitcher, fatigueStart, fatigueLimit float64,
	daysSinceUse int, appearanceRatio float64, tune *tuning.Registry) Applied {

	ratio := 0.0
	if fatigueLimit > 0 {
		ratio = w.FatigueDebt / fatigueLimit
	}

	penaltyScale := tune.GetDefault("pregame_penalty_scale")
	pregamePenalty := ratio * penaltyScale
	if pregamePenalty > 0.9 {
		pregamePenalty = 0.9
	}

	reductionFactor := tune.GetDefault("pregame_reduction_factor")
	newFatigueStart := fatigueStart - ratio*reductionFactor
	newFatigueLimit := fatigueLimit - ratio*reductionFactor

	availabilityRatio := tune.GetDefault("availability_ratio")
	role := p.BaseRole()
	if role == ratings.RoleCloser {
		availabilityRatio = tune.GetDefault("availability_ratio_cl")
	}

	available := ratio <= availabilityRatio

	requiredRest := requiredRestDays(role, tune)
	if daysSinceUse < requiredRest {
		available = false
	}

	if role == ratings.RoleCloser {
		if float64(w.ConsecutiveDaysUsed) >= tune.GetDefault("cl_consecutive_day_cap") {
			available = false
		}
		if appearanceRatio >= tune.GetDefault("cl_appearance_ratio_cap") {
			available = false
		}
	}

	return Applied{
		PregamePenalty: pregamePenalty,
		FatigueStart:   newFatigueStart,
		FatigueLimit:   newFatigueLimit,
		Available:      available,
	}
}

func requiredRestDays(role ratings.Role, tune *tuning.Registry) int {
	switch role {
	case ratings.RoleStarter:
		return int(tune.GetDefault("rest_days_sp"))
	case ratings.RoleLongRelief:
		return int(tune.GetDefault("rest_days_lr"))
	case ratings.RoleMiddleRelief:
		return int(tune.GetDefault("rest_days_mr"))
	case ratings.RoleSetup:
		return int(tune.GetDefault("rest_days_su"))
	case ratings.RoleCloser:
		return int(tune.GetDefault("rest_days_cl"))
	default:
		return 0
	}
}

// DaysSinceUse returns the number of days since w was last used, or a
// large sentinel if never used (fully rested).
func DaysSinceUse(w *PitcherWorkload, currentDay int) int {
	if w.LastUsedDay == nil {
		return 1 << 30
	}
	return currentDay - *w.LastUsedDay
}
