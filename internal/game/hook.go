package game

import (
	"github.com/baseball-sim/core/internal/atbat"
	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simctx"
)

// roleOuts caps maximum outs recorded per relief role before a hook is
// forced regardless of hook_score.
var roleOuts = map[ratings.Role]int{
	ratings.RoleCloser:       3,
	ratings.RoleSetup:        4,
	ratings.RoleMiddleRelief: 6,
	ratings.RoleLongRelief:   9,
}

// TimesThroughOrder computes TTO = floor((BF-1)/lineup_size) + 1.
func TimesThroughOrder(bf, lineupSize int) int {
	if bf <= 0 {
		return 1
	}
	if lineupSize <= 0 {
		lineupSize = 9
	}
	return (bf-1)/lineupSize + 1
}

// ShouldHook implements the hook-score formula: protect
// no-hitters/perfect games past the achievement inning (subject to a
// pitch cap), compute hook_score from runs/hits/walks/consecutive-hits/
// inning-locals/fatigue/TTO, scale by aggression, subtract a leash
// bonus, and compare to hook_threshold. Role-bound out caps force a
// hook independently of the score.
func ShouldHook(ctx *simctx.Context, ps *PitcherState, line *atbat.PitcherLine, inning int, closeGame, postseason bool) bool {
	if cap, ok := roleOuts[ps.StaffRole]; ok && line.Outs >= cap {
		return true
	}

	achievementInning := int(ctx.Tuning.GetDefault("achievement_inning"))
	noHitterCap := int(ctx.Tuning.GetDefault("no_hitter_pitch_cap"))
	if inning >= achievementInning && line.Hits == 0 && line.Pitches < noHitterCap {
		return false
	}

	fatigue := ps.LastFatiguePenalty
	tto := TimesThroughOrder(line.BF, 9)
	ttoWeight := ctx.Tuning.GetDefault("tto_soft_fatigue_weight")

	hookScore := float64(line.Runs)*1.0 + float64(line.Hits)*0.4 + float64(line.Walks)*0.5 +
		float64(line.ConsecutiveHits)*0.8 +
		float64(line.InningRuns)*1.2 + float64(line.InningWalks)*0.4 + float64(line.InningBaserunners)*0.3 +
		fatigue + float64(tto)*ttoWeight

	aggression := ctx.Tuning.GetDefault("hook_aggression_scale")
	if closeGame {
		aggression *= ctx.Tuning.GetDefault("hook_close_game_scale")
	}
	if postseason {
		aggression *= ctx.Tuning.GetDefault("hook_postseason_scale")
	}
	hookScore *= aggression

	leash := 0.0
	switch {
	case line.Hits == 0 && line.Runs == 0 && line.Walks == 0 && line.BF == line.Outs:
		leash = ctx.Tuning.GetDefault("leash_perfect_bonus")
	case line.Hits == 0 && line.Runs == 0:
		leash = ctx.Tuning.GetDefault("leash_no_hit_bonus")
	case line.Hits <= 1 && line.Runs == 0:
		leash = ctx.Tuning.GetDefault("leash_one_hit_bonus")
	case line.Runs == 0:
		leash = ctx.Tuning.GetDefault("leash_shutout_bonus")
	}

	threshold := ctx.Tuning.GetDefault("hook_threshold")
	return hookScore-leash >= threshold
}
