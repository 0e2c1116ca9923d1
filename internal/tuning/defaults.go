package tuning

// defaultTable is the fixed built-in default table.
// Only keys present here are ever honored from an override source;
// everything else is silently dropped at load time.
func defaultTable() map[string]float64 {
	return map[string]float64{
		// --- pitch resolver ---
		"zone_swing_scale":            1.00,
		"chase_scale":                 1.00,
		"zone_base":                   0.65,
		"chase_base":                  0.28,
		"two_strike_aggression_scale": 1.00,
		"walk_scale":                  1.00,
		"pitching_dom_scale":          1.00,
		"contact_quality_scale":       1.00,
		"k_scale":                     1.00,
		"offense_scale":               1.00,
		"gb_fb_tilt":                  1.00,
		"command_factor":              1.00,
		"movement_factor":             1.00,
		"velocity_scale":              1.00,

		// --- batted ball resolver ---
		"hr_scale":          1.00,
		"altitude_scale":    1.00,
		"carry_scale_base":  0.75,
		"triple_fraction":   0.92,
		"double_fraction":   0.72,
		"gravity_ft_s2":     32.17,
		"mph_to_fts":        1.467,

		// --- fielding & defense ---
		"defense_primary_scale":    1.00,
		"defense_secondary_scale":  0.85,
		"defense_out_of_pos_scale": 0.65,
		"shift_pull_threshold":     65.0,
		"shift_boost":              0.04,
		"out_base_gb":              0.78,
		"out_base_ld":              0.38,
		"out_base_fb":              0.73,
		"double_play_base":         0.18,
		"triple_play_base":         0.004,
		"error_rate_scale":         1.00,
		"error_base_gb":            0.018,
		"error_base_fb":            0.008,
		"error_base_ld":            0.012,
		"error_throwing_share":     0.55,

		// --- baserunning ---
		"advance_prob_base":       0.55,
		"advance_speed_weight":    0.0035,
		"advance_arm_weight":      0.0030,
		"tag_up_third_extra":      0.12,
		"stretch_extra_base_prob": 0.12,
		"wp_pb_control_weight":    0.01,
		"wp_pb_occurrence_base":   0.018,
		"balk_base_prob":          0.0008,
		"steal_attempt_base":      0.04,
		"steal_success_base":      0.70,
		"pickoff_attempt_base":    0.015,
		"pickoff_success_base":    0.92,
		"dropped_third_base":      0.03,
		"catcher_interference_base": 0.0006,

		// --- plate appearance / game engine ---
		"ibb_threat_threshold":      62.0,
		"bunt_situational_scale":    1.00,
		"bunt_hit_base":             0.03,
		"bunt_success_base":         0.68,
		"bunt_squeeze_rate":         0.15,
		"bunt_double_play_base":     0.08,
		"pinch_hit_gain_threshold":  6.0,
		"pinch_hit_inning":          7.0,
		"pinch_hit_close_run_diff":  2.0,
		"defensive_sub_inning":        7.0,
		"defensive_sub_close_run_diff": 2.0,
		"defensive_sub_fielding_diff":  8.0,
		"hook_aggression_scale":     1.00,
		"hook_close_game_scale":     1.00,
		"hook_postseason_scale":     1.00,
		"hook_threshold":            55.0,
		"leash_shutout_bonus":       6.0,
		"leash_one_hit_bonus":       10.0,
		"leash_no_hit_bonus":        18.0,
		"leash_perfect_bonus":       24.0,
		"achievement_inning":        7.0,
		"no_hitter_pitch_cap":       115.0,
		"tto_soft_fatigue_weight":   3.5,
		"bullpen_platoon_weight":    1.08,
		"save_diff":                 3.0,
		"extra_innings_runner_from": 10.0,

		// --- workload / usage tracker ---
		"base_recovery":          6.0,
		"durability_scale":       0.10,
		"fatigue_debt_scale":     1.00,
		"consecutive_day_penalty": 8.0,
		"pregame_penalty_scale":  1.00,
		"pregame_reduction_factor": 20.0,
		"availability_ratio":      0.85,
		"availability_ratio_cl":   0.95,
		"rest_days_sp":            4.0,
		"rest_days_lr":            1.0,
		"rest_days_mr":            1.0,
		"rest_days_su":            1.0,
		"rest_days_cl":            1.0,
		"cl_consecutive_day_cap":  2.0,
		"cl_appearance_ratio_cap": 0.65,

		// --- injury resolver ---
		"injury_velocity_factor":  0.015,
		"injury_fatigue_factor":   0.020,
		"injury_durability_factor": -0.012,
		"injury_minor_weight":     0.70,
		"injury_moderate_weight":  0.24,
		"injury_major_weight":     0.06,
	}
}
