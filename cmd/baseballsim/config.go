package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the resolved run_long_term_sim configuration: cobra flags
// layered under environment variables, bound through viper's
// SetDefault/BindEnv/AutomaticEnv rather than a bespoke getEnv helper.
type Config struct {
	Seasons             int
	Teams               int
	GamesPerTeam        int
	StartYear           int
	LeagueName          string
	OutputDir           string
	Seed                int64
	Force               bool
	Resume              bool
	SaveBoxscores       bool
	IncludePlayoffStats bool
	DraftRounds         int
	DraftPoolSize       int
	HeartbeatEvery      int

	SimDate           string
	SimYear           int
	GameEngine        string
	RatingProfile     string
	SkipBoxscoreHTML  bool
	PersistStats      bool
}

func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	v.SetDefault("sim_date", "")
	v.SetDefault("sim_year", 0)
	v.SetDefault("game_engine", "default")
	v.SetDefault("rating_profile", "default")
	v.SetDefault("skip_boxscore_html", false)
	v.SetDefault("persist_stats", true)

	v.AutomaticEnv()
	bindings := map[string]string{
		"sim_date":           "PB_SIM_DATE",
		"sim_year":           "PB_SIM_YEAR",
		"game_engine":        "PB_GAME_ENGINE",
		"rating_profile":     "PB_RATING_PROFILE",
		"skip_boxscore_html": "PB_SKIP_BOXSCORE_HTML",
		"persist_stats":      "PB_PERSIST_STATS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	return &Config{
		Seasons:             v.GetInt("seasons"),
		Teams:               v.GetInt("teams"),
		GamesPerTeam:        v.GetInt("games"),
		StartYear:           v.GetInt("start-year"),
		LeagueName:          v.GetString("league-name"),
		OutputDir:           v.GetString("output-dir"),
		Seed:                v.GetInt64("seed"),
		Force:               v.GetBool("force"),
		Resume:              v.GetBool("resume"),
		SaveBoxscores:       v.GetBool("save-boxscores"),
		IncludePlayoffStats: v.GetBool("include-playoff-stats"),
		DraftRounds:         v.GetInt("draft-rounds"),
		DraftPoolSize:       v.GetInt("draft-pool-size"),
		HeartbeatEvery:      v.GetInt("heartbeat-every"),

		SimDate:          v.GetString("sim_date"),
		SimYear:          v.GetInt("sim_year"),
		GameEngine:       v.GetString("game_engine"),
		RatingProfile:    v.GetString("rating_profile"),
		SkipBoxscoreHTML: v.GetBool("skip_boxscore_html"),
		PersistStats:     v.GetBool("persist_stats"),
	}, nil
}
