package main

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/baseball-sim/core/internal/game"
	"github.com/baseball-sim/core/internal/injury"
	"github.com/baseball-sim/core/internal/leaguectx"
	"github.com/baseball-sim/core/internal/playoffs"
	"github.com/baseball-sim/core/internal/progress"
	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/rosterio"
	"github.com/baseball-sim/core/internal/schedule"
	"github.com/baseball-sim/core/internal/season"
	"github.com/baseball-sim/core/internal/simctx"
	"github.com/baseball-sim/core/internal/standings"
	"github.com/baseball-sim/core/internal/tuning"
	"github.com/baseball-sim/core/internal/workload"
)

// RunLongTermSimCmd implements the run_long_term_sim CLI
// surface, grounded on stormlightlabs-baseball/cmd's
// Use*Var-per-command flag style.
func RunLongTermSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run_long_term_sim",
		Short: "Simulate one or more full seasons",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runLongTermSim(cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int("seasons", 1, "number of seasons to simulate")
	flags.Int("teams", 8, "number of teams in the league")
	flags.Int("games", 162, "games per team per season")
	flags.Int("start-year", 2026, "first season's year")
	flags.String("league-name", "Sandlot League", "league display name")
	flags.String("output-dir", "./sim-output", "directory for persisted run state")
	flags.Int64("seed", 1, "base RNG seed")
	flags.Bool("force", false, "accepted but unused: existing run state at output-dir is not cleared")
	flags.Bool("resume", false, "resume from persisted run state at output-dir")
	flags.Bool("save-boxscores", false, "accepted but unused: no boxscore files are written")
	flags.Bool("include-playoff-stats", false, "simulate the postseason after the regular season")
	flags.Int("draft-rounds", 0, "draft rounds to pause for on Draft Day (0 disables Draft Day)")
	flags.Int("draft-pool-size", 0, "size of the draft pool (informational only; pool generation is out of scope)")
	flags.Int("heartbeat-every", 50, "log a progress heartbeat every N games")

	return cmd
}

func runLongTermSim(cfg *Config) error {
	runID := uuid.New().String()
	log.WithFields(log.Fields{"run_id": runID, "league": cfg.LeagueName, "seasons": cfg.Seasons}).
		Info("baseballsim: starting run_long_term_sim")

	dataDir := filepath.Join(cfg.OutputDir, "data")
	teamIDs := make([]string, cfg.Teams)
	for i := range teamIDs {
		teamIDs[i] = fmt.Sprintf("TEAM%02d", i+1)
	}

	ctxStore := leaguectx.New(filepath.Join(cfg.OutputDir, "leaguectx.json"))
	if cfg.Resume {
		_ = ctxStore.Load() // tolerated: a fresh run has no prior ledger
	}
	ctxStore.EnsureLeague(cfg.LeagueName, cfg.SimDate)

	progressPath := filepath.Join(cfg.OutputDir, "progress.json")
	injuryCatalog := rosterio.LoadInjuryCatalog(filepath.Join(dataDir, "injury_catalog.json"))
	tune := tuning.New()
	_ = tune.LoadJSON(filepath.Join(dataDir, "tuning_overrides.json")) // tolerated: defaults stand if absent/malformed

	for s := 0; s < cfg.Seasons; s++ {
		year := cfg.StartYear + s
		if err := runOneSeason(cfg, year, teamIDs, ctxStore, progressPath, injuryCatalog, tune); err != nil {
			return fmt.Errorf("season %d: %w", year, err)
		}
	}

	log.WithField("run_id", runID).Info("baseballsim: run_long_term_sim complete")
	return nil
}

func runOneSeason(cfg *Config, year int, teamIDs []string, ctxStore *leaguectx.Store, progressPath string,
	injuryCatalog *injury.Catalog, tune *tuning.Registry) error {

	ctxStore.EnsureCurrentSeason(year, cfg.SimDate)
	ctxStore.MarkSeasonStarted()

	games, err := schedule.BuildMLBSchedule(teamIDs, cfg.GamesPerTeam)
	if err != nil {
		return fmt.Errorf("build schedule: %w", err)
	}

	teams := make(map[string]*game.Team, len(teamIDs))
	for _, id := range teamIDs {
		teams[id] = buildSyntheticTeam(id)
	}

	standingsRepo := standings.New(filepath.Join(cfg.OutputDir, fmt.Sprintf("standings_%d.json", year)))
	if cfg.Resume {
		_ = standingsRepo.Load()
	}

	seasonSeed := cfg.Seed + int64(year)
	park := ratings.DefaultPark()
	workloadState := workload.NewState()

	maxDay := 0
	for _, g := range games {
		if g.Day > maxDay {
			maxDay = g.Day
		}
	}
	hasDraftDay := cfg.DraftRounds > 0
	draftDay := maxDay / 2

	driver := season.NewDriver(games, draftDay, hasDraftDay, seasonSeed)

	gamesPlayed := 0
	allStar := func() {
		log.WithField("year", year).Info("baseballsim: All-Star break")
	}
	draftHook := func(day int) error {
		log.WithFields(log.Fields{"year": year, "day": day, "rounds": cfg.DraftRounds}).
			Info("baseballsim: Draft Day (pool generation out of scope)")
		return progress.MarkDraftCompleted(progressPath, year)
	}
	sim := func(seed int64, g schedule.Game) season.GameResult {
		rng := rand.New(rand.NewSource(seed))
		gameCtx := simctx.New(rng.Int63(), tune, &park, workloadState)
		result := game.Play(gameCtx, teams[g.Home], teams[g.Away], game.Config{
			ExtraInningsRunnerFromInning: 10,
			InjuryCatalog:                injuryCatalog,
		})
		return season.GameResult{HomeScore: result.HomeScore, AwayScore: result.AwayScore}
	}
	after := func(day int, played season.PlayedGame) {
		gamesPlayed++
		recordGame(standingsRepo, played)
		if cfg.HeartbeatEvery > 0 && gamesPlayed%cfg.HeartbeatEvery == 0 {
			log.WithFields(log.Fields{"year": year, "games_played": gamesPlayed}).Info("baseballsim: heartbeat")
		}
	}

	for !driver.Done() {
		if err := driver.SimulateNextDay(allStar, draftHook, sim, after); err != nil {
			return fmt.Errorf("simulate day: %w", err)
		}
	}

	if err := standingsRepo.Save(); err != nil {
		return fmt.Errorf("save standings: %w", err)
	}

	if cfg.IncludePlayoffStats {
		if err := runPlayoffs(cfg, year, teamIDs, standingsRepo, tune, &park, workloadState); err != nil {
			return fmt.Errorf("playoffs: %w", err)
		}
		if err := progress.MarkPlayoffsCompleted(progressPath); err != nil {
			return fmt.Errorf("mark playoffs completed: %w", err)
		}
	}

	ctxStore.ArchiveCurrentSeason(map[string]interface{}{"games_played": gamesPlayed}, cfg.SimDate, year+1)
	return ctxStore.Save()
}

func recordGame(repo *standings.Repository, played season.PlayedGame) {
	home, away := played.Game.Home, played.Game.Away
	homeWon := played.Result.HomeScore > played.Result.AwayScore
	oneRun := abs(played.Result.HomeScore-played.Result.AwayScore) == 1

	repo.UpdateRecord(home, standings.GameResult{
		Won: homeWon, RunsFor: played.Result.HomeScore, RunsAgainst: played.Result.AwayScore,
		Home: true, OneRun: oneRun,
	})
	repo.UpdateRecord(away, standings.GameResult{
		Won: !homeWon, RunsFor: played.Result.AwayScore, RunsAgainst: played.Result.HomeScore,
		Home: false, OneRun: oneRun,
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func runPlayoffs(cfg *Config, year int, teamIDs []string, standingsRepo *standings.Repository,
	tune *tuning.Registry, park *ratings.Park, workloadState *workload.State) error {

	inputs := make([]playoffs.TeamInput, 0, len(teamIDs))
	records := standingsRepo.All()
	for i, id := range teamIDs {
		r := records[id]
		if r == nil {
			r = &standings.Record{}
		}
		league := "AL"
		if i%2 == 1 {
			league = "NL"
		}
		inputs = append(inputs, playoffs.TeamInput{ID: id, League: league, Division: league, Wins: r.Wins, RunDiff: r.RunDiff()})
	}

	seeded := playoffs.Seed(inputs)
	bracket := &playoffs.Bracket{SchemaVersion: playoffs.SchemaVersion, Year: year, Leagues: make(map[string][]playoffs.Round)}

	for league, seeds := range seeded {
		rounds := playoffs.BuildRounds(league, len(seeds), playoffs.DefaultSeriesLengths)
		bracket.Leagues[league] = rounds

		sim := func(seed uint32, home, away string) (int, int) {
			rng := rand.New(rand.NewSource(int64(seed)))
			gameCtx := simctx.New(rng.Int63(), tune, park, workloadState)
			result := game.Play(gameCtx, buildSyntheticTeam(home), buildSyntheticTeam(away), game.Config{
				ExtraInningsRunnerFromInning: 10, Postseason: true,
			})
			return result.HomeScore, result.AwayScore
		}
		playoffs.SimulatePlayoffs(year, seeds, rounds, sim)
	}

	if ws := findWorldSeries(bracket); ws != nil {
		bracket.WorldSeries = ws
	}
	bracket.ResolveChampionship()

	return playoffs.SaveBracket(cfg.OutputDir, bracket)
}

func findWorldSeries(b *playoffs.Bracket) *playoffs.Round {
	for _, rounds := range b.Leagues {
		for i := range rounds {
			if rounds[i].Name == "WS" {
				return &rounds[i]
			}
		}
	}
	return nil
}
