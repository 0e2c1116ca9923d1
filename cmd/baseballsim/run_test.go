package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSyntheticTeamHasFullLineupAndPitchingStaff(t *testing.T) {
	team := buildSyntheticTeam("TEAM01")

	require.NotNil(t, team.Lineup)
	require.NotNil(t, team.Pitching)
	assert.Len(t, team.Lineup.Order, 9)
	assert.NotNil(t, team.Pitching.Starter)
	assert.Len(t, team.Pitching.Bullpen, 4)
}

func TestLoadConfigAppliesFlagDefaults(t *testing.T) {
	cmd := RunLongTermSimCmd()

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Seasons)
	assert.Equal(t, 8, cfg.Teams)
	assert.Equal(t, 162, cfg.GamesPerTeam)
	assert.Equal(t, 2026, cfg.StartYear)
	assert.Equal(t, "default", cfg.GameEngine)
	assert.True(t, cfg.PersistStats)
}

func TestLoadConfigHonorsExplicitFlags(t *testing.T) {
	cmd := RunLongTermSimCmd()
	require.NoError(t, cmd.Flags().Set("seasons", "2"))
	require.NoError(t, cmd.Flags().Set("teams", "4"))
	require.NoError(t, cmd.Flags().Set("games", "20"))
	require.NoError(t, cmd.Flags().Set("include-playoff-stats", "true"))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Seasons)
	assert.Equal(t, 4, cfg.Teams)
	assert.Equal(t, 20, cfg.GamesPerTeam)
	assert.True(t, cfg.IncludePlayoffStats)
}

func TestRunLongTermSimPlaysAShortSeasonEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Seasons: 1, Teams: 4, GamesPerTeam: 12, StartYear: 2026,
		LeagueName: "Test League", OutputDir: dir, Seed: 7,
		HeartbeatEvery: 100, GameEngine: "default", RatingProfile: "default",
		PersistStats: true,
	}

	err := runLongTermSim(cfg)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "standings_2026.json"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "leaguectx.json"))
	assert.NoError(t, statErr)
}

func TestRunLongTermSimWithPlayoffsWritesBracket(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Seasons: 1, Teams: 4, GamesPerTeam: 12, StartYear: 2030,
		LeagueName: "Test League", OutputDir: dir, Seed: 11,
		HeartbeatEvery: 100, IncludePlayoffStats: true,
		GameEngine: "default", RatingProfile: "default", PersistStats: true,
	}

	err := runLongTermSim(cfg)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "playoffs_2030.json"))
	assert.NoError(t, statErr)
}
