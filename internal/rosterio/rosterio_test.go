package rosterio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPlayersParsesBattersAndPitchers(t *testing.T) {
	path := writeTemp(t, "players.csv", "player_id,bats,throws,ch,ph,is_pitcher,control,fb,primary_position\n"+
		"bat1,L,R,60,55,0,50,0,LF\n"+
		"pit1,R,R,30,30,1,65,70,P\n")

	batters, pitchers, err := LoadPlayers(path)
	require.NoError(t, err)
	require.Contains(t, batters, "bat1")
	assert.Equal(t, 60, batters["bat1"].Contact)
	require.Contains(t, pitchers, "pit1")
	assert.Equal(t, 65, pitchers["pit1"].Control)
	assert.Equal(t, 70, pitchers["pit1"].Repertoire["fb"])
}

func TestLoadPlayersToleratesMissingFile(t *testing.T) {
	batters, pitchers, err := LoadPlayers(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, batters)
	assert.Empty(t, pitchers)
}

func TestLoadTeamRosterDefaultsStatusToActive(t *testing.T) {
	path := writeTemp(t, "roster.csv", "player_id,status\nbat1,\nbat2,DL\n")
	rows, err := LoadTeamRoster(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ACT", rows[0].Status)
	assert.Equal(t, "DL", rows[1].Status)
}

func TestLoadLineupParsesOrderAndPosition(t *testing.T) {
	path := writeTemp(t, "lineup.csv", "order,player_id,position\n1,bat1,CF\n2,bat2,SS\n")
	rows, err := LoadLineup(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Order)
	assert.Equal(t, "bat1", rows[0].PlayerID)
}

func TestLoadParksFallsBackToNeutralDefaults(t *testing.T) {
	path := writeTemp(t, "parks.csv", "team,name,left_line_ft\nBOS,Fenway,310\n")
	parks, err := LoadParks(path)
	require.NoError(t, err)
	require.Contains(t, parks, "BOS")
	assert.Equal(t, 310.0, parks["BOS"].LeftLineFt)
	assert.Equal(t, 400.0, parks["BOS"].CenterFt)
}

func TestScheduleRoundTripFillsResult(t *testing.T) {
	path := writeTemp(t, "schedule.csv", "date,home,away,result,played,boxscore\n2026-04-01,BOS,NYY,,0,\n")
	rows, err := LoadSchedule(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Played)

	FillResult(rows, 0, 5, 3, "boxscores/2026-04-01-BOS-NYY.json")
	require.NoError(t, SaveSchedule(path, rows))

	reread, err := LoadSchedule(path)
	require.NoError(t, err)
	require.Len(t, reread, 1)
	assert.True(t, reread[0].Played)
	assert.Equal(t, "5-3", reread[0].Result)
	assert.Equal(t, "boxscores/2026-04-01-BOS-NYY.json", reread[0].BoxScore)
}

func TestLoadPlayoffsConfigToleratesMissingFile(t *testing.T) {
	cfg, err := LoadPlayoffsConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.NumPlayoffTeamsPerLeague)
}

func TestLoadPlayoffsConfigParsesSeriesLengths(t *testing.T) {
	path := writeTemp(t, "playoffs_config.json", `{
		"num_playoff_teams_per_league": 6,
		"series_lengths": {"WC": 3, "DS": 5, "CS": 7, "WS": 7}
	}`)
	cfg, err := LoadPlayoffsConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.NumPlayoffTeamsPerLeague)
	assert.Equal(t, 7, cfg.SeriesLengths["WS"])
}

func TestLoadInjuryCatalogFallsBackOnMissingFile(t *testing.T) {
	cat := LoadInjuryCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.NotNil(t, cat)
	assert.NotEmpty(t, cat.Triggers)
}

func TestLoadInjuryCatalogParsesCustomTemplate(t *testing.T) {
	path := writeTemp(t, "injury_catalog.json", `{
		"triggers": {"pitch": {"base_prob": 0.001, "modifiers": [{"metric": "fatigue", "factor": 0.02}]}},
		"templates": [{
			"name": "arm_strain",
			"eligible_triggers": ["pitch"],
			"pitcher_only": true,
			"profiles": {"minor": {"min_days": 7, "max_days": 15, "dl_tier": "dl10"}}
		}],
		"severity_weights": {"minor": 0.7, "moderate": 0.25, "major": 0.05}
	}`)
	cat := LoadInjuryCatalog(path)
	require.Len(t, cat.Templates, 1)
	assert.Equal(t, "arm_strain", cat.Templates[0].Name)
	assert.Equal(t, 7, cat.Templates[0].Profiles[0].MinDays)
}
