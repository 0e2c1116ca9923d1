package leaguectx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureLeagueIsIdempotent(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "league.json"))
	l1 := s.EnsureLeague("Cactus League", "2026-01-01T00:00:00Z")
	l2 := s.EnsureLeague("Different Name", "2026-02-02T00:00:00Z")
	assert.Same(t, l1, l2)
	assert.Equal(t, "cactus-league", l1.ID)
}

func TestEnsureCurrentSeasonDerivesSeasonID(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "league.json"))
	s.EnsureLeague("Cactus League", "2026-01-01T00:00:00Z")
	cur := s.EnsureCurrentSeason(2026, "2026-03-26")
	assert.Equal(t, "cactus-league-2026", cur.SeasonID)
	assert.Equal(t, 1, cur.Sequence)
}

func TestArchiveCurrentSeasonAppendsAndResets(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "league.json"))
	s.EnsureLeague("Cactus League", "2026-01-01T00:00:00Z")
	s.EnsureCurrentSeason(2026, "2026-03-26")
	s.MarkSeasonStarted()

	s.ArchiveCurrentSeason(map[string]interface{}{"champion": "home"}, "2026-10-01", 2027)

	require.Len(t, s.Ledger().Seasons, 1)
	assert.True(t, s.Ledger().Seasons[0].RolloverComplete)
	assert.Equal(t, "2026-10-01", s.Ledger().Seasons[0].EndedOn)

	assert.Equal(t, "cactus-league-2027", s.Ledger().Current.SeasonID)
	assert.Equal(t, 2, s.Ledger().Current.Sequence)
	assert.False(t, s.Ledger().Current.RolloverComplete)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.json")
	s := New(path)
	s.EnsureLeague("Cactus League", "2026-01-01T00:00:00Z")
	s.EnsureCurrentSeason(2026, "2026-03-26")
	require.NoError(t, s.Save())

	s2 := New(path)
	require.NoError(t, s2.Load())
	assert.Equal(t, "cactus-league", s2.Ledger().League.ID)
	assert.Equal(t, "cactus-league-2026", s2.Ledger().Current.SeasonID)
}

func TestLoadToleratesMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, s.Load())
	assert.Nil(t, s.Ledger().League)
}
