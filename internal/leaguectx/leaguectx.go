// Package leaguectx implements the season-context JSON ledger
//: league identity, the current season descriptor, and
// an archive of past seasons.
package leaguectx

import (
	"fmt"
	"os"
	"strings"

	"github.com/baseball-sim/core/internal/fsatomic"
)

// League identifies the organization the ledger belongs to.
type League struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"` // RFC3339, caller-supplied
}

// Current describes the in-progress season.
type Current struct {
	SeasonID         string                 `json:"season_id"` // "<league>-<year>"
	LeagueYear       int                    `json:"league_year"`
	Sequence         int                    `json:"sequence"`
	StartedOn        string                 `json:"started_on"`
	Metadata         map[string]interface{} `json:"metadata"`
	RolloverComplete bool                   `json:"rollover_complete"`
}

// Archived is one season's terminal record.
type Archived struct {
	Current
	EndedOn   string                 `json:"ended_on"`
	Artifacts map[string]interface{} `json:"artifacts"`
}

// Ledger is the full persisted document.
type Ledger struct {
	League  *League    `json:"league"`
	Current *Current   `json:"current"`
	Seasons []Archived `json:"seasons"`
}

// Store wraps a Ledger with atomic file persistence.
type Store struct {
	path   string
	ledger *Ledger
}

// New returns a Store backed by path, with an empty in-memory ledger
// until Load is called.
func New(path string) *Store {
	return &Store{path: path, ledger: &Ledger{}}
}

// Load reads the ledger from disk, tolerating a not-yet-created file
// by leaving an empty ledger in place.
func (s *Store) Load() error {
	var l Ledger
	if err := fsatomic.ReadJSON(s.path, &l); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	s.ledger = &l
	return nil
}

// Save writes the ledger atomically.
func (s *Store) Save() error {
	return fsatomic.WriteJSON(s.path, s.ledger)
}

func slugify(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// EnsureLeague creates the league descriptor if absent, otherwise
// returns the existing one unchanged.
func (s *Store) EnsureLeague(name, createdAt string) *League {
	if s.ledger.League != nil {
		return s.ledger.League
	}
	s.ledger.League = &League{ID: slugify(name), Name: name, CreatedAt: createdAt}
	return s.ledger.League
}

// EnsureCurrentSeason creates the current-season descriptor if absent
//. Sequence starts at 1 for a
// league's first season and increments thereafter based on the
// archive length.
func (s *Store) EnsureCurrentSeason(leagueYear int, startedOn string) *Current {
	if s.ledger.Current != nil {
		return s.ledger.Current
	}
	if s.ledger.League == nil {
		panic("leaguectx: EnsureCurrentSeason called before EnsureLeague")
	}
	s.ledger.Current = &Current{
		SeasonID:   fmt.Sprintf("%s-%d", s.ledger.League.ID, leagueYear),
		LeagueYear: leagueYear,
		Sequence:   len(s.ledger.Seasons) + 1,
		StartedOn:  startedOn,
		Metadata:   map[string]interface{}{},
	}
	return s.ledger.Current
}

// MarkSeasonStarted flips rollover_complete for the current season.
func (s *Store) MarkSeasonStarted() {
	if s.ledger.Current != nil {
		s.ledger.Current.RolloverComplete = true
	}
}

// ArchiveCurrentSeason appends the current descriptor to seasons and
// creates a fresh current for nextLeagueYear.
func (s *Store) ArchiveCurrentSeason(artifacts map[string]interface{}, endedOn string, nextLeagueYear int) {
	if s.ledger.Current == nil {
		return
	}
	s.ledger.Seasons = append(s.ledger.Seasons, Archived{
		Current:   *s.ledger.Current,
		EndedOn:   endedOn,
		Artifacts: artifacts,
	})
	s.ledger.Current = nil
	s.EnsureCurrentSeason(nextLeagueYear, endedOn)
}

// Ledger returns the live ledger for read access.
func (s *Store) Ledger() *Ledger { return s.ledger }
