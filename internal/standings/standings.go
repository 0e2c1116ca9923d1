// Package standings implements the standings repository: an in-memory team_id -> record map with idempotent updates
// and atomic, cached file persistence.
package standings

import (
	"github.com/baseball-sim/core/internal/fsatomic"
)

// Streak is the current W/L streak.
type Streak struct {
	Result string `json:"result"` // "W", "L", or ""
	Length int    `json:"length"`
}

// Record is one team's standings line.
type Record struct {
	Wins, Losses int

	RunsFor, RunsAgainst int

	OneRunWins, OneRunLosses     int
	ExtraInningWins, ExtraInningLosses int

	HomeWins, HomeLosses int
	RoadWins, RoadLosses int

	VsRHPWins, VsRHPLosses int
	VsLHPWins, VsLHPLosses int

	DivisionWins, DivisionLosses       int
	NonDivisionWins, NonDivisionLosses int

	Last10 []string // bounded to 10, "W"/"L"
	Streak Streak
}

func (r *Record) pushLast10(won bool) {
	result := "L"
	if won {
		result = "W"
	}
	r.Last10 = append(r.Last10, result)
	if len(r.Last10) > 10 {
		r.Last10 = r.Last10[len(r.Last10)-10:]
	}
}

func (r *Record) updateStreak(won bool) {
	result := "L"
	if won {
		result = "W"
	}
	if r.Streak.Result == result {
		r.Streak.Length++
	} else {
		r.Streak.Result = result
		r.Streak.Length = 1
	}
}

// GameResult is the outcome fed into UpdateRecord.
type GameResult struct {
	Won              bool
	RunsFor          int
	RunsAgainst      int
	Home             bool
	OpponentStarterHand string // "L" or "R"
	DivisionGame     bool
	OneRun           bool
	ExtraInnings     bool
}

// Repository holds every team's Record, keyed by team_id, with a
// read-cache invalidated on mutation.
type Repository struct {
	records map[string]*Record
	cache   *fsatomic.Cache
	path    string
}

// New returns an empty repository that will persist to path.
func New(path string) *Repository {
	return &Repository{
		records: make(map[string]*Record),
		cache:   fsatomic.NewCache(),
		path:    path,
	}
}

func (repo *Repository) recordFor(teamID string) *Record {
	r, ok := repo.records[teamID]
	if !ok {
		r = &Record{}
		repo.records[teamID] = r
	}
	return r
}

// UpdateRecord idempotently advances all counters for one completed
// game. Idempotent in the sense that each call
// represents exactly one game's worth of state change; callers must
// not call it twice for the same game.
func (repo *Repository) UpdateRecord(teamID string, gr GameResult) {
	r := repo.recordFor(teamID)

	r.RunsFor += gr.RunsFor
	r.RunsAgainst += gr.RunsAgainst

	if gr.Won {
		r.Wins++
	} else {
		r.Losses++
	}

	if gr.Home {
		if gr.Won {
			r.HomeWins++
		} else {
			r.HomeLosses++
		}
	} else {
		if gr.Won {
			r.RoadWins++
		} else {
			r.RoadLosses++
		}
	}

	if gr.OpponentStarterHand == "L" {
		if gr.Won {
			r.VsLHPWins++
		} else {
			r.VsLHPLosses++
		}
	} else if gr.OpponentStarterHand == "R" {
		if gr.Won {
			r.VsRHPWins++
		} else {
			r.VsRHPLosses++
		}
	}

	if gr.DivisionGame {
		if gr.Won {
			r.DivisionWins++
		} else {
			r.DivisionLosses++
		}
	} else {
		if gr.Won {
			r.NonDivisionWins++
		} else {
			r.NonDivisionLosses++
		}
	}

	if gr.OneRun {
		if gr.Won {
			r.OneRunWins++
		} else {
			r.OneRunLosses++
		}
	}
	if gr.ExtraInnings {
		if gr.Won {
			r.ExtraInningWins++
		} else {
			r.ExtraInningLosses++
		}
	}

	r.pushLast10(gr.Won)
	r.updateStreak(gr.Won)

	repo.cache.Invalidate(repo.path)
}

// RunDiff is wins-losses-agnostic run differential, used by playoff seeding.
func (r *Record) RunDiff() int { return r.RunsFor - r.RunsAgainst }

// All returns the live record map (not a copy); callers must not
// mutate outside UpdateRecord.
func (repo *Repository) All() map[string]*Record { return repo.records }

// Save writes the repository atomically via a temp-file-and-replace.
func (repo *Repository) Save() error {
	return fsatomic.WriteJSON(repo.path, repo.records)
}

// Load returns cached data until Invalidate; on first call (or after
// invalidation) it reads and parses the backing file.
func (repo *Repository) Load() error {
	if cached, ok := repo.cache.Get(repo.path); ok {
		repo.records = cached.(map[string]*Record)
		return nil
	}
	var loaded map[string]*Record
	if err := fsatomic.ReadJSON(repo.path, &loaded); err != nil {
		return err
	}
	repo.records = loaded
	repo.cache.Set(repo.path, loaded)
	return nil
}

// Invalidate drops the read cache, forcing the next Load to re-read
// the file.
func (repo *Repository) Invalidate() {
	repo.cache.Invalidate(repo.path)
}
