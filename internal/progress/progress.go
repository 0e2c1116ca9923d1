// Package progress implements the tiny progress-flags document
//: draft-completed years and a playoffs-done flag,
// written with retry-on-conflict atomic replace.
package progress

import (
	"os"
	"time"

	"github.com/baseball-sim/core/internal/fsatomic"
)

// Flags is the persisted document shape.
type Flags struct {
	DraftCompletedYears []int `json:"draft_completed_years"`
	PlayoffsDone        bool  `json:"playoffs_done"`
}

func (f *Flags) hasYear(year int) bool {
	for _, y := range f.DraftCompletedYears {
		if y == year {
			return true
		}
	}
	return false
}

const (
	retryAttempts = 5
	retryBase     = 10 * time.Millisecond
)

func readOrEmpty(path string) (Flags, error) {
	var f Flags
	err := fsatomic.ReadJSON(path, &f)
	if err != nil && os.IsNotExist(err) {
		return Flags{}, nil
	}
	return f, err
}

// MarkDraftCompleted guarantees year is a member of
// draft_completed_years, read-modify-write with retry.
func MarkDraftCompleted(path string, year int) error {
	return fsatomic.RetryWrite(retryAttempts, retryBase, func() error {
		f, err := readOrEmpty(path)
		if err != nil {
			return err
		}
		if f.hasYear(year) {
			return nil
		}
		f.DraftCompletedYears = append(f.DraftCompletedYears, year)
		return fsatomic.WriteJSON(path, &f)
	})
}

// MarkPlayoffsCompleted guarantees playoffs_done is true, read-modify
// -write with retry.
func MarkPlayoffsCompleted(path string) error {
	return fsatomic.RetryWrite(retryAttempts, retryBase, func() error {
		f, err := readOrEmpty(path)
		if err != nil {
			return err
		}
		if f.PlayoffsDone {
			return nil
		}
		f.PlayoffsDone = true
		return fsatomic.WriteJSON(path, &f)
	})
}

// Load reads the current flags, tolerating a not-yet-created file.
func Load(path string) (Flags, error) {
	return readOrEmpty(path)
}
