package rosterio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/baseball-sim/core/internal/fsatomic"
)

// ScheduleRow is one row of data/schedule.csv: date,home,away,result,
// played,boxscore.
type ScheduleRow struct {
	Date      string
	Home      string
	Away      string
	Result    string // "<home>-<away>" once played
	Played    bool
	BoxScore  string
}

var scheduleHeader = []string{"date", "home", "away", "result", "played", "boxscore"}

// LoadSchedule reads data/schedule.csv.
func LoadSchedule(path string) ([]ScheduleRow, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	out := make([]ScheduleRow, 0, len(rows))
	for _, row := range rows {
		if row["home"] == "" || row["away"] == "" {
			continue
		}
		out = append(out, ScheduleRow{
			Date:     row["date"],
			Home:     row["home"],
			Away:     row["away"],
			Result:   row["result"],
			Played:   getBool(row, "played", false),
			BoxScore: row["boxscore"],
		})
	}
	return out, nil
}

// SaveSchedule writes rows back to path as a full CSV rewrite (the
// schedule file is small enough that the atomic-temp-file idiom from
// fsatomic.WriteFile suffices without per-row patching).
func SaveSchedule(path string, rows []ScheduleRow) error {
	tmp, err := os.CreateTemp("", "schedule-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(scheduleHeader); err != nil {
		tmp.Close()
		return err
	}
	for _, r := range rows {
		played := "0"
		if r.Played {
			played = "1"
		}
		if err := w.Write([]string{r.Date, r.Home, r.Away, r.Result, played, r.BoxScore}); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	data, err := os.ReadFile(tmp.Name())
	tmp.Close()
	if err != nil {
		return err
	}
	return fsatomic.WriteFile(path, data)
}

// FillResult back-fills row i with the outcome of a completed game:
// result becomes "<home>-<away>", played becomes true, and boxscore is
// set to the given path.
func FillResult(rows []ScheduleRow, i int, homeScore, awayScore int, boxScorePath string) {
	if i < 0 || i >= len(rows) {
		return
	}
	rows[i].Result = fmt.Sprintf("%d-%d", homeScore, awayScore)
	rows[i].Played = true
	rows[i].BoxScore = boxScorePath
}
