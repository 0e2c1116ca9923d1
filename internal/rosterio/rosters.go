package rosterio

import (
	"github.com/baseball-sim/core/internal/ratings"
)

// RosterEntry is one row of data/rosters/<TEAM>.csv: player_id,status.
type RosterEntry struct {
	PlayerID string
	Status   string // ACT/AAA/LOW/DL/IR
}

// LoadTeamRoster reads data/rosters/<TEAM>.csv.
func LoadTeamRoster(path string) ([]RosterEntry, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	out := make([]RosterEntry, 0, len(rows))
	for _, row := range rows {
		id := row["player_id"]
		if id == "" {
			continue
		}
		status := row["status"]
		if status == "" {
			status = "ACT"
		}
		out = append(out, RosterEntry{PlayerID: id, Status: status})
	}
	return out, nil
}

// PitchingRoleEntry is one row of data/rosters/<TEAM>_pitching.csv:
// player_id,role.
type PitchingRoleEntry struct {
	PlayerID string
	Role     ratings.Role
}

// LoadPitchingRoles reads data/rosters/<TEAM>_pitching.csv.
func LoadPitchingRoles(path string) ([]PitchingRoleEntry, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	out := make([]PitchingRoleEntry, 0, len(rows))
	for _, row := range rows {
		id := row["player_id"]
		if id == "" {
			continue
		}
		out = append(out, PitchingRoleEntry{PlayerID: id, Role: ratings.Role(row["role"])})
	}
	return out, nil
}

// LineupSlot is one row of data/lineups/<TEAM>_vs_{lhp|rhp}.csv:
// order,player_id,position.
type LineupSlot struct {
	Order    int
	PlayerID string
	Position ratings.Position
}

// LoadLineup reads a lineup CSV, tolerating out-of-order rows but
// requiring a complete 1..9 order set; a short or duplicate-order file
// is still returned as parsed (the caller validates the "exactly 9
// rows with unique order 1..9" invariant).
func LoadLineup(path string) ([]LineupSlot, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	out := make([]LineupSlot, 0, len(rows))
	for _, row := range rows {
		id := row["player_id"]
		if id == "" {
			continue
		}
		out = append(out, LineupSlot{
			Order:    getInt(row, "order", 0),
			PlayerID: id,
			Position: ratings.Position(row["position"]),
		})
	}
	return out, nil
}
