// Package rosterio implements the reader side of the external input
// table: players.csv, per-team roster/pitching-role/lineup CSVs, park
// CSVs, schedule.csv, and the playoffs/injury-catalog JSON documents.
// Parsing is tolerant of missing files and malformed rows: a missing
// file yields an empty result and a malformed row is logged and
// skipped rather than aborting the load.
package rosterio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/baseball-sim/core/internal/ratings"
	"github.com/baseball-sim/core/internal/simerrors"
)

func getFloat(row map[string]string, key string, def float64) float64 {
	v, ok := row[key]
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getInt(row map[string]string, key string, def int) int {
	v, ok := row[key]
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getBool(row map[string]string, key string, def bool) bool {
	v, ok := row[key]
	if !ok || v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "t", "yes":
		return true
	case "0", "false", "f", "no":
		return false
	default:
		return def
	}
}

// readCSVRows opens path and returns each data row as a header-keyed
// map, tolerating a missing file by returning an empty result.
func readCSVRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, simerrors.RowError(simerrors.KindInsufficientInputs, path, 0, err)
	}

	var rows []map[string]string
	rowNum := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithError(err).WithField("path", path).WithField("row", rowNum).Warn("rosterio: skipping malformed row")
			rowNum++
			continue
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
		rowNum++
	}
	return rows, nil
}

// LoadPlayers parses data/players.csv into Batter and Pitcher ratings,
// keyed by player_id. A row with is_pitcher truthy becomes (also) a
// Pitcher; every row becomes a Batter so position players who
// occasionally pitch and pitchers who occasionally hit both resolve.
func LoadPlayers(path string) (map[string]*ratings.Batter, map[string]*ratings.Pitcher, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, nil, err
	}

	batters := make(map[string]*ratings.Batter)
	pitchers := make(map[string]*ratings.Pitcher)

	for _, row := range rows {
		id := row["player_id"]
		if id == "" {
			continue
		}

		bats := handFrom(row["bats"], ratings.Right)
		throws := handFrom(row["throws"], ratings.Right)

		b := &ratings.Batter{
			ID:              id,
			Bats:            bats,
			Contact:         getInt(row, "ch", 50),
			Power:           getInt(row, "ph", 50),
			Speed:           getInt(row, "sp", 50),
			GroundBall:      getInt(row, "gf", 50),
			Pull:            getInt(row, "pl", 50),
			VsLeft:          getInt(row, "vl", 50),
			Fielding:        getInt(row, "fa", 50),
			Arm:             getInt(row, "arm", 50),
			Eye:             getInt(row, "eye", 50),
			Durability:      getInt(row, "durability", 50),
			HeightIn:        getInt(row, "height", 72),
			ZoneBottom:      getFloat(row, "zone_bottom", 1.5),
			ZoneTop:         getFloat(row, "zone_top", 3.5),
			PrimaryPosition: ratings.Position(row["primary_position"]),
		}
		if extra := row["other_positions"]; extra != "" {
			sep := ","
			if strings.Contains(extra, "|") {
				sep = "|"
			}
			for _, p := range strings.Split(extra, sep) {
				p = strings.TrimSpace(p)
				if p != "" {
					b.OtherPositions = append(b.OtherPositions, ratings.Position(p))
				}
			}
		}
		batters[id] = b

		if getBool(row, "is_pitcher", false) {
			repertoire := ratings.Repertoire{}
			for _, pitch := range []string{"fb", "sl", "si", "cb", "cu", "scb", "kn"} {
				if v := getInt(row, pitch, 0); v > 0 {
					repertoire[pitch] = v
				}
			}
			pitchers[id] = &ratings.Pitcher{
				ID:          id,
				Throws:      throws,
				Control:     getInt(row, "control", 50),
				Movement:    getInt(row, "movement", 50),
				ArmStrength: getInt(row, "arm", 50),
				Endurance:   getInt(row, "endurance", 50),
				Durability:  getInt(row, "durability", 50),
				HoldRunner:  getInt(row, "hold_runner", 50),
				VsLeft:      getInt(row, "vl", 50),
				Repertoire:  repertoire,
			}
		}
	}
	return batters, pitchers, nil
}

func handFrom(s string, def ratings.Hand) ratings.Hand {
	switch strings.ToUpper(s) {
	case "L":
		return ratings.Left
	case "R":
		return ratings.Right
	case "S", "B":
		return ratings.Switch
	default:
		return def
	}
}
