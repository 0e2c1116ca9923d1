package rosterio

import (
	"github.com/baseball-sim/core/internal/ratings"
)

// LoadParks reads every row of a combined park CSV into a map keyed by team
// (parks/ParkConfig.csv, parks/ParkFactors.csv, or parks/Parks.csv all
// share this column set in practice; callers may point LoadParks at
// whichever file their data set ships). Missing columns fall back to
// DefaultPark()'s neutral values.
func LoadParks(path string) (map[string]*ratings.Park, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*ratings.Park, len(rows))
	def := ratings.DefaultPark()
	for _, row := range rows {
		team := row["team"]
		if team == "" {
			continue
		}
		p := &ratings.Park{
			Name:                    row["name"],
			LeftLineFt:              getFloat(row, "left_line_ft", def.LeftLineFt),
			CenterFt:                getFloat(row, "center_ft", def.CenterFt),
			RightLineFt:             getFloat(row, "right_line_ft", def.RightLineFt),
			TripleFraction:          getFloat(row, "triple_fraction", def.TripleFraction),
			DoubleFraction:          getFloat(row, "double_fraction", def.DoubleFraction),
			ParkFactor:              getFloat(row, "park_factor", def.ParkFactor),
			FoulTerritoryMultiplier: getFloat(row, "foul_territory_multiplier", def.FoulTerritoryMultiplier),
			AltitudeFt:              getFloat(row, "altitude_ft", def.AltitudeFt),
		}
		if p.Name == "" {
			p.Name = team
		}
		out[team] = p
	}
	return out, nil
}
