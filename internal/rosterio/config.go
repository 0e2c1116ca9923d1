package rosterio

import (
	"encoding/json"
	"os"

	"github.com/baseball-sim/core/internal/injury"
)

// PlayoffsConfig mirrors data/playoffs_config.json.
type PlayoffsConfig struct {
	NumPlayoffTeamsPerLeague int              `json:"num_playoff_teams_per_league"`
	SeriesLengths            map[string]int   `json:"series_lengths"`
	HomeAwayPatterns         map[string][]bool `json:"home_away_patterns"`
	DivisionWinnersPriority  []string         `json:"division_winners_priority"`
	PlayoffSlotsByLeagueSize map[string]int   `json:"playoff_slots_by_league_size"`
	DivisionToLeague         map[string]string `json:"division_to_league"`
}

// LoadPlayoffsConfig reads data/playoffs_config.json, tolerating a
// missing file by returning an empty config the caller fills in with
// playoffs.DefaultSeriesLengths and friends.
func LoadPlayoffsConfig(path string) (*PlayoffsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &PlayoffsConfig{}, nil
		}
		return nil, err
	}
	var cfg PlayoffsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return &PlayoffsConfig{}, nil
	}
	return &cfg, nil
}

// rawTrigger/rawTemplate/rawCatalog mirror data/injury_catalog.json's
// wire shape with string severity keys, since injury.Severity is an
// int enum that does not unmarshal directly from "minor"/"moderate"/
// "major" JSON object keys.
type rawModifier struct {
	Metric string  `json:"metric"`
	Factor float64 `json:"factor"`
	Invert bool    `json:"invert"`
}

type rawTrigger struct {
	BaseProb  float64       `json:"base_prob"`
	Modifiers []rawModifier `json:"modifiers"`
}

type rawSeverityProfile struct {
	MinDays           int            `json:"min_days"`
	MaxDays           int            `json:"max_days"`
	DLTier            string         `json:"dl_tier"`
	AttributesPenalty map[string]int `json:"attributes_penalty"`
	Description       string         `json:"description"`
}

type rawTemplate struct {
	Name             string                        `json:"name"`
	EligibleTriggers []string                      `json:"eligible_triggers"`
	PitcherOnly      bool                          `json:"pitcher_only"`
	HitterOnly       bool                          `json:"hitter_only"`
	Profiles         map[string]rawSeverityProfile `json:"profiles"`
}

type rawCatalog struct {
	Triggers  map[string]rawTrigger  `json:"triggers"`
	Templates []rawTemplate          `json:"templates"`
	Weights   map[string]float64     `json:"severity_weights"`
}

func severityFromString(s string) (injury.Severity, bool) {
	switch s {
	case "minor":
		return injury.Minor, true
	case "moderate":
		return injury.Moderate, true
	case "major":
		return injury.Major, true
	default:
		return injury.Minor, false
	}
}

// LoadInjuryCatalog reads data/injury_catalog.json, falling back to
// injury.DefaultCatalog() when the file is missing or malformed
//.
func LoadInjuryCatalog(path string) *injury.Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		return injury.DefaultCatalog()
	}
	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return injury.DefaultCatalog()
	}

	cat := &injury.Catalog{
		Triggers: make(map[string]injury.Trigger, len(raw.Triggers)),
		Weights:  make(map[injury.Severity]float64, len(raw.Weights)),
	}
	for name, rt := range raw.Triggers {
		mods := make([]injury.Modifier, 0, len(rt.Modifiers))
		for _, m := range rt.Modifiers {
			mods = append(mods, injury.Modifier{Metric: m.Metric, Factor: m.Factor, Invert: m.Invert})
		}
		cat.Triggers[name] = injury.Trigger{Name: name, BaseProb: rt.BaseProb, Modifiers: mods}
	}
	for sevName, w := range raw.Weights {
		if sev, ok := severityFromString(sevName); ok {
			cat.Weights[sev] = w
		}
	}
	for _, rtpl := range raw.Templates {
		tpl := injury.Template{
			Name:             rtpl.Name,
			EligibleTriggers: rtpl.EligibleTriggers,
			PitcherOnly:      rtpl.PitcherOnly,
			HitterOnly:       rtpl.HitterOnly,
			Profiles:         make(map[injury.Severity]injury.SeverityProfile, len(rtpl.Profiles)),
		}
		for sevName, p := range rtpl.Profiles {
			sev, ok := severityFromString(sevName)
			if !ok {
				continue
			}
			tpl.Profiles[sev] = injury.SeverityProfile{
				MinDays:           p.MinDays,
				MaxDays:           p.MaxDays,
				DLTier:            p.DLTier,
				AttributesPenalty: p.AttributesPenalty,
				Description:       p.Description,
			}
		}
		cat.Templates = append(cat.Templates, tpl)
	}
	if len(cat.Triggers) == 0 || len(cat.Templates) == 0 {
		return injury.DefaultCatalog()
	}
	return cat
}
