// Package injury implements the injury resolver:
// trigger -> probability -> severity -> outcome, driven by a catalog
// of triggers and injury templates.
package injury

import (
	"github.com/baseball-sim/core/internal/simctx"
)

// Severity is the injury-severity sum type.
type Severity int

const (
	Minor Severity = iota
	Moderate
	Major
)

func (s Severity) String() string {
	switch s {
	case Moderate:
		return "moderate"
	case Major:
		return "major"
	default:
		return "minor"
	}
}

// Modifier is one multiplicative factor applied to a trigger's base
// probability.
type Modifier struct {
	Metric string // e.g. "pitch_velocity", "fatigue", "durability"
	Factor float64
	Invert bool // true for durability (inverse relationship)
}

// Trigger is a catalog entry mapping an event kind to a base
// probability and its modifiers.
type Trigger struct {
	Name        string
	BaseProb    float64
	Modifiers   []Modifier
}

// SeverityProfile is one severity tier within an injury template
//.
type SeverityProfile struct {
	MinDays          int
	MaxDays          int
	DLTier           string
	AttributesPenalty map[string]int
	Description      string
}

// Template is an injury catalog entry.
type Template struct {
	Name             string
	EligibleTriggers []string
	PitcherOnly      bool
	HitterOnly       bool
	Profiles         map[Severity]SeverityProfile
}

// Catalog is the full trigger + template set loaded from
// data/injury_catalog.json.
type Catalog struct {
	Triggers  map[string]Trigger
	Templates []Template
	Weights   map[Severity]float64
}

// DefaultCatalog bootstraps a minimal catalog when the input file is
// missing or corrupt.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Triggers: map[string]Trigger{
			"pitch": {
				Name:     "pitch",
				BaseProb: 0.0004,
				Modifiers: []Modifier{
					{Metric: "pitch_velocity", Factor: 0.01},
					{Metric: "fatigue", Factor: 0.02},
					{Metric: "durability", Factor: 0.01, Invert: true},
				},
			},
			"swing": {
				Name:     "swing",
				BaseProb: 0.0002,
				Modifiers: []Modifier{
					{Metric: "fatigue", Factor: 0.015},
					{Metric: "durability", Factor: 0.01, Invert: true},
				},
			},
			"collision": {
				Name:     "collision",
				BaseProb: 0.0010,
				Modifiers: []Modifier{
					{Metric: "durability", Factor: 0.01, Invert: true},
				},
			},
			"sprint": {
				Name:     "sprint",
				BaseProb: 0.0006,
				Modifiers: []Modifier{
					{Metric: "fatigue", Factor: 0.015},
					{Metric: "durability", Factor: 0.01, Invert: true},
				},
			},
		},
		Templates: []Template{
			{
				Name:             "arm_strain",
				EligibleTriggers: []string{"pitch"},
				PitcherOnly:      true,
				Profiles: map[Severity]SeverityProfile{
					Minor:    {MinDays: 7, MaxDays: 15, DLTier: "dl10"},
					Moderate: {MinDays: 15, MaxDays: 45, DLTier: "dl15"},
					Major:    {MinDays: 45, MaxDays: 120, DLTier: "dl45"},
				},
			},
			{
				Name:             "oblique_strain",
				EligibleTriggers: []string{"swing", "sprint"},
				HitterOnly:       true,
				Profiles: map[Severity]SeverityProfile{
					Minor:    {MinDays: 7, MaxDays: 15, DLTier: "dl10"},
					Moderate: {MinDays: 15, MaxDays: 30, DLTier: "dl15"},
					Major:    {MinDays: 30, MaxDays: 60, DLTier: "dl45"},
				},
			},
			{
				Name:             "hamstring_strain",
				EligibleTriggers: []string{"sprint", "collision"},
				Profiles: map[Severity]SeverityProfile{
					Minor:    {MinDays: 7, MaxDays: 10, DLTier: "dl10"},
					Moderate: {MinDays: 10, MaxDays: 30, DLTier: "dl15"},
					Major:    {MinDays: 30, MaxDays: 60, DLTier: "dl45"},
				},
			},
		},
		Weights: map[Severity]float64{Minor: 0.70, Moderate: 0.25, Major: 0.05},
	}
}

// Metrics bundles the per-player metrics a trigger's modifiers read.
type Metrics struct {
	PitchVelocity float64
	Fatigue       float64
	Durability    float64
}

// Outcome is a resolved injury event.
type Outcome struct {
	Template string
	Severity Severity
	Days     int
	DLTier   string
}

// MaybeCreateInjury implements the
// `maybe_create_injury(trigger, player, context)` chain. force skips
// the Bernoulli gate (used by deterministic tests/scenarios).
func MaybeCreateInjury(ctx *simctx.Context, catalog *Catalog, triggerName string, isPitcher bool, metrics Metrics, force bool) (*Outcome, bool) {
	trig, ok := catalog.Triggers[triggerName]
	if !ok {
		return nil, false
	}

	prob := trig.BaseProb
	for _, m := range trig.Modifiers {
		var metric float64
		switch m.Metric {
		case "pitch_velocity":
			metric = metrics.PitchVelocity
		case "fatigue":
			metric = metrics.Fatigue
		case "durability":
			metric = metrics.Durability
		}
		if m.Invert {
			metric = -metric
		}
		prob *= 1 + m.Factor*metric
	}
	prob = simctx.Clamp(prob, 0, 1)

	if !force && !ctx.Bernoulli(prob) {
		return nil, false
	}

	sev := pickSeverity(ctx, catalog.Weights)

	var candidates []Template
	for _, tmpl := range catalog.Templates {
		if isPitcher && tmpl.HitterOnly {
			continue
		}
		if !isPitcher && tmpl.PitcherOnly {
			continue
		}
		if !eligible(tmpl.EligibleTriggers, triggerName) {
			continue
		}
		if _, ok := tmpl.Profiles[sev]; !ok {
			continue
		}
		candidates = append(candidates, tmpl)
	}
	if len(candidates) == 0 {
		return nil, false
	}

	idx := 0
	if len(candidates) > 1 {
		idx = ctx.RNG.Intn(len(candidates))
	}
	tmpl := candidates[idx]
	profile := tmpl.Profiles[sev]

	days := profile.MinDays
	if profile.MaxDays > profile.MinDays {
		days = profile.MinDays + ctx.RNG.Intn(profile.MaxDays-profile.MinDays+1)
	}

	return &Outcome{Template: tmpl.Name, Severity: sev, Days: days, DLTier: profile.DLTier}, true
}

func eligible(triggers []string, name string) bool {
	for _, t := range triggers {
		if t == name {
			return true
		}
	}
	return false
}

func pickSeverity(ctx *simctx.Context, weights map[Severity]float64) Severity {
	minorW := weights[Minor]
	moderateW := weights[Moderate]
	majorW := weights[Major]
	total := minorW + moderateW + majorW
	if total <= 0 {
		return Minor
	}
	roll := ctx.RNG.Float64() * total
	if roll < minorW {
		return Minor
	}
	if roll < minorW+moderateW {
		return Moderate
	}
	return Major
}
