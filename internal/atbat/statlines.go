// Package atbat implements the plate appearance engine
// and the stat-line types it accumulates into.
package atbat

// BatterLine is the per-batter accumulated stat line.
type BatterLine struct {
	PA, AB int
	H      int
	Single, Double, Triple, HR int
	BB, IBB, HBP int
	SOLooking, SOSwinging int
	SH, SF int
	ROE, FC, GIDP int
	SB, CS int
	PO, POCS int
	PitchesSeen int
	LOB int
	GB, LD, FB int
	CI int
	LeadCounter int
}

func (b *BatterLine) SO() int { return b.SOLooking + b.SOSwinging }

// PitcherLine is the per-pitcher accumulated stat line.
type PitcherLine struct {
	G, GS int
	W, L, GF, SV, SVO, HLD, BS int
	IR, IRS int
	BF     int
	Outs   int
	Hits   int
	Runs   int
	ER     int
	Walks  int
	IBB    int
	SOLooking, SOSwinging int
	HRs    int
	Single, Double, Triple int
	HBP, WP, BK, PK, POCS int
	Pitches int
	Balls, Strikes int
	FirstPitchStrikes int
	ZonePitches, OZonePitches int
	ZoneSwings, OZoneSwings int
	ZoneContacts, OZoneContacts int
	GBInduced, LDInduced, FBInduced int
	ConsecutiveHits int
	InningRuns, InningWalks, InningBaserunners int
	CurrentInning int
}

func (p *PitcherLine) IP() float64 { return float64(p.Outs) / 3.0 }
func (p *PitcherLine) SO() int     { return p.SOLooking + p.SOSwinging }

// FieldingLine is the per-fielder accumulated stat line.
type FieldingLine struct {
	G, GS int
	PO, A, E int
	DP, TP int
	PK, PB, CI int
	CS, SBA int
}
