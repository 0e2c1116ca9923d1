package ratings

// Park describes stadium geometry and scalar run-environment factors
// as a single descriptor keyed the way the batted-ball resolver
// consumes it.
type Park struct {
	Name string

	LeftLineFt   float64
	CenterFt     float64
	RightLineFt  float64

	// Thresholds as a fraction of the wall distance at the relevant
	// spray angle.
	TripleFraction float64
	DoubleFraction float64

	ParkFactor            float64 // 1.0 = neutral
	FoulTerritoryMultiplier float64
	AltitudeFt            float64
}

// DefaultPark returns a neutral, sea-level park baseline.
func DefaultPark() Park {
	return Park{
		Name:                    "Neutral Field",
		LeftLineFt:              330,
		CenterFt:                400,
		RightLineFt:             330,
		TripleFraction:          0.92,
		DoubleFraction:          0.72,
		ParkFactor:              1.0,
		FoulTerritoryMultiplier: 1.0,
		AltitudeFt:              0,
	}
}

// WallDistanceAt returns the wall distance (feet) at a field angle in
// [0, π/2] radians measured from the left-field line, linearly
// interpolating across the three landmark distances.
func (p *Park) WallDistanceAt(angleRad float64) float64 {
	const halfPi = 1.5707963267948966
	if angleRad < 0 {
		angleRad = 0
	}
	if angleRad > halfPi {
		angleRad = halfPi
	}
	mid := halfPi / 2
	if angleRad <= mid {
		frac := angleRad / mid
		return p.LeftLineFt + frac*(p.CenterFt-p.LeftLineFt)
	}
	frac := (angleRad - mid) / mid
	return p.CenterFt + frac*(p.RightLineFt-p.CenterFt)
}

// AltitudeScale returns the home-run carry boost from altitude, ~2%
// per 1000ft above 1000ft, capped at 20%.
func (p *Park) AltitudeScale() float64 {
	if p.AltitudeFt <= 1000 {
		return 1.0
	}
	boost := (p.AltitudeFt - 1000) / 1000.0 * 0.02
	if boost > 0.20 {
		boost = 0.20
	}
	return 1.0 + boost
}
