package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepertoireBestIgnoresZeroQuality(t *testing.T) {
	r := Repertoire{"fb": 70, "cb": 0, "sl": 65}
	pt, q := r.Best()
	assert.Equal(t, "fb", pt)
	assert.Equal(t, 70, q)
}

func TestRepertoireAvailableExcludesZero(t *testing.T) {
	r := Repertoire{"fb": 70, "cb": 0}
	avail := r.Available()
	_, ok := avail["cb"]
	assert.False(t, ok)
	assert.Len(t, avail, 1)
}

func TestBatterEligibleAt(t *testing.T) {
	b := &Batter{PrimaryPosition: PosSecond, OtherPositions: []Position{PosShortstop}}
	assert.True(t, b.EligibleAt(PosSecond))
	assert.True(t, b.EligibleAt(PosShortstop))
	assert.False(t, b.EligibleAt(PosCatcher))
}

func TestPitcherBaseRoleStripsRotationSuffix(t *testing.T) {
	p := &Pitcher{Role: "SP3"}
	assert.Equal(t, RoleStarter, p.BaseRole())

	p2 := &Pitcher{Role: RoleCloser}
	assert.Equal(t, RoleCloser, p2.BaseRole())
}

func TestParkWallDistanceAtLandmarks(t *testing.T) {
	p := DefaultPark()
	assert.InDelta(t, p.LeftLineFt, p.WallDistanceAt(0), 0.001)
	assert.InDelta(t, p.CenterFt, p.WallDistanceAt(0.7853981633974483), 1.0)
	assert.InDelta(t, p.RightLineFt, p.WallDistanceAt(1.5707963267948966), 0.001)
}

func TestParkAltitudeScaleCapsAt20Percent(t *testing.T) {
	p := DefaultPark()
	p.AltitudeFt = 20000
	assert.InDelta(t, 1.20, p.AltitudeScale(), 0.0001)

	p.AltitudeFt = 500
	assert.Equal(t, 1.0, p.AltitudeScale())
}
