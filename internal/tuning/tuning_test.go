package tuning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFallsBackToDefault(t *testing.T) {
	r := New()
	assert.Equal(t, 1.00, r.Get("zone_swing_scale", 9.9))
}

func TestGetUnknownKeyUsesCallerFallback(t *testing.T) {
	r := New()
	assert.Equal(t, 4.2, r.Get("not_a_real_key", 4.2))
}

func TestSetOverrideDropsUnknownKey(t *testing.T) {
	r := New()
	r.SetOverride("not_a_real_key", 99)
	assert.Equal(t, 0.0, r.Get("not_a_real_key", 0.0))
}

func TestSetOverrideAppliesKnownKey(t *testing.T) {
	r := New()
	r.SetOverride("zone_swing_scale", 2.5)
	assert.Equal(t, 2.5, r.Get("zone_swing_scale", 0))
}

func TestLoadJSONMergesAndDropsUnknown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"zone_swing_scale": 1.5,
		"chase_scale": "not-a-number",
		"totally_unknown_key": 42
	}`), 0o644))

	r := New()
	require.NoError(t, r.LoadJSON(path))

	assert.Equal(t, 1.5, r.Get("zone_swing_scale", 0))
	// non-numeric value ignored, default retained
	assert.Equal(t, 1.00, r.Get("chase_scale", 0))
	// unknown key never surfaces
	assert.Equal(t, 0.0, r.Get("totally_unknown_key", 0.0))
}

func TestLoadJSONMissingFileRecoversToDefaults(t *testing.T) {
	r := New()
	err := r.LoadJSON("/nonexistent/path/tuning.json")
	require.NoError(t, err)
	assert.Equal(t, 1.00, r.Get("zone_swing_scale", 0))
}

func TestLoadJSONCorruptRecoversToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	r := New()
	require.NoError(t, r.LoadJSON(path))
	assert.Equal(t, 1.00, r.Get("zone_swing_scale", 0))
}

func TestCloneIsIndependent(t *testing.T) {
	r := New()
	r.SetOverride("zone_swing_scale", 3.0)
	clone := r.Clone()
	clone.SetOverride("zone_swing_scale", 9.0)

	assert.Equal(t, 3.0, r.Get("zone_swing_scale", 0))
	assert.Equal(t, 9.0, clone.Get("zone_swing_scale", 0))
}
