package fsatomic

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestWriteJSONThenReadJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "data.json")

	in := sample{Name: "hi", N: 7}
	require.NoError(t, WriteJSON(path, in))

	var out sample
	require.NoError(t, ReadJSON(path, &out))
	assert.Equal(t, in, out)
}

func TestWriteJSONLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, WriteJSON(path, sample{Name: "a"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestWriteFileWithBackupWritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bracket.json")
	require.NoError(t, WriteFileWithBackup(path, []byte(`{"a":1}`)))

	_, err := os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".bak")
	require.NoError(t, err)
}

func TestRetryWriteSucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := RetryWrite(5, time.Microsecond, func() error {
		attempts++
		if attempts < 3 {
			return assertErr
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWriteGivesUpAfterAttempts(t *testing.T) {
	attempts := 0
	err := RetryWrite(3, time.Microsecond, func() error {
		attempts++
		return assertErr
	})
	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestLockExcludesConcurrentAcquire(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft_pool_2026")

	release, err := Lock(path, 5, time.Millisecond)
	require.NoError(t, err)

	_, err2 := Lock(path, 2, time.Millisecond)
	assert.Error(t, err2, "second lock attempt should fail while first is held")

	release()

	release2, err3 := Lock(path, 5, time.Millisecond)
	require.NoError(t, err3)
	release2()
}

func TestCacheSetGetInvalidate(t *testing.T) {
	c := NewCache()
	_, ok := c.Get("x")
	assert.False(t, ok)

	c.Set("x", 42)
	v, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	c.Invalidate("x")
	_, ok = c.Get("x")
	assert.False(t, ok)
}

var assertErr = &testErr{"boom"}

type testErr struct{ msg string }

func (e *testErr) Error() string { return e.msg }
