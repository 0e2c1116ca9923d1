// Package fsatomic implements the small-JSON-state persistence idiom
// used everywhere a run needs durable local state: temp-file +
// os.Rename writes, a read cache invalidated on mutation,
// retry-with-backoff for contended writers, and exclusive-create file
// locking for the draft asset protocol.
package fsatomic

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// WriteJSON writes v to path atomically: marshal, write to a sibling
// temp file, then os.Rename over the destination.
func WriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes data to path atomically via temp-file + rename.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// WriteFileWithBackup writes data atomically and additionally copies
// the result to path+".bak".
func WriteFileWithBackup(path string, data []byte) error {
	if err := WriteFile(path, data); err != nil {
		return err
	}
	return WriteFile(path+".bak", data)
}

// ReadJSON reads and unmarshals JSON from path into v. Returns
// os.ErrNotExist-wrapping errors unchanged so callers can recover with
// an empty default.
func ReadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// RetryWrite retries fn with exponential backoff up to attempts times,
// for the progress-flags "read -> modify -> atomic write" conflict
// protocol.
func RetryWrite(attempts int, base time.Duration, fn func() error) error {
	var lastErr error
	wait := base
	for i := 0; i < attempts; i++ {
		if err := fn(); err != nil {
			lastErr = err
			log.WithError(err).WithField("attempt", i+1).Warn("atomic write attempt failed, retrying")
			time.Sleep(wait)
			wait *= 2
			continue
		}
		return nil
	}
	return lastErr
}

// Lock acquires an exclusive file lock at path+".lock" via O_CREAT|O_EXCL
// semantics,
// retrying with bounded backoff, and returns a release function that
// removes the lock file.
func Lock(path string, attempts int, base time.Duration) (release func(), err error) {
	lockPath := path + ".lock"
	wait := base
	for i := 0; i < attempts; i++ {
		f, openErr := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if openErr == nil {
			f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}
		time.Sleep(wait)
		wait *= 2
	}
	return nil, &os.PathError{Op: "lock", Path: path, Err: os.ErrPermission}
}

// Cache is a path-keyed read cache invalidated on mutation: it caches
// last-read content keyed by path, and mutation invalidates the entry.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]interface{})}
}

// Get returns the cached value for path, if present.
func (c *Cache) Get(path string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[path]
	return v, ok
}

// Set stores v for path.
func (c *Cache) Set(path string, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = v
}

// Invalidate drops the cached entry for path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
