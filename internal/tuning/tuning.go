// Package tuning implements the coefficient registry.
// The engine is a parameterized physical model: every probability,
// scale, and threshold used downstream comes from this single flat
// namespace. Construction merges built-in defaults, an optional JSON
// override file, and programmatic overrides, in that order.
package tuning

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// Registry is a keyed numeric coefficient table with stable default
// identity.
type Registry struct {
	defaults  map[string]float64
	overrides map[string]float64
}

// New builds a Registry from the built-in defaults with no overrides applied.
func New() *Registry {
	return &Registry{
		defaults:  defaultTable(),
		overrides: make(map[string]float64),
	}
}

// LoadJSON merges overrides from a JSON flat map at path into the registry.
// Missing files, corrupt JSON, unknown keys, and non-numeric values are
// tolerated since a bad overrides file should fall back to defaults
// rather than abort the run.
func (r *Registry) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Debug("tuning overrides file absent, using defaults")
			return nil
		}
		log.WithError(err).WithField("path", path).Warn("failed to read tuning overrides, using defaults")
		return nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		log.WithError(err).WithField("path", path).Warn("failed to parse tuning overrides JSON, using defaults")
		return nil
	}

	r.mergeRaw(raw)
	return nil
}

// mergeRaw applies a raw decoded JSON map, silently dropping unknown
// keys and non-numeric values.
func (r *Registry) mergeRaw(raw map[string]interface{}) {
	for key, value := range raw {
		if _, known := r.defaults[key]; !known {
			continue
		}
		switch v := value.(type) {
		case float64:
			r.overrides[key] = v
		case int:
			r.overrides[key] = float64(v)
		default:
			// Non-numeric value: conversion failure does not abort loading.
			log.WithField("key", key).Warn("tuning override value is not numeric, ignoring")
		}
	}
}

// SetOverride applies a single programmatic override. Unknown keys are
// silently dropped, matching JSON-load semantics.
func (r *Registry) SetOverride(key string, value float64) {
	if _, known := r.defaults[key]; !known {
		return
	}
	r.overrides[key] = value
}

// Get returns the effective value for key: override, else built-in
// default, else the caller-supplied fallback.
func (r *Registry) Get(key string, fallback float64) float64 {
	if v, ok := r.overrides[key]; ok {
		return v
	}
	if v, ok := r.defaults[key]; ok {
		return v
	}
	return fallback
}

// GetDefault returns Get(key, 0.0), for call sites that don't have a
// meaningful caller-side fallback.
func (r *Registry) GetDefault(key string) float64 {
	return r.Get(key, 0.0)
}

// Clone returns an independent copy so tests can mutate overrides
// without affecting a shared default registry.
func (r *Registry) Clone() *Registry {
	clone := &Registry{
		defaults:  r.defaults,
		overrides: make(map[string]float64, len(r.overrides)),
	}
	for k, v := range r.overrides {
		clone.overrides[k] = v
	}
	return clone
}
