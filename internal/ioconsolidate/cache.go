package ioconsolidate

import (
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/hpdb/hpdb/pkg/resolver"
)

// keyCache memoizes normalized scientific-name keys between runs.
// Cache problems never fail a run: a broken cache file is discarded
// and rebuilt.
type keyCache struct {
	path  string
	base  resolver.Keyer
	keys  map[string]string
	dirty bool
}

func newKeyCache(path string, base resolver.Keyer) *keyCache {
	return &keyCache{
		path: path,
		base: base,
		keys: make(map[string]string),
	}
}

// Key implements resolver.Keyer with memoization.
func (c *keyCache) Key(name string) string {
	if key, ok := c.keys[name]; ok {
		return key
	}
	key := c.base.Key(name)
	c.keys[name] = key
	c.dirty = true
	return key
}

// Load reads the cached keys, encoded with GOB.
func (c *keyCache) Load() {
	if c.path == "" {
		return
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}

	enc := gnfmt.GNgob{}
	var keys map[string]string
	if err = enc.Decode(data, &keys); err != nil {
		slog.Warn("Discarding unreadable key cache",
			"path", c.path, "error", err)
		return
	}
	c.keys = keys
	slog.Debug("Loaded key cache", "path", c.path, "keys", len(keys))
}

// Save writes the cached keys back, encoded with GOB.
func (c *keyCache) Save() {
	if c.path == "" || !c.dirty {
		return
	}

	enc := gnfmt.GNgob{}
	data, err := enc.Encode(c.keys)
	if err != nil {
		slog.Warn("Cannot encode key cache", "error", err)
		return
	}
	if err = os.WriteFile(c.path, data, 0644); err != nil {
		slog.Warn("Cannot write key cache", "path", c.path, "error", err)
		return
	}
	slog.Debug("Saved key cache", "path", c.path, "keys", len(c.keys))
}
