// Package sources provides configuration and validation for auxiliary
// data sources.
//
// This package defines the schema for sources.yaml, which users
// provide to specify which auxiliary CSV files are folded into the
// base table, and in which order. Each source carries the label used
// for provenance annotations in merged records.
package sources

import (
	"fmt"
)

// Sources loads the sources.yaml configuration.
type Sources interface {
	Load() (*SourcesConfig, error)
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// Sources is the ordered list of auxiliary sources to fold in.
	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig represents configuration for a single auxiliary source.
type SourceConfig struct {
	// ID identifies the source in CLI flags and logs.
	ID int `yaml:"id"`

	// Title is the provenance label recorded in merged records, e.g.
	// 日本のキリガ. Required.
	Title string `yaml:"title"`

	// Path is the location of the source CSV file. A missing file is
	// logged and skipped, never fatal.
	Path string `yaml:"path"`

	// FieldCount overrides the expected number of columns. When zero,
	// the header row's width is used.
	FieldCount int `yaml:"field_count,omitempty"`
}

// Validate checks the configuration for errors.
func (c *SourcesConfig) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources specified in configuration")
	}

	seen := make(map[int]struct{})
	for i := range c.Sources {
		if err := c.Sources[i].Validate(); err != nil {
			return fmt.Errorf("source %d: %w", i+1, err)
		}
		id := c.Sources[i].ID
		if _, dup := seen[id]; dup {
			return fmt.Errorf("source %d: duplicate id %d", i+1, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// Validate checks a single source configuration for data structure
// validity. File existence is deferred to runtime (I/O layer).
func (s *SourceConfig) Validate() error {
	if s.ID == 0 {
		return fmt.Errorf("id is required")
	}
	if s.Title == "" {
		return fmt.Errorf("title is required")
	}
	if s.Path == "" {
		return fmt.Errorf("path is required")
	}
	if s.FieldCount < 0 {
		return fmt.Errorf("field_count cannot be negative")
	}
	return nil
}

// Filter returns the sources matching the requested IDs, in the
// configured order. An empty request means all sources.
func (c *SourcesConfig) Filter(ids []int) []SourceConfig {
	if len(ids) == 0 {
		return c.Sources
	}
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var res []SourceConfig
	for _, src := range c.Sources {
		if _, ok := want[src.ID]; ok {
			res = append(res, src)
		}
	}
	return res
}
