package iosources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hpdb/hpdb/internal/iosources"
	"github.com/hpdb/hpdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSources(t *testing.T, home, content string) {
	t.Helper()
	cfgDir := filepath.Join(home, ".config", "hpdb")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t,
		os.WriteFile(filepath.Join(cfgDir, "sources.yaml"),
			[]byte(content), 0644))
}

func newConfig(home string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})
	return cfg
}

func TestLoad(t *testing.T) {
	home := t.TempDir()
	writeSources(t, home, `sources:
  - id: 1
    title: 日本の冬尺蛾
    path: ~/data/fuyushaku.csv
  - id: 2
    title: 日本のキリガ
    path: /data/kiriga.csv
    field_count: 5
`)

	res, err := iosources.New(newConfig(home)).Load()
	require.NoError(t, err)
	require.Len(t, res.Sources, 2)

	// Leading ~ expands to the home directory.
	assert.Equal(t,
		filepath.Join(home, "data", "fuyushaku.csv"),
		res.Sources[0].Path,
	)
	assert.Equal(t, "/data/kiriga.csv", res.Sources[1].Path)
	assert.Equal(t, 5, res.Sources[1].FieldCount)
	assert.Equal(t, "日本の冬尺蛾", res.Sources[0].Title)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		msg     string
		content string
	}{
		{"missing file", ""},
		{"broken yaml", "sources: [}"},
		{"empty source list", "sources: []"},
		{"invalid source", "sources:\n  - id: 1\n    title: x\n"},
	}

	for _, v := range tests {
		home := t.TempDir()
		if v.content != "" {
			writeSources(t, home, v.content)
		}
		_, err := iosources.New(newConfig(home)).Load()
		assert.Error(t, err, v.msg)
	}
}
