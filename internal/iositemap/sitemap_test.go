package iositemap_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hpdb/hpdb/internal/iositemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const masterCSV = `和名,学名,食草,食草に関する備考,成虫の発生時期,出典,備考
アカエグリバ,Oraesia excavata,アオツヅラフジ,,,,
クロバネフユシャク,Inurois fletcheri,クリ; コナラ,,,,
フユシャクの一種,,不明,,,,
`

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	master := filepath.Join(dir, "master.csv")
	out := filepath.Join(dir, "sitemap.xml")
	require.NoError(t, os.WriteFile(master, []byte(masterCSV), 0644))

	s := iositemap.New()
	err := s.Write(context.Background(), master, out,
		"https://hpdb.example.org/")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	xml := string(data)

	assert.True(t, strings.HasPrefix(xml,
		`<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, "<urlset")
	assert.Contains(t, xml, "</urlset>")

	// Root plus three species plus three distinct host plants.
	assert.Equal(t, 7, strings.Count(xml, "<url>"))
	assert.Equal(t, 3, strings.Count(xml, "#/species/"))
	assert.Equal(t, 3, strings.Count(xml, "#/plant/"))

	// A trailing slash on the base URL does not double up.
	assert.NotContains(t, xml, "org//")
}

func TestWriteStableIDs(t *testing.T) {
	dir := t.TempDir()
	master := filepath.Join(dir, "master.csv")
	require.NoError(t, os.WriteFile(master, []byte(masterCSV), 0644))

	s := iositemap.New()
	out1 := filepath.Join(dir, "one.xml")
	out2 := filepath.Join(dir, "two.xml")
	require.NoError(t, s.Write(context.Background(), master, out1, "https://x.org"))
	require.NoError(t, s.Write(context.Background(), master, out2, "https://x.org"))

	a, err := os.ReadFile(out1)
	require.NoError(t, err)
	b, err := os.ReadFile(out2)
	require.NoError(t, err)

	// Identifiers derive from names, so only the lastmod date could
	// differ between runs on the same day.
	assert.Equal(t, string(a), string(b))
}

func TestWriteMissingMaster(t *testing.T) {
	dir := t.TempDir()
	s := iositemap.New()
	err := s.Write(context.Background(),
		filepath.Join(dir, "nope.csv"),
		filepath.Join(dir, "sitemap.xml"), "https://x.org")
	assert.Error(t, err)
}
