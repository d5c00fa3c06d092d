package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)

	want := map[string]bool{
		"consolidate": false,
		"dedupe":      false,
		"sitemap":     false,
		"export":      false,
	}
	for _, c := range cmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, name)
	}
}

func TestRootCommandHelp(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	help := buf.String()
	assert.Contains(t, help, "hpdb")
	assert.Contains(t, help, "Available Commands")
	assert.Contains(t, help, "consolidate")
}

func TestConsolidateCommandFlags(t *testing.T) {
	cmd := getConsolidateCmd()

	for _, name := range []string{
		"base", "output", "authority", "no-cache", "sources",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestExportCommandFlags(t *testing.T) {
	cmd := getExportCmd()

	for _, name := range []string{"master", "db", "mapping"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
