package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	c, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.json"), c.DataFile)
	assert.Equal(t, filepath.Join(dir, "journal.db"), c.JournalFile)
	assert.Equal(t, "$", c.Currency)
	assert.True(t, c.Color)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	body := "currency: \"€\"\ncolor: false\ndata_file: /tmp/elsewhere.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	c, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "€", c.Currency)
	assert.False(t, c.Color)
	assert.Equal(t, "/tmp/elsewhere.json", c.DataFile)
	// Unset keys keep their defaults.
	assert.Equal(t, filepath.Join(dir, "journal.db"), c.JournalFile)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("currency: [\n"), 0o644))

	_, err := loadConfig(dir)
	assert.Error(t, err)
}
