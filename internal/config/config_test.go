// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"radixheap/internal/config"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Run.LogLevel)
	require.Equal(t, uint32(0), cfg.Run.Source)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(`
[run]
graph = "graph.txt"
source = 42
log-level = "debug"
`), 0o600))

	cfg, err := config.LoadFromFile(p)
	require.NoError(t, err)
	require.Equal(t, "graph.txt", cfg.Run.GraphPath)
	require.Equal(t, uint32(42), cfg.Run.Source)
	require.Equal(t, "debug", cfg.Run.LogLevel)
}

func TestLoadBadToml(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte("[run\n"), 0o600))

	_, err := config.LoadFromFile(p)
	require.ErrorContains(t, err, "failed to parse config file")
}
