// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package pathfind_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"radixheap/pathfind"
)

func TestLoadGraph(t *testing.T) {
	t.Parallel()

	g, err := pathfind.LoadGraph(strings.NewReader(`
# comment line
0 1 10
1 2 20

2 0 5
`))
	require.NoError(t, err)
	require.Equal(t, 3, g.Order())
	require.Equal(t, 3, g.Size())

	dist, err := pathfind.ShortestPaths(g, 0)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 10, 30}, dist)
}

func TestLoadGraphBadLine(t *testing.T) {
	t.Parallel()

	_, err := pathfind.LoadGraph(strings.NewReader("0 1\n"))
	require.ErrorContains(t, err, "line 1")

	_, err = pathfind.LoadGraph(strings.NewReader("0 1 10\na b c\n"))
	require.ErrorContains(t, err, "line 2")

	_, err = pathfind.LoadGraph(strings.NewReader("0 1 4294967296\n"))
	require.Error(t, err)
}

func TestAddBiEdge(t *testing.T) {
	t.Parallel()

	g := pathfind.NewGraph()
	g.AddBiEdge(0, 5, 2)

	require.Equal(t, 6, g.Order())
	require.Equal(t, 2, g.Size())

	dist, err := pathfind.ShortestPaths(g, 5)
	require.NoError(t, err)
	require.Equal(t, uint32(2), dist[0])
	require.Equal(t, uint32(0), dist[5])
}
