// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package pathfind computes single-source shortest paths over graphs with
// uint32 edge weights, using a radix heap as the priority queue.
package pathfind

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trim21/errgo"
)

type arc struct {
	to     uint32
	weight uint32
}

// Graph is a directed graph over dense uint32 vertex IDs. Vertices exist
// implicitly: adding an edge grows the graph to cover both endpoints.
type Graph struct {
	adj  [][]arc
	size int
}

func NewGraph() *Graph {
	return &Graph{}
}

// AddEdge adds a directed edge. The graph grows to cover both endpoints.
func (g *Graph) AddEdge(from, to uint32, weight uint32) {
	g.grow(max(from, to))
	g.adj[from] = append(g.adj[from], arc{to: to, weight: weight})
	g.size++
}

// AddBiEdge adds edges in both directions with the same weight.
func (g *Graph) AddBiEdge(a, b uint32, weight uint32) {
	g.AddEdge(a, b, weight)
	g.AddEdge(b, a, weight)
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adj)
}

// Size returns the number of directed edges.
func (g *Graph) Size() int {
	return g.size
}

func (g *Graph) grow(v uint32) {
	for uint32(len(g.adj)) <= v {
		g.adj = append(g.adj, nil)
	}
}

// LoadGraph reads a graph as whitespace-separated "from to weight" lines.
// Blank lines and lines starting with '#' are skipped.
func LoadGraph(r io.Reader) (*Graph, error) {
	g := NewGraph()

	s := bufio.NewScanner(r)

	lineno := 0
	for s.Scan() {
		lineno++

		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("pathfind: line %d: expected 'from to weight', got %d fields", lineno, len(fields))
		}

		var edge [3]uint32
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, errgo.Wrap(err, fmt.Sprintf("pathfind: line %d: bad field %q", lineno, f))
			}
			edge[i] = uint32(v)
		}

		g.AddEdge(edge[0], edge[1], edge[2])
	}

	if err := s.Err(); err != nil {
		return nil, errgo.Wrap(err, "pathfind: failed to read graph")
	}

	return g, nil
}
