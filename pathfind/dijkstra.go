// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package pathfind

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"radixheap"
	"radixheap/internal/pkg/bm"
)

// Unreachable is reported as the distance of vertices with no path from
// the source. Real distances are always below it.
const Unreachable = math.MaxUint32

// ErrNoPath is returned by Path when the target cannot be reached.
var ErrNoPath = errors.New("pathfind: no path to target")

// Solver runs Dijkstra's algorithm with a radix heap. Tentative distances
// are pushed in non-decreasing order of the popped distance, which is
// exactly the monotone workload the heap is built for.
type Solver struct {
	log zerolog.Logger
}

func NewSolver(log zerolog.Logger) *Solver {
	return &Solver{log: log}
}

// ShortestPaths returns the distance from source to every vertex of g,
// with [Unreachable] for vertices no path reaches.
func (s *Solver) ShortestPaths(g *Graph, source uint32) ([]uint32, error) {
	dist, _, err := s.run(g, source, nil)
	return dist, err
}

// Path returns the vertex sequence of a shortest path from source to
// target, inclusive, and its total weight. It fails with [ErrNoPath] if
// target cannot be reached.
func (s *Solver) Path(g *Graph, source, target uint32) ([]uint32, uint32, error) {
	if uint32(g.Order()) <= target {
		return nil, 0, fmt.Errorf("pathfind: target vertex %d not in graph of order %d", target, g.Order())
	}

	dist, prev, err := s.run(g, source, &target)
	if err != nil {
		return nil, 0, err
	}

	if dist[target] == Unreachable {
		return nil, 0, ErrNoPath
	}

	path := []uint32{target}
	for v := target; v != source; {
		v = prev[v]
		path = append(path, v)
	}
	slices.Reverse(path)

	return path, dist[target], nil
}

// run settles vertices in non-decreasing distance order. When stopAt is
// non-nil the search ends as soon as that vertex is settled.
func (s *Solver) run(g *Graph, source uint32, stopAt *uint32) ([]uint32, []uint32, error) {
	n := g.Order()
	if uint32(n) <= source {
		return nil, nil, fmt.Errorf("pathfind: source vertex %d not in graph of order %d", source, n)
	}

	dist := make([]uint32, n)
	prev := make([]uint32, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[source] = 0

	settled := bm.New(uint32(n))
	queue := radixheap.New[uint32]()

	if err := queue.Push(0, source); err != nil {
		return nil, nil, err
	}

	for !queue.Empty() {
		d, v, err := queue.Pop()
		if err != nil {
			return nil, nil, err
		}

		if !settled.SetX(v) {
			// stale entry, a shorter distance was already settled
			s.log.Trace().Uint32("vertex", v).Uint32("dist", d).Msg("skip stale entry")
			continue
		}

		s.log.Trace().Uint32("vertex", v).Uint32("dist", d).Msg("settle")

		if stopAt != nil && v == *stopAt {
			break
		}

		for _, a := range g.adj[v] {
			if a.weight >= Unreachable-d {
				// would overflow the distance domain
				continue
			}

			nd := d + a.weight
			if nd >= dist[a.to] {
				continue
			}

			dist[a.to] = nd
			prev[a.to] = v

			// nd >= d >= every previously popped distance, so this
			// can only fail if the graph was mutated mid-run
			if err := queue.Push(nd, a.to); err != nil {
				return nil, nil, fmt.Errorf("pathfind: pushing vertex %d at distance %d: %w", a.to, nd, err)
			}
		}
	}

	return dist, prev, nil
}

// ShortestPaths runs [Solver.ShortestPaths] without logging.
func ShortestPaths(g *Graph, source uint32) ([]uint32, error) {
	return NewSolver(zerolog.Nop()).ShortestPaths(g, source)
}

// Path runs [Solver.Path] without logging.
func Path(g *Graph, source, target uint32) ([]uint32, uint32, error) {
	return NewSolver(zerolog.Nop()).Path(g, source, target)
}
