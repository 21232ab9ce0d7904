// Package analyzer computes single-source shortest paths on a
// [network.Graph] for one of its cost criteria, and derives the shortest-path
// tree of a source vertex.
//
// Edge costs must be non-negative. This precondition is not checked: negative
// costs produce incorrect results.
package analyzer

import (
	"errors"
	"fmt"
	"math"

	"github.com/rhartert/netgraph/network"
	"github.com/rhartert/yagh"
)

var (
	ErrNilGraph         = errors.New("analyzer: graph is nil")
	ErrInvalidSource    = errors.New("analyzer: source vertex is not in the graph")
	ErrInvalidCriterion = errors.New("analyzer: criterion is not defined on every edge")
	ErrVertexOutOfRange = errors.New("analyzer: vertex is not in the graph")
	ErrUnreachable      = errors.New("analyzer: vertex is not reachable from the source")
)

// Result holds the shortest paths from Source for one criterion.
type Result struct {
	Source    int
	Criterion int

	// Costs[v] is the cost of the shortest path from Source to v, or +Inf if
	// v is not reachable.
	Costs []float64

	// Tree[v] is the ID of the last edge of the shortest path from Source to
	// v, or -1 if v is Source or is not reachable.
	Tree []int
}

// Reachable returns true if there is a path from the source to vertex v.
func (r *Result) Reachable(v int) bool {
	return 0 <= v && v < len(r.Costs) && !math.IsInf(r.Costs[v], 1)
}

// Dijkstra computes the shortest paths from vertex src to all the other
// vertices of g using the costs of the given criterion.
//
// If several paths to a vertex have the same cost, the tree keeps the edge of
// the first one that was discovered.
func Dijkstra(g *network.Graph, src int, criterion int) (*Result, error) {
	if err := validate(g, src, criterion); err != nil {
		return nil, err
	}
	res := &Result{
		Source:    src,
		Criterion: criterion,
		Costs:     make([]float64, g.VertexCount()),
		Tree:      make([]int, g.VertexCount()),
	}
	dijkstra(g, src, criterion, res.Costs, res.Tree)
	return res, nil
}

// DijkstraCosts is like Dijkstra but only computes the costs. The storage of
// costs is reused if its capacity is large enough. The returned slice has one
// entry per vertex of g. On error, costs is left unmodified.
func DijkstraCosts(g *network.Graph, src int, criterion int, costs []float64) ([]float64, error) {
	if err := validate(g, src, criterion); err != nil {
		return nil, err
	}
	n := g.VertexCount()
	if cap(costs) < n {
		costs = make([]float64, n)
	}
	costs = costs[:n]
	dijkstra(g, src, criterion, costs, nil)
	return costs, nil
}

func validate(g *network.Graph, src int, criterion int) error {
	if g == nil {
		return ErrNilGraph
	}
	if src < 0 || g.VertexCount() <= src {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidSource, src, g.VertexCount())
	}
	if criterion < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidCriterion, criterion)
	}
	if g.EdgeCount() > 0 && g.CriterionCount() <= criterion {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidCriterion, criterion, g.CriterionCount())
	}
	return nil
}

// dijkstra fills costs and, if not nil, tree. Both slices must have one entry
// per vertex of g.
func dijkstra(g *network.Graph, src int, criterion int, costs []float64, tree []int) {
	for i := range costs {
		costs[i] = math.Inf(1)
	}
	for i := range tree {
		tree[i] = -1
	}

	h := yagh.New[float64](g.VertexCount())
	h.Put(src, 0)
	costs[src] = 0

	for h.Size() > 0 {
		entry := h.Pop()
		u, c := entry.Elem, entry.Cost

		for _, e := range g.Vertices[u].Out {
			edge := g.Edges[e]
			newCost := c + edge.Cost(criterion)
			v := edge.To

			// Ties keep the edge that reached v first.
			if costs[v] <= newCost {
				continue
			}

			costs[v] = newCost
			if tree != nil {
				tree[v] = e
			}
			h.Put(v, newCost)
		}
	}
}
