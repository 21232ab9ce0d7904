package analyzer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rhartert/netgraph/network"
)

// Route represents a shortest path from the source of a [Result] to one of
// its reachable vertices.
type Route struct {
	nodes []int
	edges []int
	cost  float64
}

// Length returns the length of the route in terms of vertices.
func (r *Route) Length() int {
	return len(r.nodes)
}

// Node returns the vertex at position pos starting from 0 (the source) and
// ending at Length()-1 (the destination).
func (r *Route) Node(pos int) int {
	return r.nodes[pos]
}

// Nodes returns the sequence of vertices in the route (including the source
// and destination).
//
// Important: the slice is a view on the route's internal structure and should
// only be used in read-only operations.
func (r *Route) Nodes() []int {
	return r.nodes
}

// Edges returns the sequence of edges in the route. Edge i goes from Node(i)
// to Node(i+1). The slice should only be used in read-only operations.
func (r *Route) Edges() []int {
	return r.edges
}

// Cost returns the total cost of the route.
func (r *Route) Cost() float64 {
	return r.cost
}

// String returns a string representation of the route as a sequence of
// vertices separated by " -> ". For example: "0 -> 4 -> 3 -> 1".
func (r *Route) String() string {
	sb := strings.Builder{}
	for i := 0; i < len(r.nodes)-1; i++ {
		sb.WriteString(fmt.Sprintf("%d -> ", r.nodes[i]))
	}
	sb.WriteString(fmt.Sprintf("%d", r.nodes[len(r.nodes)-1]))
	return sb.String()
}

// RouteTo returns the shortest route from the source to vertex v by walking
// the tree backward. g must be the graph on which r was computed.
func (r *Result) RouteTo(g *network.Graph, v int) (*Route, error) {
	if v < 0 || len(r.Costs) <= v {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(r.Costs))
	}
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	route := &Route{
		nodes: []int{v},
		cost:  r.Costs[v],
	}
	for v != r.Source {
		e := r.Tree[v]
		route.edges = append(route.edges, e)
		v = g.Edges[e].From
		route.nodes = append(route.nodes, v)
	}

	slices.Reverse(route.nodes)
	slices.Reverse(route.edges)
	return route, nil
}
