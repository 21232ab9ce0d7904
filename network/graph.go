// Package network provides the directed multigraph analyzed by package
// analyzer. Vertices carry 2D coordinates and edges carry one cost per
// criterion (e.g. distance, travel time).
package network

import "fmt"

// Point represents the coordinates of a vertex.
type Point struct {
	X float64
	Y float64
}

// Vertex represents a vertex of the graph and the IDs of the edges leaving
// (Out) and reaching (In) it.
type Vertex struct {
	Point Point
	Out   []int
	In    []int
}

// Edge represents a directed edge between two vertices. Costs holds one value
// per criterion.
type Edge struct {
	From  int
	To    int
	Costs []float64
}

// Cost returns the cost of the edge for the given criterion.
func (e Edge) Cost(criterion int) float64 {
	return e.Costs[criterion]
}

// Graph represents a directed multigraph. Parallel edges and self-loops are
// allowed. Vertex and edge IDs are dense indices into Vertices and Edges.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
}

// New creates a new graph with one vertex per point and the given edges. It
// returns an error if an edge references a vertex outside [0, len(points)).
func New(points []Point, edges []Edge) (*Graph, error) {
	g := &Graph{
		Vertices: make([]Vertex, 0, len(points)),
		Edges:    make([]Edge, 0, len(edges)),
	}
	for _, p := range points {
		g.AddVertex(p)
	}
	for i, e := range edges {
		if !g.hasVertex(e.From) || !g.hasVertex(e.To) {
			return nil, fmt.Errorf("edge %d (%d -> %d) is not between vertices in [0, %d)", i, e.From, e.To, len(points))
		}
		g.AddEdge(e.From, e.To, e.Costs)
	}
	return g, nil
}

// AddVertex adds a vertex at point p and returns its ID.
func (g *Graph) AddVertex(p Point) int {
	g.Vertices = append(g.Vertices, Vertex{Point: p})
	return len(g.Vertices) - 1
}

// AddEdge adds an edge from vertex from to vertex to and returns its ID. The
// costs are copied. It is important to ensure that both vertices are in the
// graph; otherwise, the function will panic.
func (g *Graph) AddEdge(from int, to int, costs []float64) int {
	if !g.hasVertex(from) || !g.hasVertex(to) {
		panic(fmt.Sprintf("network: edge %d -> %d is not between vertices in [0, %d)", from, to, len(g.Vertices)))
	}
	id := len(g.Edges)
	g.Edges = append(g.Edges, Edge{
		From:  from,
		To:    to,
		Costs: append([]float64(nil), costs...),
	})
	g.Vertices[from].Out = append(g.Vertices[from].Out, id)
	g.Vertices[to].In = append(g.Vertices[to].In, id)
	return id
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int {
	return len(g.Vertices)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id int) Vertex {
	return g.Vertices[id]
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id int) Edge {
	return g.Edges[id]
}

// FindVertex returns the ID of the first vertex located at p or -1 if there
// is no such vertex.
func (g *Graph) FindVertex(p Point) int {
	for i, v := range g.Vertices {
		if v.Point == p {
			return i
		}
	}
	return -1
}

// CriterionCount returns the number of criteria defined on every edge of the
// graph, that is the smallest number of costs carried by an edge. It returns
// 0 if the graph has no edge.
func (g *Graph) CriterionCount() int {
	if len(g.Edges) == 0 {
		return 0
	}
	n := len(g.Edges[0].Costs)
	for _, e := range g.Edges[1:] {
		n = min(n, len(e.Costs))
	}
	return n
}

func (g *Graph) hasVertex(id int) bool {
	return 0 <= id && id < len(g.Vertices)
}
