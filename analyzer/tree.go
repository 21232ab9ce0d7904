package analyzer

import (
	"github.com/rhartert/netgraph/network"
	"github.com/rhartert/sparsesets"
)

// ShortestTree returns the shortest-path tree rooted at vertex src for the
// given criterion. See [BuildTree] for the layout of the returned graph.
func ShortestTree(g *network.Graph, src int, criterion int) (*network.Graph, error) {
	res, err := Dijkstra(g, src, criterion)
	if err != nil {
		return nil, err
	}
	tree, _ := BuildTree(g, res)
	return tree, nil
}

// BuildTree materializes the shortest-path tree held by res as a new graph.
// The tree contains the source, every vertex reachable from it, and for each
// reachable vertex the last edge of its shortest path. Points and cost vectors
// are copied from g.
//
// Vertices are renumbered: the source is vertex 0, followed by the reachable
// vertices in increasing order of their ID in g. The second returned value
// maps the vertex IDs of g to their ID in the tree, or -1 for vertices that
// are not in the tree.
//
// res must have been computed on g.
func BuildTree(g *network.Graph, res *Result) (*network.Graph, []int) {
	n := g.VertexCount()

	// Content() preserves the insertion order which gives the numbering.
	inTree := sparsesets.New(n)
	inTree.Insert(res.Source)
	for v, e := range res.Tree {
		if e != -1 && !inTree.Contains(v) {
			inTree.Insert(v)
		}
	}

	mapping := make([]int, n)
	for i := range mapping {
		mapping[i] = -1
	}

	tree := &network.Graph{
		Vertices: make([]network.Vertex, 0, len(inTree.Content())),
		Edges:    make([]network.Edge, 0, len(inTree.Content())-1),
	}
	for _, v := range inTree.Content() {
		mapping[v] = tree.AddVertex(g.Vertices[v].Point)
	}

	for _, e := range res.Tree {
		if e == -1 {
			continue
		}
		edge := g.Edges[e]
		tree.AddEdge(mapping[edge.From], mapping[edge.To], edge.Costs)
	}

	return tree, mapping
}
