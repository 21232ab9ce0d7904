package analyzer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/netgraph/network"
)

func TestResult_RouteTo(t *testing.T) {
	g := square(t)
	res, err := Dijkstra(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		desc      string
		target    int
		wantNodes []int
		wantEdges []int
		wantCost  float64
	}{
		{
			desc:      "to source",
			target:    0,
			wantNodes: []int{0},
			wantCost:  0,
		},
		{
			desc:      "one edge",
			target:    1,
			wantNodes: []int{0, 1},
			wantEdges: []int{0},
			wantCost:  1,
		},
		{
			desc:      "through intermediate vertices",
			target:    3,
			wantNodes: []int{0, 1, 2, 3},
			wantEdges: []int{0, 1, 3},
			wantCost:  3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := res.RouteTo(g, tc.target)
			if err != nil {
				t.Fatalf("RouteTo(%d): want no error, got %s", tc.target, err)
			}

			if diff := cmp.Diff(tc.wantNodes, got.Nodes()); diff != "" {
				t.Errorf("Nodes(): mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantEdges, got.Edges()); diff != "" {
				t.Errorf("Edges(): mismatch (-want +got):\n%s", diff)
			}
			if got.Cost() != tc.wantCost {
				t.Errorf("Cost(): want %f, got %f", tc.wantCost, got.Cost())
			}
			if got.Length() != len(tc.wantNodes) {
				t.Errorf("Length(): want %d, got %d", len(tc.wantNodes), got.Length())
			}
		})
	}
}

func TestResult_RouteTo_errors(t *testing.T) {
	g, err := network.New(
		[]network.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[]network.Edge{{From: 1, To: 0, Costs: []float64{1}}},
	)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Dijkstra(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		target  int
		wantErr error
	}{
		{-1, ErrVertexOutOfRange},
		{2, ErrVertexOutOfRange},
		{1, ErrUnreachable},
	}

	for _, tc := range testCases {
		got, err := res.RouteTo(g, tc.target)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("RouteTo(%d): want error %v, got %v", tc.target, tc.wantErr, err)
		}
		if got != nil {
			t.Errorf("RouteTo(%d): want nil route, got %s", tc.target, got)
		}
	}
}
