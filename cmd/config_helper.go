package main

import (
	"os"

	"github.com/rmohr/dhskernel/pkg/api"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/rmohr/dhskernel/pkg/reducer"
)

// toResult converts a kernelization result into its file representation. The kernel is only
// included if it still has to be solved.
func toResult(name string, result *reducer.KernelResult, solution []hypergraph.Vertex) *api.Result {
	out := &api.Result{
		Name:     name,
		Outcome:  string(result.Outcome),
		Reason:   result.Reason,
		Partial:  hypergraph.Ints(result.Partial),
		Solution: hypergraph.Ints(solution),
	}
	if result.Kernel != nil {
		out.Budget = result.Kernel.K()
		if result.Outcome == reducer.Reduced {
			out.Kernel = result.Kernel.ToAPI(name)
		}
	}
	if result.W != nil {
		out.W = hypergraph.EdgeInts(result.W.IDs())
	}
	if !result.Crown.Empty() {
		out.Crown = &api.Crown{
			Vertices:  hypergraph.Ints(result.Crown.Vertices),
			Edges:     hypergraph.EdgeInts(result.Crown.Edges),
			Saturated: result.Crown.Saturated(),
		}
		for _, p := range result.Crown.Pairs {
			out.Crown.Pairs = append(out.Crown.Pairs, api.Pair{Edge: int(p.Edge), Vertex: int(p.Vertex)})
		}
	}
	return out
}

func writeFile(file string, data []byte) error {
	return os.WriteFile(file, data, 0660)
}
