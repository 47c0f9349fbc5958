package main

import (
	"fmt"
	"time"

	"github.com/rmohr/dhskernel/pkg/api"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/rmohr/dhskernel/pkg/instance"
	"github.com/rmohr/dhskernel/pkg/reducer"
	"github.com/rmohr/dhskernel/pkg/sat"
	"github.com/rmohr/dhskernel/pkg/solver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

type compareOpts struct {
	instances   int
	vertices    int
	edges       int
	d           int
	k           int
	seed        int64
	out         string
	verifyCrown bool
}

var compareopts = compareOpts{}

func NewCompareCmd() *cobra.Command {

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compares kernelization against plain SAT solving on random instances",
		Long: `generates random instances and solves every instance twice, once by kernelizing and solving the kernel
exhaustively and once by handing the unreduced instance to the SAT solver. Timings and kernel sizes are reported`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := reducer.Options{VerifyCrown: config.VerifyCrown, CheckInvariants: config.CheckInvariants, WBound: reducer.WBound(config.WBound)}
			if cmd.Flags().Changed("verify-crown") {
				opts.VerifyCrown = compareopts.verifyCrown
			}
			var results []*api.Result
			mismatches := 0
			for i := 0; i < compareopts.instances; i++ {
				seed := compareopts.seed + int64(i)
				h, err := instance.Random(compareopts.vertices, compareopts.edges, compareopts.d, compareopts.k, seed)
				if err != nil {
					return err
				}
				result, err := compare(fmt.Sprintf("random-%d", seed), h, opts)
				if err != nil {
					return err
				}
				if result.Timings[0].Feasible != result.Timings[1].Feasible {
					logrus.Warnf("%s: kernel says feasible=%v, SAT says feasible=%v", result.Name, result.Timings[0].Feasible, result.Timings[1].Feasible)
					mismatches++
				}
				results = append(results, result)
			}
			logrus.Infof("Compared %d instances, %d disagreements.", len(results), mismatches)
			if compareopts.out == "" {
				return nil
			}
			data, err := yaml.Marshal(results)
			if err != nil {
				return err
			}
			return writeFile(compareopts.out, data)
		},
	}

	compareCmd.Flags().IntVar(&compareopts.instances, "instances", 10, "number of random instances")
	compareCmd.Flags().IntVarP(&compareopts.vertices, "vertices", "n", 40, "number of vertices")
	compareCmd.Flags().IntVarP(&compareopts.edges, "edges", "m", 60, "number of edges")
	compareCmd.Flags().IntVarP(&compareopts.d, "d", "d", 3, "size of every edge")
	compareCmd.Flags().IntVarP(&compareopts.k, "k", "k", 8, "budget")
	compareCmd.Flags().Int64VarP(&compareopts.seed, "seed", "s", 1, "seed of the first instance")
	compareCmd.Flags().StringVarP(&compareopts.out, "output", "o", "", "where to write the comparison, nothing is written if empty")
	compareCmd.Flags().BoolVar(&compareopts.verifyCrown, "verify-crown", false, "reject crowns which are not fully matched")
	return compareCmd
}

// compare solves a clone of h with the kernel and the original with the SAT backend.
func compare(name string, h *hypergraph.Instance, opts reducer.Options) (*api.Result, error) {
	original := h.Clone()

	start := time.Now()
	result, err := reducer.NewKernelizer(opts).Kernelize(h.Clone())
	if err != nil {
		return nil, err
	}
	var solution []hypergraph.Vertex
	feasible := false
	switch result.Outcome {
	case reducer.Solved:
		solution, feasible = result.Partial, true
	case reducer.Reduced:
		solution, feasible = solver.Solve(result.Kernel, result.Partial)
	}
	kernelTime := time.Since(start)
	if feasible && !original.Covers(solution) {
		return nil, fmt.Errorf("%s: kernel solution %v does not hit every edge", name, solution)
	}

	start = time.Now()
	_, satFeasible := sat.Solve(original)
	satTime := time.Since(start)

	out := toResult(name, result, solution)
	out.Timings = []api.Timing{
		{Backend: "kernel", Seconds: kernelTime.Seconds(), Feasible: feasible},
		{Backend: "sat", Seconds: satTime.Seconds(), Feasible: satFeasible},
	}
	logrus.Infof("%s: %s, kernel %d edges in %v, sat %v", name, result.Outcome, result.Kernel.EdgeCount(), kernelTime, satTime)
	return out, nil
}
