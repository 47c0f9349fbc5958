package main

import (
	"fmt"

	"github.com/rmohr/dhskernel/pkg/api/dhskernel"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/rmohr/dhskernel/pkg/instance"
	"github.com/rmohr/dhskernel/pkg/reducer"
	"github.com/rmohr/dhskernel/pkg/sat"
	"github.com/rmohr/dhskernel/pkg/solver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type solveOpts struct {
	out             string
	backend         string
	nokernel        bool
	minimum         bool
	verifyCrown     bool
	checkInvariants bool
}

var solveopts = solveOpts{}

func NewSolveCmd() *cobra.Command {

	solveCmd := &cobra.Command{
		Use:   "solve <instance>",
		Short: "searches a hitting set with at most k vertices",
		Long: `kernelizes the given instance and solves the kernel with the configured backend. The solution is checked
against the original instance before it is written`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := config.Backend
			if cmd.Flags().Changed("backend") {
				backend = solveopts.backend
			}
			h, in, err := instance.LoadInstance(args[0])
			if err != nil {
				return err
			}
			original := h.Clone()

			if solveopts.minimum {
				logrus.Info("Searching a minimum hitting set.")
				solution, ok := sat.Minimum(h)
				return writeSolution(original, in.Name, &reducer.KernelResult{Outcome: reducer.Solved, Kernel: h, Reason: "minimum hitting set"}, solution, ok)
			}

			result := &reducer.KernelResult{Outcome: reducer.Reduced, Kernel: h, Reason: "kernelization disabled"}
			if !solveopts.nokernel {
				result, err = reducer.NewKernelizer(kernelizerOptions(cmd, solveopts.verifyCrown, solveopts.checkInvariants)).Kernelize(h)
				if err != nil {
					return err
				}
			}
			switch result.Outcome {
			case reducer.Infeasible:
				logrus.Infof("No hitting set with at most %d vertices: %s.", original.K(), result.Reason)
				return writeSolution(original, in.Name, result, nil, false)
			case reducer.Solved:
				return writeSolution(original, in.Name, result, result.Partial, true)
			}

			logrus.Infof("Solving kernel with %d edges using the %s backend.", result.Kernel.EdgeCount(), backend)
			solution, ok, err := solveKernel(backend, result.Kernel, result.Partial)
			if err != nil {
				return err
			}
			return writeSolution(original, in.Name, result, solution, ok)
		},
	}

	solveCmd.Flags().StringVarP(&solveopts.out, "output", "o", "solution.yaml", "where to write the solution")
	solveCmd.Flags().StringVarP(&solveopts.backend, "backend", "b", dhskernel.BackendBacktrack, "solver backend for the kernel (backtrack, sat)")
	solveCmd.Flags().BoolVar(&solveopts.nokernel, "no-kernel", false, "solve the instance without reducing it first")
	solveCmd.Flags().BoolVar(&solveopts.minimum, "minimum", false, "ignore k and search a minimum hitting set with the SAT backend")
	solveCmd.Flags().BoolVar(&solveopts.verifyCrown, "verify-crown", false, "reject crowns which are not fully matched")
	solveCmd.Flags().BoolVar(&solveopts.checkInvariants, "check-invariants", false, "recompute all degrees after every reduction stage")
	return solveCmd
}

func solveKernel(backend string, kernel *hypergraph.Instance, partial []hypergraph.Vertex) ([]hypergraph.Vertex, bool, error) {
	switch backend {
	case dhskernel.BackendBacktrack:
		solution, ok := solver.Solve(kernel, partial)
		return solution, ok, nil
	case dhskernel.BackendSAT:
		// the kernel already carries the partial solution
		solution, ok := sat.Solve(kernel)
		return solution, ok, nil
	default:
		return nil, false, fmt.Errorf("unknown backend %s", backend)
	}
}

func writeSolution(original *hypergraph.Instance, name string, result *reducer.KernelResult, solution []hypergraph.Vertex, ok bool) error {
	if ok {
		if !original.Covers(solution) {
			return fmt.Errorf("solution %v does not hit every edge of %s", solution, name)
		}
		logrus.Infof("Found hitting set with %d vertices: %v.", len(solution), solution)
	} else {
		logrus.Info("No hitting set found.")
	}
	out := toResult(name, result, solution)
	if !ok {
		out.Outcome = string(reducer.Infeasible)
	}
	logrus.Infof("Writing result to %s.", solveopts.out)
	return instance.WriteResultFile(solveopts.out, out)
}
