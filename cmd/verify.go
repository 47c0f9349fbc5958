package main

import (
	"fmt"

	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/rmohr/dhskernel/pkg/instance"
	"github.com/rmohr/dhskernel/pkg/sat"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewVerifyCmd() *cobra.Command {

	verifyCmd := &cobra.Command{
		Use:   "verify <instance> <result>",
		Short: "verify a solution against an instance",
		Long:  `checks that the solution of a result file satisfies the CNF formula of the instance and fits into its budget`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, in, err := instance.LoadInstance(args[0])
			if err != nil {
				return err
			}
			result, err := instance.LoadResultFile(args[1])
			if err != nil {
				return err
			}
			return verify(h, in.Name, hypergraph.Vertices(result.Solution))
		},
	}
	return verifyCmd
}

func verify(h *hypergraph.Instance, name string, solution []hypergraph.Vertex) error {
	if len(solution) == 0 && h.EdgeCount() > 0 {
		return fmt.Errorf("result for %s contains no solution", name)
	}
	if len(solution) > h.K() {
		return fmt.Errorf("solution has %d vertices, but the budget of %s is %d", len(solution), name, h.K())
	}
	if !sat.Verify(h, solution) {
		return fmt.Errorf("solution %v does not hit every edge of %s", solution, name)
	}
	log.Infof("Solution %v hits every edge of %s.", solution, name)
	return nil
}
