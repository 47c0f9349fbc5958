package main

import (
	"fmt"
	"os"

	"github.com/rmohr/dhskernel/pkg/instance"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateOpts struct {
	vertices int
	edges    int
	d        int
	k        int
	seed     int64
	name     string
	out      string
	force    bool
}

var generateopts = generateOpts{}

func NewGenerateCmd() *cobra.Command {

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "creates a random instance",
		Long:  `creates an instance whose edges are uniformly sampled d-subsets of the vertices`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(generateopts.out); !os.IsNotExist(err) && !generateopts.force {
				return fmt.Errorf("instance file %s already exists", generateopts.out)
			}
			h, err := instance.Random(generateopts.vertices, generateopts.edges, generateopts.d, generateopts.k, generateopts.seed)
			if err != nil {
				return err
			}
			name := generateopts.name
			if name == "" {
				name = fmt.Sprintf("random-%d-%d-%d-%d", generateopts.vertices, generateopts.edges, generateopts.d, generateopts.seed)
			}
			logrus.Infof("Writing %s to %s.", name, generateopts.out)
			return instance.WriteInstanceFile(generateopts.out, h.ToAPI(name))
		},
	}

	generateCmd.Flags().IntVarP(&generateopts.vertices, "vertices", "n", 20, "number of vertices")
	generateCmd.Flags().IntVarP(&generateopts.edges, "edges", "m", 30, "number of edges")
	generateCmd.Flags().IntVarP(&generateopts.d, "d", "d", 3, "size of every edge")
	generateCmd.Flags().IntVarP(&generateopts.k, "k", "k", 5, "budget")
	generateCmd.Flags().Int64VarP(&generateopts.seed, "seed", "s", 1, "random seed")
	generateCmd.Flags().StringVar(&generateopts.name, "name", "", "instance name")
	generateCmd.Flags().StringVarP(&generateopts.out, "output", "o", "instance.yaml", "where to write the instance")
	generateCmd.Flags().BoolVarP(&generateopts.force, "force", "f", false, "overwrite an existing instance file")
	return generateCmd
}
