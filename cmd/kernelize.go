package main

import (
	"github.com/rmohr/dhskernel/pkg/instance"
	"github.com/rmohr/dhskernel/pkg/reducer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type kernelizeOpts struct {
	out             string
	verifyCrown     bool
	checkInvariants bool
}

var kernelizeopts = kernelizeOpts{}

func NewKernelizeCmd() *cobra.Command {

	kernelizeCmd := &cobra.Command{
		Use:   "kernelize <instance>",
		Short: "reduces an instance to its kernel",
		Long: `applies all reduction rules to the given instance and writes the kernel together with the forced vertices.
Instance files may be compressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, in, err := instance.LoadInstance(args[0])
			if err != nil {
				return err
			}
			logrus.Infof("Loaded %s.", in)
			result, err := reducer.NewKernelizer(kernelizerOptions(cmd, kernelizeopts.verifyCrown, kernelizeopts.checkInvariants)).Kernelize(h)
			if err != nil {
				return err
			}
			logrus.Infof("Writing result to %s.", kernelizeopts.out)
			return instance.WriteResultFile(kernelizeopts.out, toResult(in.Name, result, nil))
		},
	}

	kernelizeCmd.Flags().StringVarP(&kernelizeopts.out, "output", "o", "kernel.yaml", "where to write the kernel")
	kernelizeCmd.Flags().BoolVar(&kernelizeopts.verifyCrown, "verify-crown", false, "reject crowns which are not fully matched")
	kernelizeCmd.Flags().BoolVar(&kernelizeopts.checkInvariants, "check-invariants", false, "recompute all degrees after every reduction stage")
	return kernelizeCmd
}

// kernelizerOptions merges the config file with explicitly set flags.
func kernelizerOptions(cmd *cobra.Command, verifyCrown, checkInvariants bool) reducer.Options {
	opts := reducer.Options{
		VerifyCrown:     config.VerifyCrown,
		CheckInvariants: config.CheckInvariants,
		WBound:          reducer.WBound(config.WBound),
	}
	if cmd.Flags().Changed("verify-crown") {
		opts.VerifyCrown = verifyCrown
	}
	if cmd.Flags().Changed("check-invariants") {
		opts.CheckInvariants = checkInvariants
	}
	return opts
}
