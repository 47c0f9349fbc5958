package main

import (
	"fmt"
	"os"

	"github.com/rmohr/dhskernel/pkg/api/dhskernel"
	"github.com/rmohr/dhskernel/pkg/instance"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	logLevel string
	config   string
}

var rootopts = rootOpts{}

// config is loaded before any subcommand runs
var config = dhskernel.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "dhskernel",
	Short: "dhskernel reduces d-Hitting-Set instances to a kernel and solves them",
	Long: `The tool applies polynomial time reduction rules to d-Hitting-Set instances until the remaining kernel
only depends on the budget k and the edge size d. Kernels can be solved exhaustively or with a SAT solver`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := instance.LoadConfig(rootopts.config)
		if err != nil {
			return err
		}
		config = loaded
		level := config.LogLevel
		if cmd.Flags().Changed("log-level") || level == "" {
			level = rootopts.logLevel
		}
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %s: %v", level, err)
		}
		logrus.SetLevel(parsed)
		return nil
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&rootopts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&rootopts.config, "config", "c", "", "config file, defaults to dhskernel/config.yaml in the XDG config directories")
	rootCmd.AddCommand(NewKernelizeCmd())
	rootCmd.AddCommand(NewSolveCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewCompareCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
