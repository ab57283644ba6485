package main

import (
	"os"

	"github.com/covid19-impact/estimator/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewEstimatorCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewEstimatorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimator [flags] [options]",
		Short: "estimator projects the impact of COVID-19 on a region.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdEstimate())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
