package main

import (
	"github.com/covid19-impact/estimator/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "estimator-api",
	Short: "Serves COVID-19 impact estimations over HTTP. Configured through COVID19_ESTIMATOR_* environment variables.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cli.NewCmdVersion())
}
