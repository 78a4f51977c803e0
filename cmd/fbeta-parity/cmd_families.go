// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/lvmetrics/metrictest"
	"github.com/spf13/cobra"
)

func newFamiliesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the fixture families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := metrictest.NewInputs(metrictest.DefaultSeed)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tFORM\tCLASSES\tPREDS\tTARGET")
			for _, f := range metrictest.DefaultFamilies(in) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%v\t%v\n",
					f.ID, f.Family.Kind, f.Family.Form, f.NumClasses, f.Input.Preds.Shape(), f.Input.Target.Shape())
			}

			return tw.Flush()
		},
	}
}
