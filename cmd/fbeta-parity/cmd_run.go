// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvmetrics/metrictest"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type runFlags struct {
	configPath string
	seed       uint64
	atol       float64
	format     string
}

func newRunCommand() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the parity sweep",
		Long: `Run every (family, average, beta, ddp, dist-sync-on-step) case through the
stateful metric, and every non-ddp case through the functional metric.

Exits 1 when any case mismatches or errors, 2 on configuration errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommandE(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML sweep config")
	cmd.Flags().Uint64Var(&f.seed, "seed", metrictest.DefaultSeed, "Fixture seed (overrides config)")
	cmd.Flags().Float64Var(&f.atol, "atol", metrictest.DefaultAtol, "Absolute tolerance (overrides config)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func runCommandE(cmd *cobra.Command, f runFlags) error {
	if f.format != "table" && f.format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", f.format)
	}
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if cmd.Flags().Changed("atol") {
		cfg.Atol = f.atol
	}
	if err = cfg.validate(); err != nil {
		return err
	}

	rep, err := runSweep(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.format == "json" {
		if err = printReportJSON(out, rep); err != nil {
			return err
		}
	} else {
		printReportTable(out, rep)
	}
	if rep.Failed > 0 {
		return &ParityFailureError{Failed: rep.Failed, Total: rep.Total}
	}

	return nil
}

// runSweep builds fixtures and runs every case with at most cfg.Parallel in flight.
func runSweep(ctx context.Context, cfg SweepConfig) (*report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	in, err := metrictest.NewInputs(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("build fixtures: %w", err)
	}
	families, err := cfg.selectFamilies(metrictest.DefaultFamilies(in))
	if err != nil {
		return nil, err
	}
	cases := cfg.sweep().Cases(families)

	type job struct {
		c          metrictest.Case
		functional bool
	}
	jobs := make([]job, 0, len(cases)*2)
	for _, c := range cases {
		jobs = append(jobs, job{c: c})
		if !c.DDP && !c.DistSyncOnStep {
			jobs = append(jobs, job{c: c, functional: true})
		}
	}
	slog.Info("running parity sweep", "families", len(families), "cases", len(cases), "runs", len(jobs), "seed", cfg.Seed)

	start := time.Now()
	outcomes := make([]caseOutcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, j := range jobs {
		g.Go(func() error {
			var err error
			mode := modeClass
			if j.functional {
				mode = modeFunctional
				err = metrictest.RunFunctionalMetricTest(j.c.FunctionalTest(cfg.Atol))
			} else {
				err = metrictest.RunClassMetricTest(gctx, j.c.ClassTest(cfg.Atol))
			}
			outcomes[i] = newOutcome(j.c.Name(), mode, err)
			slog.Debug("case finished", "case", j.c.Name(), "mode", mode, "status", outcomes[i].Status)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	rep := newReport(cfg, outcomes)
	slog.Info("parity sweep finished", "total", rep.Total, "failed", rep.Failed, "elapsed", time.Since(start).Round(time.Millisecond))

	return rep, nil
}

// newOutcome classifies a runner error.
func newOutcome(name, mode string, err error) caseOutcome {
	o := caseOutcome{Case: name, Mode: mode, Status: statusPass}
	var mm *metrictest.MismatchError
	switch {
	case err == nil:
	case errors.As(err, &mm):
		o.Status, o.Stage, o.Detail = statusMismatch, mm.Stage, mm.Diff
	default:
		o.Status, o.Detail = statusError, err.Error()
	}

	return o
}
