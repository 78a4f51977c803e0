// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

const (
	modeClass      = "class"
	modeFunctional = "functional"

	statusPass     = "pass"
	statusMismatch = "mismatch"
	statusError    = "error"
)

// caseOutcome is one row of the report.
type caseOutcome struct {
	Case   string `json:"case"`
	Mode   string `json:"mode"`
	Status string `json:"status"`
	Stage  string `json:"stage,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// report is the full sweep output.
type report struct {
	Config SweepConfig   `json:"config"`
	Total  int           `json:"total"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Cases  []caseOutcome `json:"cases"`
}

func newReport(cfg SweepConfig, outcomes []caseOutcome) *report {
	r := &report{Config: cfg, Total: len(outcomes), Cases: outcomes}
	for _, o := range outcomes {
		if o.Status == statusPass {
			r.Passed++
		} else {
			r.Failed++
		}
	}

	return r
}

func printReportJSON(w io.Writer, r *report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// printReportTable lists failures in full and summarises passes.
func printReportTable(w io.Writer, r *report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tMODE\tSTATUS\tSTAGE")
	for _, o := range r.Cases {
		stage := o.Stage
		if stage == "" {
			stage = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Case, o.Mode, o.Status, stage)
	}
	_ = tw.Flush()

	for _, o := range r.Cases {
		if o.Status != statusPass {
			fmt.Fprintf(w, "\n%s (%s): %s\n", o.Case, o.Mode, o.Detail)
		}
	}
	fmt.Fprintf(w, "\n%d cases, %d passed, %d failed (seed %d, atol %g)\n",
		r.Total, r.Passed, r.Failed, r.Config.Seed, r.Config.Atol)
}
