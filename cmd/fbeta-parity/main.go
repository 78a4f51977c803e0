// SPDX-License-Identifier: MIT

// Command fbeta-parity runs the F-beta parity sweep outside go test and
// reports every case as a table or JSON.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	ExitSuccess    = 0 // every case matched the reference
	ExitParityFail = 1 // at least one case mismatched or errored
	ExitError      = 2 // configuration or runtime error
)

// ParityFailureError means the sweep ran but some cases failed.
type ParityFailureError struct {
	Failed int
	Total  int
}

func (e *ParityFailureError) Error() string {
	return fmt.Sprintf("parity sweep: %d of %d cases failed", e.Failed, e.Total)
}

// exitCode maps an execute error onto the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var pf *ParityFailureError
	if errors.As(err, &pf) {
		return ExitParityFail
	}

	return ExitError
}

func main() {
	err := execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}
