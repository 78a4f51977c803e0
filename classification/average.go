// SPDX-License-Identifier: MIT

package classification

import (
	"fmt"
	"strings"
)

// Average selects how per-class scores collapse into the reported value.
type Average int

const (
	// AverageMicro sums TP/FP/FN over classes before scoring.
	AverageMicro Average = iota
	// AverageMacro is the unweighted mean of per-class scores.
	AverageMacro
	// AverageWeighted weights per-class scores by support (TP+FN).
	AverageWeighted
	// AverageNone reports one score per class.
	AverageNone
)

var averageNames = [...]string{
	AverageMicro:    "micro",
	AverageMacro:    "macro",
	AverageWeighted: "weighted",
	AverageNone:     "none",
}

// Averages lists every mode in declaration order.
func Averages() []Average {
	return []Average{AverageMicro, AverageMacro, AverageWeighted, AverageNone}
}

// String returns the lower-case mode name.
func (a Average) String() string {
	if !a.valid() {
		return fmt.Sprintf("Average(%d)", int(a))
	}

	return averageNames[a]
}

func (a Average) valid() bool { return a >= AverageMicro && a <= AverageNone }

// ParseAverage maps "micro", "macro", "weighted" and "none" (case-insensitive)
// to an Average. The empty string selects micro.
func ParseAverage(s string) (Average, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return AverageMicro, nil
	}
	for i, n := range averageNames {
		if n == name {
			return Average(i), nil
		}
	}

	return 0, fmt.Errorf("ParseAverage(%q): %w", s, ErrUnknownAverage)
}

// MarshalText implements encoding.TextMarshaler.
func (a Average) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("Average.MarshalText(%d): %w", int(a), ErrUnknownAverage)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Average) UnmarshalText(b []byte) error {
	v, err := ParseAverage(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
