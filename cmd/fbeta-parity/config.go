// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"slices"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/metrictest"
	"gopkg.in/yaml.v3"
)

var (
	errBadConfig     = errors.New("invalid sweep config")
	errUnknownFamily = errors.New("unknown family")
)

// SweepConfig is the YAML sweep description. Empty lists fall back to the
// default sweep; Families filters the fixture families by ID.
type SweepConfig struct {
	Seed           uint64                   `yaml:"seed" json:"seed"`
	Atol           float64                  `yaml:"atol" json:"atol"`
	Parallel       int                      `yaml:"parallel,omitempty" json:"parallel,omitempty"`
	Families       []string                 `yaml:"families,omitempty" json:"families,omitempty"`
	Averages       []classification.Average `yaml:"averages,omitempty" json:"averages,omitempty"`
	Betas          []float64                `yaml:"betas,omitempty" json:"betas,omitempty"`
	DDP            []bool                   `yaml:"ddp,omitempty" json:"ddp,omitempty"`
	DistSyncOnStep []bool                   `yaml:"dist_sync_on_step,omitempty" json:"dist_sync_on_step,omitempty"`
}

// defaultConfig matches the test suite's default sweep.
func defaultConfig() SweepConfig {
	s := metrictest.DefaultSweep()

	return SweepConfig{
		Seed:           metrictest.DefaultSeed,
		Atol:           metrictest.DefaultAtol,
		Parallel:       runtime.GOMAXPROCS(0),
		Averages:       s.Averages,
		Betas:          s.Betas,
		DDP:            s.DDP,
		DistSyncOnStep: s.DistSyncOnStep,
	}
}

// loadConfig reads path over the defaults; an empty path returns the defaults.
func loadConfig(path string) (SweepConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SweepConfig{}, fmt.Errorf("read config: %w", err)
	}
	var file SweepConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return SweepConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.overlay(file)

	return cfg, nil
}

// overlay copies every set field of o onto c.
func (c *SweepConfig) overlay(o SweepConfig) {
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Atol != 0 {
		c.Atol = o.Atol
	}
	if o.Parallel != 0 {
		c.Parallel = o.Parallel
	}
	if len(o.Families) > 0 {
		c.Families = o.Families
	}
	if len(o.Averages) > 0 {
		c.Averages = o.Averages
	}
	if len(o.Betas) > 0 {
		c.Betas = o.Betas
	}
	if len(o.DDP) > 0 {
		c.DDP = o.DDP
	}
	if len(o.DistSyncOnStep) > 0 {
		c.DistSyncOnStep = o.DistSyncOnStep
	}
}

func (c SweepConfig) validate() error {
	if math.IsNaN(c.Atol) || c.Atol <= 0 {
		return fmt.Errorf("%w: atol must be > 0, got %g", errBadConfig, c.Atol)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be >= 1, got %d", errBadConfig, c.Parallel)
	}
	for _, b := range c.Betas {
		if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
			return fmt.Errorf("%w: beta must be finite and > 0, got %g", errBadConfig, b)
		}
	}

	return nil
}

// sweep returns the parameter grid.
func (c SweepConfig) sweep() metrictest.Sweep {
	return metrictest.Sweep{
		Averages:       c.Averages,
		Betas:          c.Betas,
		DDP:            c.DDP,
		DistSyncOnStep: c.DistSyncOnStep,
	}
}

// selectFamilies filters all by the configured IDs, keeping fixture order.
func (c SweepConfig) selectFamilies(all []metrictest.FamilyCase) ([]metrictest.FamilyCase, error) {
	if len(c.Families) == 0 {
		return all, nil
	}
	for _, id := range c.Families {
		if !slices.ContainsFunc(all, func(f metrictest.FamilyCase) bool { return f.ID == id }) {
			return nil, fmt.Errorf("%w %q", errUnknownFamily, id)
		}
	}

	return slices.DeleteFunc(slices.Clone(all), func(f metrictest.FamilyCase) bool {
		return !slices.Contains(c.Families, f.ID)
	}), nil
}
