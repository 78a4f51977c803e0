// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvmetrics/classification"
	"github.com/katalvlaran/lvmetrics/metrictest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, metrictest.DefaultSeed, cfg.Seed)
	assert.Equal(t, metrictest.DefaultAtol, cfg.Atol)
	assert.Equal(t, classification.Averages(), cfg.Averages)
	assert.Equal(t, []float64{0.5, 1, 2}, cfg.Betas)
	assert.Empty(t, cfg.Families)
	require.NoError(t, cfg.validate())
}

func TestLoadConfigOverlay(t *testing.T) {
	p := writeConfig(t, `
seed: 7
averages: [macro, none]
betas: [2]
ddp: [false]
families: [multiclass, binary]
`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, metrictest.DefaultAtol, cfg.Atol, "unset fields keep defaults")
	assert.Equal(t, []classification.Average{classification.AverageMacro, classification.AverageNone}, cfg.Averages)
	assert.Equal(t, []float64{2}, cfg.Betas)
	assert.Equal(t, []bool{false}, cfg.DDP)
	assert.Equal(t, []bool{true, false}, cfg.DistSyncOnStep)

	in, err := metrictest.NewInputs(cfg.Seed)
	require.NoError(t, err)
	fams, err := cfg.selectFamilies(metrictest.DefaultFamilies(in))
	require.NoError(t, err)
	require.Len(t, fams, 2)
	assert.Equal(t, "binary", fams[0].ID, "fixture order is kept")
	assert.Equal(t, "multiclass", fams[1].ID)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "averages: [samples]\n"))
	require.ErrorIs(t, err, classification.ErrUnknownAverage)

	_, err = loadConfig(writeConfig(t, "seed: [1, 2]\n"))
	require.Error(t, err)

	cfg := defaultConfig()
	cfg.Betas = []float64{0}
	require.ErrorIs(t, cfg.validate(), errBadConfig)

	cfg = defaultConfig()
	cfg.Atol = -1
	require.ErrorIs(t, cfg.validate(), errBadConfig)

	cfg = defaultConfig()
	cfg.Families = []string{"ternary"}
	_, err = cfg.selectFamilies(nil)
	require.ErrorIs(t, err, errUnknownFamily)
}
