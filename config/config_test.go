/*
 * config_test.go, part of dftcxx.
 *
 * Copyright 2024 The dftcxx authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rkalescky/dftcxx"
	"github.com/rkalescky/dftcxx/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const h2yaml = `
grid:
  fineness: fine
  radial: mura-knowles
  radial_scale: 7
  size_adjust: true
  cpus: 2
molecule:
  units: angstrom
  atoms:
    - symbol: H
      position: [0, 0, 0]
    - symbol: H
      position: [0, 0, 0.74]
  density:
    - [0.6, 0.6]
    - [0.6, 0.6]
logging:
  level: debug
`

func TestDefaultConfig(Te *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(Te, "medium", cfg.Grid.Fineness)
	assert.Equal(Te, 3, cfg.Grid.SmoothingOrder)
	assert.Equal(Te, "sto-3g", cfg.Molecule.Basis)
	//no molecule given
	assert.Error(Te, cfg.Validate())
}

func TestLoadMissing(Te *testing.T) {
	Te.Setenv("BECKEGRID_FINENESS", "")
	Te.Setenv("BECKEGRID_CPUS", "")
	Te.Setenv("BECKEGRID_LOG_LEVEL", "")
	cfg, err := Load(filepath.Join(Te.TempDir(), "nothere.yaml"))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultConfig(), cfg)
}

func TestLoad(Te *testing.T) {
	Te.Setenv("BECKEGRID_FINENESS", "")
	Te.Setenv("BECKEGRID_CPUS", "")
	Te.Setenv("BECKEGRID_LOG_LEVEL", "")
	path := filepath.Join(Te.TempDir(), "h2.yaml")
	require.NoError(Te, os.WriteFile(path, []byte(h2yaml), 0644))
	cfg, err := Load(path)
	require.NoError(Te, err)
	require.NoError(Te, cfg.Validate())
	assert.Equal(Te, "fine", cfg.Grid.Fineness)
	//not in the file, so the default stays
	assert.Equal(Te, 3, cfg.Grid.SmoothingOrder)
	lvl, err := cfg.Logging.ZapLevel()
	require.NoError(Te, err)
	assert.Equal(Te, zapcore.DebugLevel, lvl)

	o, err := cfg.Grid.Options(zap.NewNop())
	require.NoError(Te, err)
	assert.Equal(Te, quad.Fine, o.Fineness())
	assert.Equal(Te, quad.MuraKnowles{Scale: 7}, o.Radial())
	assert.True(Te, o.SizeAdjust())
	assert.Equal(Te, 2, o.Cpus())

	mol, err := cfg.Molecule.Build()
	require.NoError(Te, err)
	require.Equal(Te, 2, mol.Len())
	assert.InDelta(Te, 0.74*chem.A2Bohr, mol.Coords.Dist(0, 1), 1e-12)
	require.NotNil(Te, mol.Basis())
	assert.Equal(Te, 2, mol.Basis().Len())
	assert.Equal(Te, 2, mol.Nelec())

	D, err := cfg.Molecule.DensityMatrix(mol.Basis().Len())
	require.NoError(Te, err)
	assert.Equal(Te, 0.6, D.At(1, 0))
	_, err = cfg.Molecule.DensityMatrix(3)
	assert.Error(Te, err)
}

func TestEnvOverrides(Te *testing.T) {
	Te.Setenv("BECKEGRID_FINENESS", "ultrafine")
	Te.Setenv("BECKEGRID_CPUS", "3")
	Te.Setenv("BECKEGRID_LOG_LEVEL", "debug")
	cfg, err := Load(filepath.Join(Te.TempDir(), "nothere.yaml"))
	require.NoError(Te, err)
	assert.Equal(Te, "ultrafine", cfg.Grid.Fineness)
	assert.Equal(Te, 3, cfg.Grid.Cpus)
	assert.Equal(Te, "debug", cfg.Logging.Level)
}

func TestZapLevel(Te *testing.T) {
	for level, want := range map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := LoggingConfig{Level: level}.ZapLevel()
		require.NoError(Te, err, level)
		assert.Equal(Te, want, got, level)
	}
	_, err := LoggingConfig{Level: "loud"}.ZapLevel()
	assert.Error(Te, err)
}

func TestSaveLoad(Te *testing.T) {
	Te.Setenv("BECKEGRID_FINENESS", "")
	Te.Setenv("BECKEGRID_CPUS", "")
	Te.Setenv("BECKEGRID_LOG_LEVEL", "")
	path := filepath.Join(Te.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Grid.Fineness = "coarse"
	cfg.Molecule.Atoms = []AtomConfig{{Symbol: "He", Position: []float64{0, 0, 0}}}
	require.NoError(Te, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, cfg, loaded)
}

func TestXYZMolecule(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "he2.xyz")
	require.NoError(Te, os.WriteFile(path, []byte("2\nhelium dimer\nHe 0 0 0\nHe 0 0 3.0\n"), 0644))
	m := MoleculeConfig{XYZ: path, Basis: "none", Charge: 1}
	mol, err := m.Build()
	require.NoError(Te, err)
	assert.Nil(Te, mol.Basis())
	assert.Equal(Te, 3, mol.Nelec())
	assert.InDelta(Te, 3.0*chem.A2Bohr, mol.Coords.Dist(0, 1), 1e-12)
}

func TestValidate(Te *testing.T) {
	good := func() *Config {
		c := DefaultConfig()
		c.Molecule.Atoms = []AtomConfig{{Symbol: "H", Position: []float64{0, 0, 0}}}
		return c
	}
	require.NoError(Te, good().Validate())
	bad := map[string]func(c *Config){
		"fineness":  func(c *Config) { c.Grid.Fineness = "extreme" },
		"radial":    func(c *Config) { c.Grid.Radial = "simpson" },
		"order":     func(c *Config) { c.Grid.SmoothingOrder = 0 },
		"cpus":      func(c *Config) { c.Grid.Cpus = -1 },
		"both":      func(c *Config) { c.Molecule.XYZ = "mol.xyz" },
		"units":     func(c *Config) { c.Molecule.Units = "furlong" },
		"element":   func(c *Config) { c.Molecule.Atoms[0].Symbol = "Xx" },
		"position":  func(c *Config) { c.Molecule.Atoms[0].Position = []float64{0, 0} },
		"basis":     func(c *Config) { c.Molecule.Basis = "6-31G*" },
		"density":   func(c *Config) { c.Molecule.Density = [][]float64{{1, 0}, {0}} },
		"electrons": func(c *Config) { c.Molecule.Electrons = -2 },
		"logging":   func(c *Config) { c.Logging.Level = "loud" },
	}
	for name, breakit := range bad {
		c := good()
		breakit(c)
		assert.Error(Te, c.Validate(), name)
	}
}
