/*
 * config.go, part of dftcxx.
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

// Package config loads the YAML configuration of the beckegrid command:
// the settings of the molecular grid and the molecule to build it for.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	chem "github.com/rkalescky/dftcxx"
	"github.com/rkalescky/dftcxx/grid"
	"github.com/rkalescky/dftcxx/quad"
	v3 "github.com/rkalescky/dftcxx/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Config holds the whole configuration.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Molecule MoleculeConfig `yaml:"molecule"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GridConfig configures the molecular grid.
type GridConfig struct {
	// coarse, medium, fine or ultrafine
	Fineness string `yaml:"fineness"`

	// Becke iterations, at least 1
	SmoothingOrder int `yaml:"smoothing_order"`

	// becke or mura-knowles, and the scale for the latter
	Radial      string  `yaml:"radial"`
	RadialScale float64 `yaml:"radial_scale"`

	SizeAdjust bool `yaml:"size_adjust"`

	// 0 uses all the CPUs
	Cpus int `yaml:"cpus"`
}

// AtomConfig is one atom given inline.
type AtomConfig struct {
	Symbol   string    `yaml:"symbol"`
	Position []float64 `yaml:"position"`
}

// MoleculeConfig describes the molecule, either inline or as an XYZ file.
type MoleculeConfig struct {
	// XYZ file, coordinates in A
	XYZ string `yaml:"xyz,omitempty"`

	// Inline atoms, in Units (bohr or angstrom)
	Atoms []AtomConfig `yaml:"atoms,omitempty"`
	Units string       `yaml:"units"`

	Charge int `yaml:"charge,omitempty"`

	// sto-3g or none
	Basis string `yaml:"basis"`

	// Density matrix rows in the order of the basis functions. Optional.
	Density [][]float64 `yaml:"density,omitempty"`

	// Number of electrons to renormalize the density to. If 0, the number
	// of electrons of the neutral molecule minus the charge is used.
	Electrons float64 `yaml:"electrons,omitempty"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ZapLevel returns the zap level for Level. An empty Level is info.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("invalid logging level: %w", err)
	}
	return lvl, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Fineness:       "medium",
			SmoothingOrder: 3,
			Radial:         "becke",
			RadialScale:    5,
			SizeAdjust:     false,
			Cpus:           0,
		},
		Molecule: MoleculeConfig{
			Units: "bohr",
			Basis: "sto-3g",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file gives the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if l := os.Getenv("BECKEGRID_LOG_LEVEL"); l != "" {
		c.Logging.Level = l
	}
	if f := os.Getenv("BECKEGRID_FINENESS"); f != "" {
		c.Grid.Fineness = f
	}
	if s := os.Getenv("BECKEGRID_CPUS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			c.Grid.Cpus = n
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := quad.ParseFineness(c.Grid.Fineness); err != nil {
		return fmt.Errorf("invalid grid fineness: %w", err)
	}
	if _, err := quad.RadialByName(c.Grid.Radial); err != nil {
		return fmt.Errorf("invalid radial rule: %w", err)
	}
	if c.Grid.SmoothingOrder < 1 {
		return fmt.Errorf("smoothing_order must be at least 1, got %d", c.Grid.SmoothingOrder)
	}
	if c.Grid.Cpus < 0 {
		return fmt.Errorf("cpus can't be negative, got %d", c.Grid.Cpus)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	return c.Molecule.Validate()
}

// Validate checks that the molecule is given exactly once and is well formed.
func (m *MoleculeConfig) Validate() error {
	if (m.XYZ == "") == (len(m.Atoms) == 0) {
		return fmt.Errorf("give the molecule either as an xyz file or as inline atoms")
	}
	if _, err := m.unitFactor(); err != nil {
		return err
	}
	for i, a := range m.Atoms {
		if _, ok := chem.AtomicNumber(a.Symbol); !ok {
			return fmt.Errorf("atom %d: unknown element %q", i, a.Symbol)
		}
		if len(a.Position) != 3 {
			return fmt.Errorf("atom %d: position needs 3 coordinates, got %d", i, len(a.Position))
		}
	}
	switch strings.ToLower(m.Basis) {
	case "", "none", "sto-3g", "sto3g":
	default:
		return fmt.Errorf("unsupported basis set %q", m.Basis)
	}
	for i, row := range m.Density {
		if len(row) != len(m.Density) {
			return fmt.Errorf("density matrix row %d has %d elements, expected %d", i, len(row), len(m.Density))
		}
	}
	if m.Electrons < 0 {
		return fmt.Errorf("electrons can't be negative, got %g", m.Electrons)
	}
	return nil
}

func (m *MoleculeConfig) unitFactor() (float64, error) {
	switch strings.ToLower(m.Units) {
	case "", "bohr", "au":
		return 1, nil
	case "angstrom", "a":
		return chem.A2Bohr, nil
	}
	return 0, fmt.Errorf("unknown units %q", m.Units)
}

// Build returns the molecule, with the STO-3G basis set attached if requested.
func (m *MoleculeConfig) Build() (*chem.Molecule, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var mol *chem.Molecule
	var err error
	if m.XYZ != "" {
		mol, err = chem.XYZFileRead(m.XYZ)
		if err != nil {
			return nil, fmt.Errorf("failed to read molecule: %w", err)
		}
	} else {
		f, _ := m.unitFactor()
		ats := make([]*chem.Atom, len(m.Atoms))
		coords := v3.Zeros(len(m.Atoms))
		for i, a := range m.Atoms {
			ats[i], err = chem.NewAtom(a.Symbol, fmt.Sprintf("%s%d", a.Symbol, i+1))
			if err != nil {
				return nil, fmt.Errorf("failed to build atom %d: %w", i, err)
			}
			coords.SetVec(i, [3]float64{a.Position[0] * f, a.Position[1] * f, a.Position[2] * f})
		}
		mol, err = chem.NewMolecule(ats, coords, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to build molecule: %w", err)
		}
	}
	mol.SetCharge(m.Charge)
	switch strings.ToLower(m.Basis) {
	case "sto-3g", "sto3g":
		if _, err := chem.STO3G(mol); err != nil {
			return nil, fmt.Errorf("failed to build basis set: %w", err)
		}
	}
	return mol, nil
}

// DensityMatrix returns the density matrix, or nil if none was given.
// It returns an error if the matrix doesn't fit a basis with nbasis functions.
func (m *MoleculeConfig) DensityMatrix(nbasis int) (*mat.Dense, error) {
	n := len(m.Density)
	if n == 0 {
		return nil, nil
	}
	if n != nbasis {
		return nil, fmt.Errorf("density matrix is %dx%d but there are %d basis functions", n, n, nbasis)
	}
	D := mat.NewDense(n, n, nil)
	for i, row := range m.Density {
		if len(row) != n {
			return nil, fmt.Errorf("density matrix row %d has %d elements, expected %d", i, len(row), n)
		}
		D.SetRow(i, row)
	}
	return D, nil
}

// Options returns the grid options for this configuration, logging to logger.
func (g *GridConfig) Options(logger *zap.Logger) (*grid.Options, error) {
	f, err := quad.ParseFineness(g.Fineness)
	if err != nil {
		return nil, fmt.Errorf("invalid grid fineness: %w", err)
	}
	r, err := quad.RadialByName(g.Radial)
	if err != nil {
		return nil, fmt.Errorf("invalid radial rule: %w", err)
	}
	if mk, ok := r.(quad.MuraKnowles); ok && g.RadialScale > 0 {
		mk.Scale = g.RadialScale
		r = mk
	}
	o := grid.DefaultOptions()
	o.Fineness(f)
	o.Radial(r)
	o.SmoothingOrder(g.SmoothingOrder)
	o.SizeAdjust(g.SizeAdjust)
	o.Cpus(g.Cpus)
	o.Logger(logger)
	return o, nil
}
