/*
 * main.go, part of dftcxx.
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

// Command beckegrid builds the Becke integration grid for a molecule, integrates
// the electron density given as a density matrix on it, and optionally writes
// the grid to a compressed dump.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rkalescky/dftcxx/config"
	"github.com/rkalescky/dftcxx/grid"
	"github.com/rkalescky/dftcxx/gridio"
	"github.com/rkalescky/dftcxx/gridplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	fineness   string
	dumpPath   string
	plotDir    string
	verbose    bool

	// Loaded by PersistentPreRunE
	conf   *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "beckegrid",
	Short: "Becke multicenter integration grids for molecules",
	Long: `beckegrid builds the Becke multicenter integration grid for the molecule
described in the configuration file, and reports the number of points.

If the configuration has a density matrix, the density is evaluated on the grid,
integrated, and renormalized to the number of electrons of the molecule.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(conf.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if fineness != "" {
			conf.Grid.Fineness = fineness
		}
		return run(conf, dumpPath, plotDir, logger, cmd.OutOrStdout())
	},
}

// newLogger returns a production logger at the level of lc, or at debug
// level if verbose is set.
func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	lvl, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// run builds the grid described by cfg, integrates the density if there is
// one, writes the dump if dump is not empty, plots the radial profiles of the atoms
// to plots if it is not empty, and reports to out.
func run(cfg *config.Config, dump, plots string, logger *zap.Logger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	mol, err := cfg.Molecule.Build()
	if err != nil {
		return err
	}
	opts, err := cfg.Grid.Options(logger)
	if err != nil {
		return err
	}
	g, err := grid.New(mol, opts)
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}
	nrad, nang := g.Shape()
	logger.Info("grid built",
		zap.Int("atoms", mol.Len()),
		zap.Stringer("fineness", g.Fineness()),
		zap.Int("radial", nrad),
		zap.Int("angular", nang),
		zap.Int("points", g.Len()))
	fmt.Fprintf(out, "points: %d\n", g.Len())

	nbasis := 0
	if mol.Basis() != nil {
		nbasis = mol.Basis().Len()
	}
	D, err := cfg.Molecule.DensityMatrix(nbasis)
	if err != nil {
		return err
	}
	if D != nil {
		if err := g.SetDensity(D); err != nil {
			return fmt.Errorf("failed to set density: %w", err)
		}
		n := g.CalculateDensity()
		target := cfg.Molecule.Electrons
		if target == 0 {
			target = float64(mol.Nelec())
		}
		if err := g.ScaleDensity(target); err != nil {
			return fmt.Errorf("failed to renormalize density: %w", err)
		}
		logger.Info("density integrated", zap.Float64("electrons", n), zap.Float64("target", target))
		fmt.Fprintf(out, "electrons: %.8f\n", n)
		fmt.Fprintf(out, "renormalized: %.8f\n", g.CalculateDensity())
	}

	if plots != "" {
		if err := plotProfiles(g, plots, logger); err != nil {
			return err
		}
	}
	if dump == "" {
		return nil
	}
	w, err := gridio.NewWriter(dump, map[string]string{"basis": cfg.Molecule.Basis})
	if err != nil {
		return err
	}
	if err := w.WriteGrid(g); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	logger.Info("grid written", zap.String("file", dump))
	return nil
}

func plotProfiles(g *grid.MolecularGrid, dir string, logger *zap.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create plot directory: %w", err)
	}
	mol := g.Molecule()
	for at := 0; at < mol.Len(); at++ {
		P, err := gridplot.RadialProfile(g, at)
		if err != nil {
			return err
		}
		name := filepath.Join(dir, fmt.Sprintf("profile_%03d.png", at+1))
		if err := P.Plot(fmt.Sprintf("Atom %d, %s grid", at+1, g.Fineness()), name); err != nil {
			return err
		}
		logger.Debug("profile plotted", zap.Int("atom", at), zap.String("file", name))
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "beckegrid.yaml", "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&fineness, "fineness", "f", "", "Grid fineness (coarse, medium, fine, ultrafine), overrides the configuration")
	rootCmd.PersistentFlags().StringVarP(&dumpPath, "dump", "d", "", "Write the grid to this file")
	rootCmd.PersistentFlags().StringVarP(&plotDir, "plot", "p", "", "Plot the radial profile of each atom in this directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
