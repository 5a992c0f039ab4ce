/*
 * grid.go, part of dftcxx.
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

package grid

import (
	"fmt"
	"math"
	"time"

	chem "github.com/rkalescky/dftcxx"
	"github.com/rkalescky/dftcxx/quad"
	v3 "github.com/rkalescky/dftcxx/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Molecule is what a MolecularGrid needs to know about a molecule:
// where its atoms are and, optionally, its basis set. If it also implements
// chem.AtomSizer, the radial grids are scaled to the size of each atom.
// *chem.Molecule implements it.
type Molecule interface {
	chem.Geometry
	//BasisSet returns the basis set of the molecule, or nil if there is none.
	BasisSet() chem.BasisSet
}

// MolecularGrid is the Becke integration grid for a molecule: the union
// of the atomic grids of all atoms, with weights that include the Becke
// partition, so that the integral of a field over space is the weighted
// sum of its values on the points.
type MolecularGrid struct {
	mol       Molecule
	basis     chem.BasisSet
	opts      *Options
	fineness  quad.Fineness
	partition *Partition
	angular   int
	radial    int
	points    []Point
	log       *zap.Logger
}

// New builds the grid for mol. If an Options is not given, DefaultOptions
// is used. The points are stored atom by atom, and for each atom radial
// shell by radial shell, with the angular points of a shell together.
// If the molecule has a basis set, the amplitudes of the basis functions are evaluated
// on every point. It returns a Configuration error for unsupported options, and a
// Geometry error if two atoms are at the same position.
func New(mol Molecule, options ...*Options) (*MolecularGrid, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if mol == nil || mol.Len() == 0 {
		return nil, newError(Precondition, "New", "Empty molecule")
	}
	g := &MolecularGrid{mol: mol, basis: mol.BasisSet(), opts: o, fineness: o.Fineness(), log: o.Logger()}
	if err := g.build(); err != nil {
		if e, ok := err.(chem.Error); ok {
			e.Decorate("New")
		}
		return nil, err
	}
	return g, nil
}

func (g *MolecularGrid) build() error {
	start := time.Now()
	level, err := quad.Levels(g.fineness)
	if err != nil {
		return newError(Configuration, "build", err.Error())
	}
	radial := g.opts.Radial()
	if radial == nil {
		return newError(Configuration, "build", "No radial rule")
	}
	g.partition, err = NewPartition(g.mol, g.opts.SmoothingOrder(), g.opts.SizeAdjust())
	if err != nil {
		return err
	}
	dirs, wang := level.Angular.Nodes()
	natoms := g.mol.Len()
	g.radial = level.RadialPoints
	g.angular = len(dirs)
	g.points = make([]Point, natoms*g.radial*g.angular)
	g.log.Debug("building molecular grid",
		zap.Int("atoms", natoms),
		zap.Stringer("fineness", g.fineness),
		zap.String("radial", radial.Name()),
		zap.Int("radialPoints", g.radial),
		zap.String("angular", level.Angular.Name()),
		zap.Int("angularDegree", level.Angular.Degree()),
		zap.Int("points", len(g.points)),
		zap.Int("cpus", g.opts.Cpus()))

	sizer, sized := g.mol.(chem.AtomSizer)
	var eg errgroup.Group
	eg.SetLimit(g.opts.Cpus())
	for at := 0; at < natoms; at++ {
		rm := 1.0
		if sized {
			rm = sizer.RadialScale(at)
		}
		r, wrad := radial.Nodes(g.radial, rm)
		if len(r) != g.radial {
			eg.Wait()
			return newError(Configuration, "build", fmt.Sprintf("Radial rule %s gave %d points, %d requested", radial.Name(), len(r), g.radial))
		}
		center := g.mol.Position(at)
		ref := NewAtomRef(g.mol, at)
		for k := range r {
			at, k := at, k
			base := (at*g.radial + k) * g.angular
			eg.Go(func() error {
				d := make([]float64, natoms)
				cell := make([]float64, natoms)
				jacobian := 4 * math.Pi * r[k] * r[k]
				for l, u := range dirs {
					p := &g.points[base+l]
					p.init([3]float64{center[0] + r[k]*u[0], center[1] + r[k]*u[1], center[2] + r[k]*u[2]})
					p.SetAtom(ref)
					p.SetWeight(wrad[k] * wang[l] * jacobian)
					p.MultiplyWeight(g.partition.weight(p.r, at, d, cell))
					if g.basis != nil {
						p.SetBasisFuncAmp(g.basis)
					}
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	g.log.Debug("molecular grid built", zap.Int("points", len(g.points)), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// parallel calls f on contiguous chunks [lo,hi) of the points, using
// up to Cpus goroutines.
func (g *MolecularGrid) parallel(f func(lo, hi int) error) error {
	n := len(g.points)
	cpus := g.opts.Cpus()
	chunk := (n + cpus - 1) / cpus
	if chunk == 0 {
		return nil
	}
	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > n {
			hi = n
		}
		eg.Go(func() error { return f(lo, hi) })
	}
	return eg.Wait()
}

// SetBasisFuncAmp evaluates the basis set of the molecule on all the points
// again. Use it if the basis set changed after the grid was built. It returns
// a Precondition error if the molecule has no basis set.
func (g *MolecularGrid) SetBasisFuncAmp() error {
	g.basis = g.mol.BasisSet()
	if g.basis == nil || g.basis.Len() == 0 {
		return newError(Precondition, "MolecularGrid.SetBasisFuncAmp", "The molecule has no basis set")
	}
	return g.parallel(func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			g.points[i].SetBasisFuncAmp(g.basis)
		}
		return nil
	})
}

// SetDensity sets the density on every point from the density matrix P.
// It returns a Precondition error if the amplitudes of the basis functions have not
// been set, or if P is not nbasis x nbasis.
func (g *MolecularGrid) SetDensity(P mat.Matrix) error {
	if g.basis == nil || g.basis.Len() == 0 {
		return newError(Precondition, "MolecularGrid.SetDensity", "Basis function amplitudes not set")
	}
	if err := checkDensityMatrix(P, g.basis.Len()); err != nil {
		err.Decorate("MolecularGrid.SetDensity")
		return err
	}
	err := g.parallel(func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := g.points[i].SetDensity(P); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if e, ok := err.(chem.Error); ok {
			e.Decorate("MolecularGrid.SetDensity")
		}
		return err
	}
	g.log.Debug("density set", zap.Int("basis", g.basis.Len()), zap.Int("points", len(g.points)))
	return nil
}

// CalculateDensity returns the integrated density, i.e. the number of electrons.
func (g *MolecularGrid) CalculateDensity() float64 {
	return floats.Dot(g.Weights(), g.Densities())
}

// ScaleDensity scales the density on every point so that it integrates to nelec.
// It returns a Precondition error if the current density integrates to zero.
func (g *MolecularGrid) ScaleDensity(nelec float64) error {
	total := g.CalculateDensity()
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return newError(Precondition, "MolecularGrid.ScaleDensity", fmt.Sprintf("Can't scale a density that integrates to %g", total))
	}
	f := nelec / total
	for i := range g.points {
		g.points[i].ScaleDensity(f)
	}
	g.log.Debug("density scaled", zap.Float64("integrated", total), zap.Float64("target", nelec), zap.Float64("factor", f))
	return nil
}

// Integrate returns the weighted sum of f over all the points.
func (g *MolecularGrid) Integrate(f func(p *Point) float64) float64 {
	var sum float64
	for i := range g.points {
		p := &g.points[i]
		sum += p.w * f(p)
	}
	return sum
}

// Len returns the number of points in the grid.
func (g *MolecularGrid) Len() int { return len(g.points) }

// Point returns the ith point of the grid. It panics if i is out of range.
func (g *MolecularGrid) Point(i int) *Point { return &g.points[i] }

// Weights returns the weights of all the points, in grid order.
func (g *MolecularGrid) Weights() []float64 {
	ret := make([]float64, len(g.points))
	for i := range g.points {
		ret[i] = g.points[i].w
	}
	return ret
}

// Densities returns the density on all the points, in grid order.
func (g *MolecularGrid) Densities() []float64 {
	ret := make([]float64, len(g.points))
	for i := range g.points {
		ret[i] = g.points[i].density
	}
	return ret
}

// Positions returns the positions of all the points, one per row.
func (g *MolecularGrid) Positions() *v3.Matrix {
	ret := v3.Zeros(len(g.points))
	for i := range g.points {
		ret.SetVec(i, g.points[i].r)
	}
	return ret
}

// Amplitudes returns a nbasis x npoints matrix with the amplitude of each basis
// function on each point. It returns a Precondition error if the amplitudes
// have not been set.
func (g *MolecularGrid) Amplitudes() (*mat.Dense, error) {
	if g.basis == nil || g.basis.Len() == 0 {
		return nil, newError(Precondition, "MolecularGrid.Amplitudes", "Basis function amplitudes not set")
	}
	ret := mat.NewDense(g.basis.Len(), len(g.points), nil)
	for j := range g.points {
		if g.points[j].amp == nil {
			return nil, newError(Precondition, "MolecularGrid.Amplitudes", fmt.Sprintf("Amplitudes not set on point %d", j))
		}
		ret.SetCol(j, g.points[j].amp.RawVector().Data)
	}
	return ret, nil
}

// Molecule returns the molecule the grid was built for.
func (g *MolecularGrid) Molecule() Molecule { return g.mol }

// Fineness returns the fineness the grid was built with.
func (g *MolecularGrid) Fineness() quad.Fineness { return g.fineness }

// Partition returns the Becke partition used to build the grid.
func (g *MolecularGrid) Partition() *Partition { return g.partition }

// Shape returns the number of radial and angular points per atom.
func (g *MolecularGrid) Shape() (radial, angular int) { return g.radial, g.angular }
