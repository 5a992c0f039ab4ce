/*
 * becke.go, part of dftcxx.
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

	chem "github.com/rkalescky/dftcxx"
	v3 "github.com/rkalescky/dftcxx/v3"
	"gonum.org/v1/gonum/floats"
)

// Atoms closer than this (bohr) are considered to be on top of each other.
const coincident = 1e-8

// Fk applies the Becke smoothing polynomial p(mu) = 1.5mu - 0.5mu^3
// k times to mu. For mu in [-1,1] the result is also in [-1,1], and
// -1, 0 and 1 are fixed points.
func Fk(k int, mu float64) float64 {
	f := mu
	for i := 0; i < k; i++ {
		f = 1.5*f - 0.5*f*f*f
	}
	return f
}

// Cutoff returns the Becke step function s_k(mu) = (1-Fk(k,mu))/2,
// which goes smoothly from 1 at mu=-1 to 0 at mu=1.
func Cutoff(k int, mu float64) float64 {
	return 0.5 * (1 - Fk(k, mu))
}

// Partition assigns to every point in space a fuzzy Voronoi cell weight
// for each atom of a molecule. The weights of all atoms add up to 1
// everywhere.
type Partition struct {
	pos   [][3]float64
	inv   []float64 //1/R_IJ, row-major n x n
	adj   []float64 //size adjustment a_IJ, nil if not used
	order int
}

// NewPartition returns the Becke partition for the atoms in mol, with
// smoothing order k. If sizeAdjust is true, mol must be a chem.AtomSizer and
// the cell boundaries are displaced according to the Bragg radii of the atoms.
func NewPartition(mol chem.Geometry, k int, sizeAdjust bool) (*Partition, error) {
	if mol == nil || mol.Len() == 0 {
		return nil, newError(Precondition, "NewPartition", "No atoms given")
	}
	if k < 1 {
		return nil, newError(Configuration, "NewPartition", fmt.Sprintf("Smoothing order must be at least 1, got %d", k))
	}
	n := mol.Len()
	P := &Partition{order: k, pos: make([][3]float64, n), inv: make([]float64, n*n)}
	for i := range P.pos {
		P.pos[i] = mol.Position(i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := v3.Distance(P.pos[i], P.pos[j])
			if d < coincident {
				return nil, newError(Geometry, "NewPartition", fmt.Sprintf("Atoms %d and %d are at the same position", i, j))
			}
			P.inv[i*n+j] = 1 / d
			P.inv[j*n+i] = 1 / d
		}
	}
	if !sizeAdjust {
		return P, nil
	}
	sizer, ok := mol.(chem.AtomSizer)
	if !ok {
		return nil, newError(Configuration, "NewPartition", "Size adjustment requires atomic radii")
	}
	P.adj = make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a := sizeAdjustment(sizer.BraggRadius(i), sizer.BraggRadius(j))
			P.adj[i*n+j] = a
			P.adj[j*n+i] = -a
		}
	}
	return P, nil
}

// sizeAdjustment returns the a_IJ parameter from the appendix of Becke's paper
// for atoms with radii ri and rj.
func sizeAdjustment(ri, rj float64) float64 {
	chi := ri / rj
	u := (chi - 1) / (chi + 1)
	if u == 0 {
		return 0
	}
	a := u / (u*u - 1)
	if a > 0.5 {
		a = 0.5
	} else if a < -0.5 {
		a = -0.5
	}
	return a
}

// Len returns the number of atoms in the partition.
func (P *Partition) Len() int {
	return len(P.pos)
}

// SmoothingOrder returns the number of smoothing iterations used.
func (P *Partition) SmoothingOrder() int {
	return P.order
}

// Cell puts in out the unnormalized cell function P_I(r) of every atom I
// and returns it. If out is nil or too short, a new slice is allocated.
func (P *Partition) Cell(r [3]float64, out []float64) []float64 {
	n := len(P.pos)
	if len(out) < n {
		out = make([]float64, n)
	}
	out = out[:n]
	P.cells(r, make([]float64, n), out)
	return out
}

// Weight returns the normalized Becke weight P_owner(r)/sum_K P_K(r).
// For a single atom it is exactly 1. It is 0 if all the cell functions
// vanish at r.
func (P *Partition) Weight(r [3]float64, owner int) float64 {
	n := len(P.pos)
	if owner < 0 || owner >= n {
		panic(fmt.Sprintf("dftcxx/grid: atom %d out of range for %d atoms", owner, n))
	}
	if n == 1 {
		return 1
	}
	scratch := make([]float64, 2*n)
	return P.weight(r, owner, scratch[:n], scratch[n:])
}

// Weights puts in out the normalized weights of all the atoms at r and
// returns it. If out is nil or too short, a new slice is allocated.
func (P *Partition) Weights(r [3]float64, out []float64) []float64 {
	out = P.Cell(r, out)
	sum := floats.Sum(out)
	for i := range out {
		if sum == 0 {
			out[i] = 0
			continue
		}
		out[i] /= sum
	}
	return out
}

// weight is Weight with caller-supplied scratch space, so the grid
// workers don't allocate per point. d and cell must have length Len().
func (P *Partition) weight(r [3]float64, owner int, d, cell []float64) float64 {
	if len(P.pos) == 1 {
		return 1
	}
	P.cells(r, d, cell)
	sum := floats.Sum(cell)
	if sum == 0 {
		return 0
	}
	return cell[owner] / sum
}

// cells fills cell with P_I(r) = prod_{J!=I} s(nu_IJ), using d for the
// distances from r to the atoms. Each pair is evaluated once, since
// nu_JI = -nu_IJ and so s(nu_JI) = 1 - s(nu_IJ).
func (P *Partition) cells(r [3]float64, d, cell []float64) {
	n := len(P.pos)
	for i := range P.pos {
		d[i] = v3.Distance(r, P.pos[i])
		cell[i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mu := (d[i] - d[j]) * P.inv[i*n+j]
			//rounding can take mu slightly outside [-1,1]
			if mu > 1 {
				mu = 1
			} else if mu < -1 {
				mu = -1
			}
			if P.adj != nil {
				mu += P.adj[i*n+j] * (1 - mu*mu)
			}
			f := Fk(P.order, mu)
			cell[i] *= 0.5 * (1 - f)
			cell[j] *= 0.5 * (1 + f)
		}
	}
}
