/*
 * point.go, part of dftcxx.
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

	chem "github.com/rkalescky/dftcxx"
	"gonum.org/v1/gonum/mat"
)

// AtomRef refers to one atom of a molecule, without copying it.
// The zero value refers to no atom.
type AtomRef struct {
	index int
	mol   chem.Geometry
}

// NewAtomRef returns a reference to the ith atom of mol.
func NewAtomRef(mol chem.Geometry, i int) AtomRef {
	return AtomRef{index: i, mol: mol}
}

// Index returns the index of the atom in its molecule.
func (a AtomRef) Index() int { return a.index }

// Valid returns whether a refers to an atom.
func (a AtomRef) Valid() bool { return a.mol != nil }

// Position returns the position of the atom. It panics if a is not valid.
func (a AtomRef) Position() [3]float64 {
	if a.mol == nil {
		panic("dftcxx/grid: position of an unset atom")
	}
	return a.mol.Position(a.index)
}

// Point is a single integration point: a position, a quadrature weight,
// the atom whose atomic grid it comes from, the amplitudes of the
// basis functions and the electron density at the position.
type Point struct {
	r       [3]float64
	w       float64
	atom    AtomRef
	amp     *mat.VecDense
	density float64
}

// NewPoint returns a Point at r, with an undefined (NaN) weight
// and no atom, amplitudes or density.
func NewPoint(r [3]float64) *Point {
	p := new(Point)
	p.init(r)
	return p
}

func (p *Point) init(r [3]float64) {
	p.r = r
	p.w = math.NaN()
	p.atom = AtomRef{}
	p.amp = nil
	p.density = 0
}

// Position returns the cartesian coordinates of the point, in bohr.
func (p *Point) Position() [3]float64 { return p.r }

// Weight returns the quadrature weight. It is NaN until SetWeight is called.
func (p *Point) Weight() float64 { return p.w }

// SetWeight sets the quadrature weight.
func (p *Point) SetWeight(w float64) { p.w = w }

// MultiplyWeight multiplies the weight by f.
func (p *Point) MultiplyWeight(f float64) { p.w *= f }

// Atom returns the atom that owns the point.
func (p *Point) Atom() AtomRef { return p.atom }

// SetAtom sets the atom that owns the point.
func (p *Point) SetAtom(a AtomRef) { p.atom = a }

// AtomPosition returns the position of the atom that owns the point.
// It panics if no atom has been set.
func (p *Point) AtomPosition() [3]float64 { return p.atom.Position() }

// SetBasisFuncAmp evaluates all the functions of b at the point and
// stores the amplitudes. A nil or empty b clears them.
func (p *Point) SetBasisFuncAmp(b chem.BasisSet) {
	if b == nil || b.Len() == 0 {
		p.amp = nil
		return
	}
	n := b.Len()
	if p.amp == nil || p.amp.Len() != n {
		p.amp = mat.NewVecDense(n, nil)
	}
	for i := 0; i < n; i++ {
		p.amp.SetVec(i, b.Value(i, p.r))
	}
}

// BasisFuncAmp returns the amplitudes of the basis functions at the
// point, or nil if they have not been set. The vector should not be modified.
func (p *Point) BasisFuncAmp() mat.Vector {
	if p.amp == nil {
		return nil
	}
	return p.amp
}

// SetDensity sets the density at the point to phi^T D phi, where phi are the
// basis function amplitudes. It returns a Precondition error if the amplitudes
// are not set or D is not a square matrix of the same size.
func (p *Point) SetDensity(D mat.Matrix) error {
	if p.amp == nil {
		return newError(Precondition, "Point.SetDensity", "Basis function amplitudes not set")
	}
	if err := checkDensityMatrix(D, p.amp.Len()); err != nil {
		err.Decorate("Point.SetDensity")
		return err
	}
	p.density = mat.Inner(p.amp, D, p.amp)
	return nil
}

// ScaleDensity multiplies the density at the point by f.
func (p *Point) ScaleDensity(f float64) { p.density *= f }

// Density returns the electron density at the point.
func (p *Point) Density() float64 { return p.density }

func checkDensityMatrix(D mat.Matrix, nbasis int) *Error {
	if D == nil {
		return newError(Precondition, "checkDensityMatrix", "Nil density matrix")
	}
	r, c := D.Dims()
	if r != c || r != nbasis {
		return newError(Precondition, "checkDensityMatrix", fmt.Sprintf("Density matrix is %dx%d, expected %dx%d", r, c, nbasis, nbasis))
	}
	return nil
}
