/*
 * chem.go, part of dftcxx.
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

package chem

import (
	"fmt"

	v3 "github.com/rkalescky/dftcxx/v3"
)

/**Note: Many funcitons here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the funciton on a nil object or trying to access out-of bounds
 * fields**/

// Atom contains the atom information except for the coordinates, which will be in a matrix
type Atom struct {
	Name   string
	Symbol string
	Z      int
}

// NewAtom returns an atom for the element symbol, with the atomic number set.
func NewAtom(symbol, name string) (*Atom, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return nil, &CError{fmt.Sprintf("Unknown element %q", symbol), []string{"NewAtom"}}
	}
	return &Atom{Name: name, Symbol: symbol, Z: z}, nil
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

// Molecule contains the atoms of a molecule, their coordinates (bohr, one row per atom)
// and, optionally, a basis set.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	charge int
	basis  *Basis
}

// NewMolecule makes a molecule with the atoms ats, coordinates coords
// and charge charge. It returns an error if the number of coordinates doesn't
// match the number of atoms.
func NewMolecule(ats []*Atom, coords *v3.Matrix, charge int) (*Molecule, error) {
	if len(ats) == 0 || coords == nil {
		return nil, &CError{"Supplied an empty molecule", []string{"NewMolecule"}}
	}
	if coords.NVecs() != len(ats) {
		return nil, &CError{fmt.Sprintf("%d atoms but %d coordinates", len(ats), coords.NVecs()), []string{"NewMolecule"}}
	}
	for i, v := range ats {
		if v == nil {
			return nil, &CError{fmt.Sprintf("Atom %d is nil", i), []string{"NewMolecule"}}
		}
	}
	return &Molecule{Atoms: ats, Coords: coords, charge: charge}, nil
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Molecule. Panics if
// out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

// Position returns the coordinates of the ith atom.
func (M *Molecule) Position(i int) [3]float64 {
	return M.Coords.Vec(i)
}

// Charge gets the total charge of the molecule
func (M *Molecule) Charge() int {
	return M.charge
}

// SetCharge sets the total charge of the molecule to i
func (M *Molecule) SetCharge(i int) {
	M.charge = i
}

// Nelec returns the number of electrons, i.e. the sum of the atomic
// numbers minus the charge.
func (M *Molecule) Nelec() int {
	n := 0
	for _, v := range M.Atoms {
		n += v.Z
	}
	return n - M.charge
}

// BraggRadius returns the Bragg-Slater radius of the ith atom, in bohr.
func (M *Molecule) BraggRadius(i int) float64 {
	r, ok := symbolBragg[M.Atom(i).Symbol]
	if !ok {
		r = defaultBragg
	}
	return r * A2Bohr
}

// RadialScale returns the midpoint of the radial grid of the ith atom, in bohr,
// which is half the Bragg-Slater radius, except for H and He, where it
// is the whole radius.
func (M *Molecule) RadialScale(i int) float64 {
	r := M.BraggRadius(i)
	if M.Atom(i).Z > 2 {
		r *= 0.5
	}
	return r
}

// SetBasis attaches the basis set b to the molecule.
func (M *Molecule) SetBasis(b *Basis) {
	M.basis = b
}

// Basis returns the basis set of the molecule, or nil if there is none.
func (M *Molecule) Basis() *Basis {
	return M.basis
}

// BasisSet returns the basis set of the molecule as a BasisSet, or nil.
func (M *Molecule) BasisSet() BasisSet {
	if M.basis == nil {
		return nil
	}
	return M.basis
}
