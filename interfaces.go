/*
 * interfaces.go, part of dftcxx.
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

// Geometry is the basic interface for a set of atoms in space.
type Geometry interface {

	//Position returns the cartesian coordinates (bohr) of the atom i.
	//Should panic if out of range.
	Position(i int) [3]float64

	Len() int
}

// BasisSet evaluates a set of basis functions at arbitrary points in space.
type BasisSet interface {

	//Value returns the amplitude of the ith basis function at r.
	Value(i int, r [3]float64) float64

	//Len returns the number of basis functions.
	Len() int
}

// AtomSizer is a Geometry that also knows the size of its atoms.
type AtomSizer interface {
	Geometry

	//BraggRadius returns the Bragg-Slater radius of atom i in bohr.
	BraggRadius(i int) float64

	//RadialScale returns the length (bohr) used to map the radial
	//quadrature of atom i.
	RadialScale(i int) float64
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// CError is the concrete Error used in this package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate is a helper function that asserts that the error is
// implements chem.Error and decorates the error with the caller's name before returning it.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
