/*
 * doc.go, part of dftcxx.
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

/*Package chem is the main package of the dftcxx library. It provides the atom and molecule
structures, contracted Gaussian basis sets and a reader for XYZ files, which are the pieces
that the numerical integration grids in the grid subpackage are built from.



	**dftcxx Capabilities**


    Reads XYZ files (Angstrom) into molecules in atomic units.

    Builds contracted cartesian Gaussian basis functions, normalizes them and
	evaluates them at any point in space. A minimal STO-3G basis for H and He
	is built in.

    Computes analytic overlap integrals between basis functions.

    Builds Becke multicenter integration grids for polyatomic molecules (package grid),
	with Gauss-Chebyshev, Mura-Knowles, Lebedev and product quadratures (package quad).

    Evaluates basis function amplitudes and the electron density on the grid
	points from a density matrix, and renormalizes the density to a given number of electrons.

    Writes and reads compressed grid dumps (package gridio).



dftcxx uses the matrix type for coordinates of the v3 package, based in gonum.org/v1/gonum/mat.
Each row of a v3.Matrix represents one point in space. All lengths are in bohr.*/
package chem
