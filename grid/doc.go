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

/*Package grid builds numerical integration grids over polyatomic molecules for density-functional
calculations, following the multicenter scheme of Becke:

	A. D. Becke, A multicenter numerical integration scheme for polyatomic molecules,
	J. Chem. Phys. 88, 2547 (1988); doi: 10.1063/1.454033

An atomic grid (radial x angular product quadrature, see package quad) is placed on every atom,
and the weight of each point is multiplied by a smooth cell function that partitions space among
the atoms, so that the integral of any molecular field is the plain weighted sum over all the points.

The weights take into account:
  - the Jacobian of the spherical coordinates (4 pi r^2),
  - the weight of the angular rule,
  - the weight of the radial rule,
  - the Becke cell weight.

Each Point also stores the amplitudes of all the basis functions of the molecule at the point,
and the electron density obtained from a density matrix.
*/
package grid
