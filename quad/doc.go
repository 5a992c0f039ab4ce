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

/*Package quad provides the one-center quadratures used to build atomic integration grids:
radial rules on [0, inf) (Becke's Gauss-Chebyshev mapping and the Mura-Knowles log mapping)
and angular rules on the unit sphere (Lebedev and Gauss-Legendre x trapezoidal product rules),
plus the table that turns a grid fineness level into a concrete radial x angular product.

Radial rules return nodes r_k > 0 and weights w_k so that the integral of g over [0, inf)
is approximated by sum_k w_k g(r_k). The r^2 of the spherical volume element is not
included. Angular rules return unit vectors and weights that add up to one, so the
average of a function over the sphere is approximated by sum_l w_l f(Omega_l).
*/
package quad
