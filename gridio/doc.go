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

//Package gridio writes and reads dumps of molecular integration grids.

/******************** Format Specification   ***************************************************

A grid dump is a text file compressed with z-standard (zstd), or with gzip if the name of
the file ends in 'z' (e.g. grid.gz). The usual extension is .bgd.

The file starts with a header. Each line of the header is a pair key=value. The header ends
with a line that starts with the characters "**" followed by one or more spaces, and the
number of points in the grid. Writers in this package add the keys "atoms" and "fineness".

After the header, the file has one line per point, with 5 numbers separated by spaces:
the x y and z cartesian coordinates of the point in bohr, its quadrature weight and the
electron density at the point. Numbers are written with the shortest representation that
reads back to the same float64.

***************************************************************************************************/

package gridio
