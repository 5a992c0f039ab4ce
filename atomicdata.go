/*
 * atomicdata.go, part of dftcxx.
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

//A map for assigning atomic numbers to elements.
//Note that just the first three periods are present
var symbolZ = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
}

//A map for assigning Bragg-Slater radii (in A) to elements.
//Values from Slater, J. Chem. Phys. 41, 3199 (1964), except for H, where
//Becke's 0.35 is used (DOI:10.1063/1.454033). Slater gives no radii for
//the noble gases, the values here are those of the preceding halogen/hydrogen.
var symbolBragg = map[string]float64{
	"H":  0.35,
	"He": 0.35,
	"Li": 1.45,
	"Be": 1.05,
	"B":  0.85,
	"C":  0.70,
	"N":  0.65,
	"O":  0.60,
	"F":  0.50,
	"Ne": 0.50,
	"Na": 1.80,
	"Mg": 1.50,
	"Al": 1.25,
	"Si": 1.10,
	"P":  1.00,
	"S":  1.00,
	"Cl": 1.00,
	"Ar": 1.00,
}

//used when an element is not in symbolBragg
const defaultBragg = 1.0

//AtomicNumber returns the atomic number for the element symbol, and false if
//the element is not known.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := symbolZ[symbol]
	return z, ok
}
