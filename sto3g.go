/*
 * sto3g.go, part of dftcxx.
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

import "fmt"

type contraction struct {
	l     [3]int
	exps  []float64
	coefs []float64
}

//STO-3G contractions for the elements supported.
//Values from Hehre, Stewart and Pople, J. Chem. Phys. 51, 2657 (1969)
var sto3g = map[string][]contraction{
	"H": {
		{[3]int{0, 0, 0}, []float64{3.42525091, 0.62391373, 0.16885540}, []float64{0.15432897, 0.53532814, 0.44463454}},
	},
	"He": {
		{[3]int{0, 0, 0}, []float64{6.36242139, 1.15892300, 0.31364979}, []float64{0.15432897, 0.53532814, 0.44463454}},
	},
}

// STO3G builds the STO-3G basis set for the molecule mol, attaches it
// to the molecule and returns it. Only H and He are supported.
func STO3G(mol *Molecule) (*Basis, error) {
	b := new(Basis)
	for i, at := range mol.Atoms {
		cs, ok := sto3g[at.Symbol]
		if !ok {
			return nil, &CError{fmt.Sprintf("No STO-3G basis for element %s", at.Symbol), []string{"STO3G"}}
		}
		for _, c := range cs {
			f, err := NewCGF(i, mol.Position(i), c.l, c.exps, c.coefs)
			if err != nil {
				return nil, errDecorate(err, "STO3G")
			}
			b.Funcs = append(b.Funcs, f)
		}
	}
	mol.SetBasis(b)
	return b, nil
}
