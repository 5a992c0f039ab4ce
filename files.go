/*
 * files.go, part of dftcxx.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rkalescky/dftcxx/v3"
)

// XYZFileRead reads the first frame of an xyz file (coordinates in A) and returns
// a Molecule with the coordinates in bohr.
func XYZFileRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, &CError{err.Error(), []string{"XYZFileRead"}}
	}
	defer xyzfile.Close()
	mol, err := XYZRead(xyzfile)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead "+xyzname)
	}
	return mol, nil
}

// XYZRead reads the first frame of an xyz stream (coordinates in A) and returns
// a Molecule with the coordinates in bohr.
func XYZRead(xyzp io.Reader) (*Molecule, error) {
	xyz := bufio.NewReader(xyzp)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, &CError{"Empty or ill formatted XYZ file", []string{"XYZRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, &CError{fmt.Sprintf("Ill formatted atom count %q in XYZ file", strings.TrimSpace(line)), []string{"XYZRead"}}
	}
	_, err = xyz.ReadString('\n') //We dont care about this line
	if err != nil {
		return nil, &CError{"XYZ file ends before the atoms", []string{"XYZRead"}}
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return nil, &CError{fmt.Sprintf("Expected %d atoms, found %d", natoms, i), []string{"XYZRead"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &CError{fmt.Sprintf("Line number %d ill formed", i+3), []string{"XYZRead"}}
		}
		atoms[i], err = NewAtom(fields[0], fmt.Sprintf("%s%d", fields[0], i+1))
		if err != nil {
			return nil, errDecorate(err, "XYZRead")
		}
		for j := 0; j < 3; j++ {
			c, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, &CError{fmt.Sprintf("Line number %d: %s", i+3, err.Error()), []string{"XYZRead"}}
			}
			coords[i*3+j] = c * A2Bohr
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, &CError{err.Error(), []string{"XYZRead"}}
	}
	return NewMolecule(atoms, mcoords, 0)
}

// XYZFileWrite writes mol in an XYZ file with name xyzname, which will
// be created for that, with the coordinates in A. If the file exist it will be overwriten.
func XYZFileWrite(xyzname string, mol *Molecule, comment string) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return &CError{err.Error(), []string{"XYZFileWrite"}}
	}
	if err := XYZWrite(out, mol, comment); err != nil {
		out.Close()
		return errDecorate(err, "XYZFileWrite "+xyzname)
	}
	if err := out.Close(); err != nil {
		return &CError{err.Error(), []string{"XYZFileWrite " + xyzname}}
	}
	return nil
}

// XYZWrite writes mol to out in XYZ format, with the coordinates in A.
// Newlines in comment are replaced by spaces.
func XYZWrite(out io.Writer, mol *Molecule, comment string) error {
	if mol == nil || mol.Coords == nil {
		return &CError{"Given nil molecule", []string{"XYZWrite"}}
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%-4d\n", mol.Len())
	fmt.Fprintf(w, "%s\n", strings.ReplaceAll(comment, "\n", " "))
	for i := 0; i < mol.Len(); i++ {
		c := mol.Position(i)
		fmt.Fprintf(w, "%-2s  %14.8f %14.8f %14.8f\n", mol.Atom(i).Symbol, c[0]*Bohr2A, c[1]*Bohr2A, c[2]*Bohr2A)
	}
	if err := w.Flush(); err != nil {
		return &CError{err.Error(), []string{"XYZWrite"}}
	}
	return nil
}
