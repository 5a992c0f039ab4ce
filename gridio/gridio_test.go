/*
 * gridio_test.go, part of dftcxx.
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

package gridio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rkalescky/dftcxx"
	"github.com/rkalescky/dftcxx/grid"
	"github.com/rkalescky/dftcxx/quad"
	v3 "github.com/rkalescky/dftcxx/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func heliumGrid(Te *testing.T) *grid.MolecularGrid {
	Te.Helper()
	at, err := chem.NewAtom("He", "He1")
	require.NoError(Te, err)
	c, err := v3.NewMatrix([]float64{0.1, 0, -0.2})
	require.NoError(Te, err)
	mol, err := chem.NewMolecule([]*chem.Atom{at}, c, 0)
	require.NoError(Te, err)
	_, err = chem.STO3G(mol)
	require.NoError(Te, err)
	o := grid.DefaultOptions()
	o.Fineness(quad.Coarse)
	g, err := grid.New(mol, o)
	require.NoError(Te, err)
	require.NoError(Te, g.SetDensity(mat.NewDense(1, 1, []float64{2})))
	return g
}

func records(g *grid.MolecularGrid) []Record {
	ret := make([]Record, g.Len())
	for i := range ret {
		p := g.Point(i)
		ret[i] = Record{p.Position(), p.Weight(), p.Density()}
	}
	return ret
}

func TestRoundTrip(Te *testing.T) {
	g := heliumGrid(Te)
	want := records(g)
	for _, name := range []string{"he.bgd", "he.bgd.gz"} {
		fname := filepath.Join(Te.TempDir(), name)
		W, err := NewWriter(fname, map[string]string{"molecule": "helium"})
		require.NoError(Te, err)
		require.NoError(Te, W.WriteGrid(g))
		//one grid per file
		assert.Error(Te, W.WriteGrid(g))
		require.NoError(Te, W.Close())

		header, got, err := ReadAll(fname)
		require.NoError(Te, err, name)
		fmt.Println(name, header)
		assert.Equal(Te, map[string]string{"molecule": "helium", "atoms": "1", "fineness": "coarse"}, header)
		if diff := cmp.Diff(want, got); diff != "" {
			Te.Errorf("%s: points differ after a round trip (-want +got):\n%s", name, diff)
		}
	}
}

func TestReaderNext(Te *testing.T) {
	g := heliumGrid(Te)
	fname := filepath.Join(Te.TempDir(), "he.bgd")
	W, err := NewWriter(fname, nil)
	require.NoError(Te, err)
	require.NoError(Te, W.WriteGrid(g))
	require.NoError(Te, W.Close())

	R, err := NewReader(fname)
	require.NoError(Te, err)
	defer R.Close()
	require.Equal(Te, g.Len(), R.Len())
	var total float64
	for {
		rec, err := R.Next()
		if err == io.EOF {
			break
		}
		require.NoError(Te, err)
		total += rec.Weight * rec.Density
	}
	assert.InDelta(Te, g.CalculateDensity(), total, 1e-12)
	_, err = R.Next()
	assert.Equal(Te, io.EOF, err)
	R.Close()
	_, err = R.Next()
	assert.Error(Te, err)
}

func writeZstd(Te *testing.T, name, content string) {
	Te.Helper()
	f, err := os.Create(name)
	require.NoError(Te, err)
	z, err := zstd.NewWriter(f)
	require.NoError(Te, err)
	_, err = z.Write([]byte(content))
	require.NoError(Te, err)
	require.NoError(Te, z.Close())
	require.NoError(Te, f.Close())
}

func TestMalformed(Te *testing.T) {
	dir := Te.TempDir()
	_, err := NewReader(filepath.Join(dir, "missing.bgd"))
	assert.Error(Te, err)

	cases := map[string]string{
		"noheaderend.bgd": "atoms=1\n",
		"badheader.bgd":   "atoms 1\n** 1\n0 0 0 1 1\n",
		"badcount.bgd":    "** many\n",
	}
	for name, content := range cases {
		fname := filepath.Join(dir, name)
		writeZstd(Te, fname, content)
		_, err := NewReader(fname)
		assert.Error(Te, err, name)
	}

	short := filepath.Join(dir, "short.bgd")
	writeZstd(Te, short, "** 2\n0 0 0 1 1\n")
	_, _, err = ReadAll(short)
	require.Error(Te, err)
	var e *Error
	require.ErrorAs(Te, err, &e)
	assert.Equal(Te, short, e.FileName())
	assert.Contains(Te, e.Decorate(""), "ReadAll")

	fields := filepath.Join(dir, "fields.bgd")
	writeZstd(Te, fields, "** 1\n0 0 0 1\n")
	_, _, err = ReadAll(fields)
	assert.Error(Te, err)
}
