/*
 * harmonics_test.go, part of dftcxx.
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

package quad

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLegendre(Te *testing.T) {
	for _, x := range []float64{-1, -0.3, 0, 0.5, 0.9, 1} {
		assert.InDelta(Te, (3*x*x-1)/2, Legendre(2, x), 1e-15)
		assert.InDelta(Te, (5*x*x*x-3*x)/2, Legendre(3, x), 1e-15)
		s := math.Sqrt(1 - x*x)
		assert.InDelta(Te, -s, AssocLegendre(1, 1, x), 1e-15)
		assert.InDelta(Te, -3*x*s, AssocLegendre(2, 1, x), 1e-14)
		assert.InDelta(Te, 3*(1-x*x), AssocLegendre(2, 2, x), 1e-14)
		for n := 0; n < 8; n++ {
			assert.InDelta(Te, Legendre(n, x), AssocLegendre(n, 0, x), 1e-14, "n=%d x=%g", n, x)
		}
	}
	assert.Equal(Te, -1.0, Legendre(-1, 0.2))
	assert.Equal(Te, 0.0, AssocLegendre(2, 3, 0.2))
}

func TestSphericalHarmonic(Te *testing.T) {
	c := math.Sqrt(3 / (4 * math.Pi))
	assert.InDelta(Te, 1/math.Sqrt(4*math.Pi), SphericalHarmonic(0, 0, 1.1, 2.3), 1e-15)
	assert.InDelta(Te, c, SphericalHarmonic(1, 0, 0, 0.7), 1e-15)
	assert.InDelta(Te, -c, SphericalHarmonic(1, 1, math.Pi/2, 0), 1e-15)
	assert.InDelta(Te, -c, SphericalHarmonic(1, -1, math.Pi/2, math.Pi/2), 1e-15)
	//Y_1m are proportional to z, x and y.
	u := [3]float64{0.3, -1.2, 0.5}
	r := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
	assert.InDelta(Te, c*u[2]/r, SphericalHarmonicDir(1, 0, u), 1e-15)
	assert.InDelta(Te, -c*u[0]/r, SphericalHarmonicDir(1, 1, u), 1e-15)
	assert.InDelta(Te, -c*u[1]/r, SphericalHarmonicDir(1, -1, u), 1e-15)
	assert.Panics(Te, func() { SphericalHarmonic(1, 2, 0, 0) })
	assert.Panics(Te, func() { SphericalHarmonicDir(0, 0, [3]float64{}) })
}

type lm struct{ l, m int }

// gram returns the overlap matrix 4pi sum_k w_k Y_a(k) Y_b(k) of all the real
// harmonics up to degree lmax, on the nodes of A, and the (l,m) of each row.
func gram(A Angular, lmax int) (*mat.SymDense, []lm) {
	dirs, w := A.Nodes()
	var idx []lm
	for l := 0; l <= lmax; l++ {
		for m := -l; m <= l; m++ {
			idx = append(idx, lm{l, m})
		}
	}
	Y := mat.NewDense(len(idx), len(dirs), nil)
	for i, f := range idx {
		for k, d := range dirs {
			Y.Set(i, k, math.Sqrt(4*math.Pi*w[k])*SphericalHarmonicDir(f.l, f.m, d))
		}
	}
	G := mat.NewSymDense(len(idx), nil)
	G.SymOuterK(1, Y)
	return G, idx
}

// Every rule integrates Y_lm Y_l'm' exactly when l+l' is at most its degree, and
// fails for some pair of degree one more.
func TestAngularOrthonormality(Te *testing.T) {
	rules := []Angular{Product{NTheta: 16, NPhi: 32}, Product{NTheta: 4, NPhi: 12}}
	for _, n := range []int{6, 14, 26, 38, 50} {
		L, err := NewLebedev(n)
		require.NoError(Te, err)
		rules = append(rules, L)
	}
	for _, A := range rules {
		d := A.Degree()
		G, idx := gram(A, d+1)
		var maxerr, beyond float64
		for i, a := range idx {
			for j := i; j < len(idx); j++ {
				b := idx[j]
				want := 0.0
				if i == j {
					want = 1
				}
				diff := math.Abs(G.At(i, j) - want)
				switch {
				case a.l+b.l <= d:
					maxerr = math.Max(maxerr, diff)
				case a.l+b.l == d+1:
					beyond = math.Max(beyond, diff)
				}
			}
		}
		fmt.Printf("%s degree %d: max error %.3g, at degree %d %.3g\n", A.Name(), d, maxerr, d+1, beyond)
		assert.Less(Te, maxerr, 1e-11, "%s should be exact up to degree %d", A.Name(), d)
		assert.Greater(Te, beyond, 1e-8, "%s should not be exact at degree %d", A.Name(), d+1)
	}
}

func TestDegree(Te *testing.T) {
	assert.Equal(Te, 31, Product{NTheta: 16, NPhi: 32}.Degree())
	assert.Equal(Te, 7, Product{NTheta: 4, NPhi: 12}.Degree())
	assert.Equal(Te, 5, Product{NTheta: 8, NPhi: 6}.Degree())
	assert.Equal(Te, -1, Product{}.Degree())
	for f := Coarse; f <= Ultrafine; f++ {
		l, err := Levels(f)
		require.NoError(Te, err)
		assert.GreaterOrEqual(Te, l.Angular.Degree(), 7, f.String())
	}
}
