/*
 * quad_test.go, part of dftcxx.
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
	"gonum.org/v1/gonum/floats"
)

// Integrates r^2 exp(-r^2) over [0, inf), which is sqrt(pi)/4.
func TestRadialGaussian(Te *testing.T) {
	want := math.Sqrt(math.Pi) / 4
	for _, rule := range []Radial{BeckeChebyshev{}, MuraKnowles{Scale: 5}} {
		for _, n := range []int{50, 100} {
			r, w := rule.Nodes(n, 1.0)
			require.Len(Te, r, n)
			var got float64
			for i := range r {
				require.Greater(Te, r[i], 0.0, "%s: radial nodes must be strictly positive", rule.Name())
				if i > 0 {
					require.Greater(Te, r[i], r[i-1], "%s: nodes must be ascending", rule.Name())
				}
				got += w[i] * r[i] * r[i] * math.Exp(-r[i]*r[i])
			}
			fmt.Printf("%s n=%d: %.12f (want %.12f)\n", rule.Name(), n, got, want)
			assert.InDelta(Te, want, got, 1e-6, "%s with %d points", rule.Name(), n)
		}
	}
}

func TestRadialEmpty(Te *testing.T) {
	r, w := BeckeChebyshev{}.Nodes(0, 1)
	assert.Nil(Te, r)
	assert.Nil(Te, w)
}

func TestRadialByName(Te *testing.T) {
	r, err := RadialByName("mura-knowles")
	require.NoError(Te, err)
	assert.Equal(Te, "mura-knowles", r.Name())
	_, err = RadialByName("simpson")
	assert.Error(Te, err)
}

// sphereAverages checks <1>=1, <x^2>=1/3, <x^4>=1/5, <x^2y^2>=1/15 and
// that odd moments vanish.
func sphereAverages(Te *testing.T, A Angular) {
	dirs, w := A.Nodes()
	require.Len(Te, dirs, A.Len())
	assert.InDelta(Te, 1.0, floats.Sum(w), 1e-13, A.Name())
	var x2, x4, x2y2, z2, x3, xyz float64
	for i, d := range dirs {
		assert.InDelta(Te, 1.0, d[0]*d[0]+d[1]*d[1]+d[2]*d[2], 1e-13, "%s: not a unit vector", A.Name())
		x2 += w[i] * d[0] * d[0]
		z2 += w[i] * d[2] * d[2]
		x4 += w[i] * math.Pow(d[0], 4)
		x2y2 += w[i] * d[0] * d[0] * d[1] * d[1]
		x3 += w[i] * d[0] * d[0] * d[0]
		xyz += w[i] * d[0] * d[1] * d[2]
	}
	assert.InDelta(Te, 1.0/3.0, x2, 1e-13, A.Name())
	assert.InDelta(Te, 1.0/3.0, z2, 1e-13, A.Name())
	assert.InDelta(Te, 0, x3, 1e-13, A.Name())
	assert.InDelta(Te, 0, xyz, 1e-13, A.Name())
	if A.Len() > 6 {
		assert.InDelta(Te, 1.0/5.0, x4, 1e-13, A.Name())
		assert.InDelta(Te, 1.0/15.0, x2y2, 1e-13, A.Name())
	}
}

func TestLebedev(Te *testing.T) {
	for _, n := range []int{6, 14, 26, 38, 50} {
		L, err := NewLebedev(n)
		require.NoError(Te, err)
		assert.Equal(Te, n, L.Len())
		sphereAverages(Te, L)
	}
	_, err := NewLebedev(7)
	assert.Error(Te, err)
}

// The 50 point rule is exact up to degree 11: <x^10> = 1/11.
func TestLebedevDegree(Te *testing.T) {
	L, err := NewLebedev(50)
	require.NoError(Te, err)
	dirs, w := L.Nodes()
	var x10 float64
	for i, d := range dirs {
		x10 += w[i] * math.Pow(d[0], 10)
	}
	assert.InDelta(Te, 1.0/11.0, x10, 1e-12)
}

func TestProduct(Te *testing.T) {
	P := Product{NTheta: 8, NPhi: 16}
	assert.Equal(Te, 128, P.Len())
	sphereAverages(Te, P)
	d, w := Product{}.Nodes()
	assert.Nil(Te, d)
	assert.Nil(Te, w)
}

func TestFineness(Te *testing.T) {
	prevRad, prevAng := 0, 0
	for f := Coarse; f <= Ultrafine; f++ {
		l, err := Levels(f)
		require.NoError(Te, err, f.String())
		assert.Greater(Te, l.RadialPoints, prevRad, "radial points should grow with fineness")
		assert.Greater(Te, l.Angular.Len(), prevAng, "angular points should grow with fineness")
		prevRad, prevAng = l.RadialPoints, l.Angular.Len()
		g, err := ParseFineness(f.String())
		require.NoError(Te, err)
		assert.Equal(Te, f, g)
	}
	_, err := Levels(Fineness(7))
	assert.Error(Te, err)
	assert.False(Te, Fineness(-1).Valid())
	g, err := ParseFineness("GRID_ULTRAFINE")
	require.NoError(Te, err)
	assert.Equal(Te, Ultrafine, g)
	_, err = ParseFineness("extreme")
	assert.Error(Te, err)
}
