/*
 * angular.go, part of dftcxx.
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

	"gonum.org/v1/gonum/integrate/quad"
)

// Angular is a quadrature rule on the unit sphere. Weights add up to 1.
type Angular interface {
	//Nodes returns the unit vectors of the rule and their weights.
	//The slices belong to the caller.
	Nodes() (dirs [][3]float64, w []float64)

	//Len returns the number of nodes in the rule.
	Len() int

	//Degree returns the highest degree of the spherical harmonics
	//the rule integrates exactly.
	Degree() int

	Name() string
}

// Lebedev is a Lebedev-Laikov rule with octahedral symmetry.
type Lebedev struct {
	n    int
	dirs [][3]float64
	w    []float64
}

type orbit struct {
	gen    func(a, b float64) [][3]float64
	a, b   float64
	weight float64
}

//The generator parameters and weights of the rules, from
//Lebedev and Laikov, Doklady Mathematics 59, 477 (1999).
var lebedevTables = map[int][]orbit{
	6: {
		{genA1, 0, 0, 1.0 / 6.0},
	},
	14: {
		{genA1, 0, 0, 1.0 / 15.0},
		{genA3, 0, 0, 3.0 / 40.0},
	},
	26: {
		{genA1, 0, 0, 1.0 / 21.0},
		{genA2, 0, 0, 4.0 / 105.0},
		{genA3, 0, 0, 9.0 / 280.0},
	},
	38: {
		{genA1, 0, 0, 1.0 / 105.0},
		{genA3, 0, 0, 9.0 / 280.0},
		{genC, 0.4597008433809831, 0, 1.0 / 35.0},
	},
	50: {
		{genA1, 0, 0, 4.0 / 315.0},
		{genA2, 0, 0, 64.0 / 2835.0},
		{genA3, 0, 0, 27.0 / 1280.0},
		{genB, 0.3015113445777636, 0, 14641.0 / 725760.0},
	},
}

var lebedevDegrees = map[int]int{6: 3, 14: 5, 26: 7, 38: 9, 50: 11}

// NewLebedev returns the Lebedev rule with n points. Supported
// values for n are 6, 14, 26, 38 and 50, exact for spherical harmonics up to
// degree 3, 5, 7, 9 and 11, respectively.
func NewLebedev(n int) (*Lebedev, error) {
	tab, ok := lebedevTables[n]
	if !ok {
		return nil, &Error{message: fmt.Sprintf("No Lebedev rule with %d points", n), deco: []string{"NewLebedev"}}
	}
	L := &Lebedev{n: n}
	for _, o := range tab {
		pts := o.gen(o.a, o.b)
		for _, p := range pts {
			L.dirs = append(L.dirs, p)
			L.w = append(L.w, o.weight)
		}
	}
	if len(L.dirs) != n {
		panic(fmt.Sprintf("dftcxx/quad: Lebedev table for %d points generates %d", n, len(L.dirs)))
	}
	return L, nil
}

// Len returns the number of points of the rule.
func (L *Lebedev) Len() int { return L.n }

// Name returns the name of the rule.
func (L *Lebedev) Name() string { return fmt.Sprintf("lebedev-%d", L.n) }

// Degree returns the degree of the rule.
func (L *Lebedev) Degree() int { return lebedevDegrees[L.n] }

// Nodes returns copies of the points and weights of the rule.
func (L *Lebedev) Nodes() ([][3]float64, []float64) {
	d := make([][3]float64, len(L.dirs))
	copy(d, L.dirs)
	w := make([]float64, len(L.w))
	copy(w, L.w)
	return d, w
}

//The octahedral orbits. The unused parameters are there so all the
//generators have the same signature.

// (±1,0,0) and permutations, 6 points.
func genA1(_, _ float64) [][3]float64 {
	return [][3]float64{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
}

// (0,±a,±a) and permutations, a=1/sqrt(2), 12 points.
func genA2(_, _ float64) [][3]float64 {
	a := 1 / math.Sqrt2
	ret := make([][3]float64, 0, 12)
	for _, s1 := range []float64{a, -a} {
		for _, s2 := range []float64{a, -a} {
			ret = append(ret, [3]float64{0, s1, s2}, [3]float64{s1, 0, s2}, [3]float64{s1, s2, 0})
		}
	}
	return ret
}

// (±a,±a,±a), a=1/sqrt(3), 8 points.
func genA3(_, _ float64) [][3]float64 {
	a := 1 / math.Sqrt(3)
	ret := make([][3]float64, 0, 8)
	for _, x := range []float64{a, -a} {
		for _, y := range []float64{a, -a} {
			for _, z := range []float64{a, -a} {
				ret = append(ret, [3]float64{x, y, z})
			}
		}
	}
	return ret
}

// (±l,±l,±m) and permutations, m=sqrt(1-2l^2), 24 points.
func genB(l, _ float64) [][3]float64 {
	m := math.Sqrt(1 - 2*l*l)
	ret := make([][3]float64, 0, 24)
	for _, a := range []float64{l, -l} {
		for _, b := range []float64{l, -l} {
			for _, c := range []float64{m, -m} {
				ret = append(ret, [3]float64{a, b, c}, [3]float64{a, c, b}, [3]float64{c, a, b})
			}
		}
	}
	return ret
}

// (±p,±q,0) and permutations, q=sqrt(1-p^2), 24 points.
func genC(p, _ float64) [][3]float64 {
	q := math.Sqrt(1 - p*p)
	ret := make([][3]float64, 0, 24)
	for _, a := range []float64{p, -p} {
		for _, b := range []float64{q, -q} {
			ret = append(ret,
				[3]float64{a, b, 0}, [3]float64{b, a, 0},
				[3]float64{a, 0, b}, [3]float64{b, 0, a},
				[3]float64{0, a, b}, [3]float64{0, b, a})
		}
	}
	return ret
}

// Product is the product of a Gauss-Legendre rule in cos(theta) with
// NTheta points and a trapezoidal rule in phi with NPhi points. It is exact
// for spherical harmonics of degree up to min(2*NTheta-1, NPhi-1).
type Product struct {
	NTheta, NPhi int
}

// Len returns the number of points of the rule.
func (P Product) Len() int { return P.NTheta * P.NPhi }

// Name returns the name of the rule.
func (P Product) Name() string { return fmt.Sprintf("product-%dx%d", P.NTheta, P.NPhi) }

// Degree returns min(2*NTheta-1, NPhi-1), or -1 for an empty rule.
func (P Product) Degree() int {
	if P.NTheta <= 0 || P.NPhi <= 0 {
		return -1
	}
	d := 2*P.NTheta - 1
	if P.NPhi-1 < d {
		d = P.NPhi - 1
	}
	return d
}

// Nodes returns the points and weights of the rule, theta-major.
func (P Product) Nodes() ([][3]float64, []float64) {
	if P.NTheta <= 0 || P.NPhi <= 0 {
		return nil, nil
	}
	ct := make([]float64, P.NTheta)
	wt := make([]float64, P.NTheta)
	quad.Legendre{}.FixedLocations(ct, wt, -1, 1)
	dirs := make([][3]float64, 0, P.Len())
	w := make([]float64, 0, P.Len())
	dphi := 2 * math.Pi / float64(P.NPhi)
	for i, c := range ct {
		s := math.Sqrt(1 - c*c)
		for j := 0; j < P.NPhi; j++ {
			phi := float64(j) * dphi
			dirs = append(dirs, [3]float64{s * math.Cos(phi), s * math.Sin(phi), c})
			//Legendre weights add up to 2 and there are NPhi equal phi weights.
			w = append(w, wt[i]/(2*float64(P.NPhi)))
		}
	}
	return dirs, w
}
