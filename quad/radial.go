/*
 * radial.go, part of dftcxx.
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
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Radial is a quadrature rule on [0, inf).
type Radial interface {
	//Nodes returns n nodes, in ascending order, and their weights. rm is
	//the length scale of the mapping from the finite interval, in bohr.
	Nodes(n int, rm float64) (r, w []float64)

	Name() string
}

// BeckeChebyshev is the Gauss-Chebyshev rule of the second kind mapped
// to [0, inf) with r = rm(1+x)/(1-x), as in Becke, J. Chem. Phys. 88, 2547 (1988).
// Half of the nodes lie inside rm.
type BeckeChebyshev struct{}

// Name returns the name of the rule.
func (b BeckeChebyshev) Name() string { return "becke" }

// Nodes returns the n nodes and weights of the rule.
func (b BeckeChebyshev) Nodes(n int, rm float64) ([]float64, []float64) {
	if n <= 0 {
		return nil, nil
	}
	r := make([]float64, n)
	w := make([]float64, n)
	h := math.Pi / float64(n+1)
	for i := 1; i <= n; i++ {
		t := float64(i) * h
		x := math.Cos(t)
		s := math.Sin(t)
		//The Chebyshev weight h*sin^2(t) divided by sqrt(1-x^2)=sin(t),
		//times dr/dx.
		k := n - i //ascending r
		r[k] = rm * (1 + x) / (1 - x)
		w[k] = h * s * 2 * rm / ((1 - x) * (1 - x))
	}
	return r, w
}

// MuraKnowles is the log radial rule of Mura and Knowles, J. Chem. Phys. 104, 9848 (1996),
// r = -R ln(1-x^3) with x in (0,1), with Gauss-Legendre nodes in x. R is Scale times
// the rm passed to Nodes.
type MuraKnowles struct {
	Scale float64
}

// Name returns the name of the rule.
func (m MuraKnowles) Name() string { return "mura-knowles" }

// Nodes returns the n nodes and weights of the rule.
func (m MuraKnowles) Nodes(n int, rm float64) ([]float64, []float64) {
	if n <= 0 {
		return nil, nil
	}
	scale := m.Scale
	if scale <= 0 {
		scale = 5
	}
	R := scale * rm
	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, 0, 1)
	r := make([]float64, n)
	for i, xi := range x {
		x3 := xi * xi * xi
		r[i] = -R * math.Log1p(-x3)
		w[i] *= 3 * R * xi * xi / (1 - x3)
	}
	sortNodes(r, w)
	return r, w
}

// sortNodes puts the nodes in ascending order, moving the weights along.
// The rules here produce monotonic nodes, so a reversal is all that can be needed.
func sortNodes(r, w []float64) {
	if len(r) < 2 || r[0] <= r[len(r)-1] {
		return
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
		w[i], w[j] = w[j], w[i]
	}
}

// RadialByName returns the radial rule with the given name ("becke" or "mura-knowles").
func RadialByName(name string) (Radial, error) {
	switch name {
	case "", "becke", "chebyshev":
		return BeckeChebyshev{}, nil
	case "mura-knowles", "muraknowles", "mk":
		return MuraKnowles{Scale: 5}, nil
	}
	return nil, &Error{message: "Unknown radial rule " + name, deco: []string{"RadialByName"}}
}
