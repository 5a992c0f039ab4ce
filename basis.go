/*
 * basis.go, part of dftcxx.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// CGF is a contracted cartesian Gaussian function,
//
//	x^l y^m z^n sum_p c_p N_p exp(-alpha_p r^2)
//
// centered on one atom of a molecule. N_p are the primitive normalization
// constants. The whole contraction is normalized on creation.
type CGF struct {
	Atom   int        //the index of the atom the function is centered on
	Center [3]float64 //bohr
	L      [3]int     //the cartesian exponents l, m, n
	exps   []float64
	coefs  []float64 //contraction coefficients, including N_p and the contraction norm.
}

// NewCGF returns a normalized contracted Gaussian centered on center, with
// cartesian exponents l, and primitive exponents and contraction coefficients
// exps and coefs.
func NewCGF(atom int, center [3]float64, l [3]int, exps, coefs []float64) (*CGF, error) {
	if len(exps) == 0 || len(exps) != len(coefs) {
		return nil, &CError{fmt.Sprintf("%d exponents and %d coefficients given", len(exps), len(coefs)), []string{"NewCGF"}}
	}
	for _, v := range l {
		if v < 0 {
			return nil, &CError{fmt.Sprintf("Negative angular momentum %v", l), []string{"NewCGF"}}
		}
	}
	c := &CGF{Atom: atom, Center: center, L: l}
	c.exps = make([]float64, len(exps))
	c.coefs = make([]float64, len(coefs))
	for i, a := range exps {
		if a <= 0 {
			return nil, &CError{fmt.Sprintf("Non-positive exponent %g", a), []string{"NewCGF"}}
		}
		c.exps[i] = a
		c.coefs[i] = coefs[i] * primNorm(a, l)
	}
	self := Overlap(c, c)
	if self <= 0 {
		return nil, &CError{"Contraction has zero norm", []string{"NewCGF"}}
	}
	n := 1 / math.Sqrt(self)
	for i := range c.coefs {
		c.coefs[i] *= n
	}
	return c, nil
}

// Len returns the number of primitives in the contraction.
func (C *CGF) Len() int {
	return len(C.exps)
}

// Value returns the amplitude of the function at the point r.
func (C *CGF) Value(r [3]float64) float64 {
	dx := r[0] - C.Center[0]
	dy := r[1] - C.Center[1]
	dz := r[2] - C.Center[2]
	r2 := dx*dx + dy*dy + dz*dz
	poly := ipow(dx, C.L[0]) * ipow(dy, C.L[1]) * ipow(dz, C.L[2])
	if poly == 0 {
		return 0
	}
	var sum float64
	for i, a := range C.exps {
		sum += C.coefs[i] * math.Exp(-a*r2)
	}
	return poly * sum
}

// Overlap returns the analytic overlap integral <a|b>.
func Overlap(a, b *CGF) float64 {
	var s float64
	for i, ea := range a.exps {
		for j, eb := range b.exps {
			s += a.coefs[i] * b.coefs[j] * primOverlap(ea, a.L, a.Center, eb, b.L, b.Center)
		}
	}
	return s
}

// primNorm is the normalization constant of a primitive cartesian Gaussian.
func primNorm(alpha float64, l [3]int) float64 {
	ltot := l[0] + l[1] + l[2]
	num := math.Pow(4*alpha, float64(ltot))
	den := fact2(2*l[0]-1) * fact2(2*l[1]-1) * fact2(2*l[2]-1)
	return math.Pow(2*alpha/math.Pi, 0.75) * math.Sqrt(num/den)
}

// primOverlap is the overlap of two unnormalized primitive cartesian Gaussians,
// by the Gaussian product theorem.
func primOverlap(a1 float64, l1 [3]int, A [3]float64, a2 float64, l2 [3]int, B [3]float64) float64 {
	gamma := a1 + a2
	var rab2 float64
	var P [3]float64
	for k := 0; k < 3; k++ {
		rab2 += (A[k] - B[k]) * (A[k] - B[k])
		P[k] = (a1*A[k] + a2*B[k]) / gamma
	}
	pre := math.Pow(math.Pi/gamma, 1.5) * math.Exp(-a1*a2*rab2/gamma)
	for k := 0; k < 3; k++ {
		pre *= overlap1D(l1[k], l2[k], P[k]-A[k], P[k]-B[k], gamma)
	}
	return pre
}

func overlap1D(l1, l2 int, pax, pbx, gamma float64) float64 {
	var sum float64
	for i := 0; i <= (l1+l2)/2; i++ {
		sum += binomialPrefactor(2*i, l1, l2, pax, pbx) * fact2(2*i-1) / math.Pow(2*gamma, float64(i))
	}
	return sum
}

func binomialPrefactor(s, ia, ib int, xpa, xpb float64) float64 {
	var sum float64
	for t := 0; t <= s; t++ {
		if s-ia <= t && t <= ib {
			sum += float64(combin.Binomial(ia, s-t)*combin.Binomial(ib, t)) * ipow(xpa, ia-s+t) * ipow(xpb, ib-t)
		}
	}
	return sum
}

// fact2 is the double factorial, with fact2(n)=1 for n<1.
func fact2(n int) float64 {
	r := 1.0
	for ; n > 1; n -= 2 {
		r *= float64(n)
	}
	return r
}

// ipow returns x^n for small non-negative n, with 0^0=1.
func ipow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

// Basis is an ordered set of contracted Gaussian functions.
type Basis struct {
	Funcs []*CGF
}

// Len returns the number of basis functions.
func (B *Basis) Len() int {
	return len(B.Funcs)
}

// Func returns the ith basis function. Panics if out of range.
func (B *Basis) Func(i int) *CGF {
	return B.Funcs[i]
}

// Value returns the amplitude of the ith basis function at the point r.
func (B *Basis) Value(i int, r [3]float64) float64 {
	return B.Funcs[i].Value(r)
}

// OverlapMatrix returns the overlap matrix of the basis set, or nil for an empty set.
func (B *Basis) OverlapMatrix() *mat.SymDense {
	n := B.Len()
	if n == 0 {
		return nil
	}
	S := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			S.SetSym(i, j, Overlap(B.Funcs[i], B.Funcs[j]))
		}
	}
	return S
}
