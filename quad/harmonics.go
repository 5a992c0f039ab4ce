/*
 * harmonics.go, part of dftcxx.
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
)

// SphericalHarmonic returns the real spherical harmonic Y_lm at polar angle
// theta and azimuth phi, normalized to 1 over the unit sphere.
// Y_lm goes with cos(m phi) for m > 0 and with sin(|m| phi) for m < 0.
// It panics if l < 0 or |m| > l.
func SphericalHarmonic(l, m int, theta, phi float64) float64 {
	if l < 0 || m > l || -m > l {
		panic(fmt.Sprintf("dftcxx/quad: no spherical harmonic with l=%d m=%d", l, m))
	}
	am := m
	if am < 0 {
		am = -am
	}
	az := 1.0
	if m > 0 {
		az = math.Cos(float64(m) * phi)
	} else if m < 0 {
		az = math.Sin(float64(am) * phi)
	}
	return HarmonicPrefactor(l, m) * AssocLegendre(l, am, math.Cos(theta)) * az
}

// SphericalHarmonicDir is SphericalHarmonic for the direction of the vector u,
// which needs not be normalized. It panics if u is zero.
func SphericalHarmonicDir(l, m int, u [3]float64) float64 {
	r := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
	if r == 0 {
		panic("dftcxx/quad: spherical harmonic of a zero vector")
	}
	c := u[2] / r
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return SphericalHarmonic(l, m, math.Acos(c), math.Atan2(u[1], u[0]))
}

// HarmonicPrefactor returns the normalization constant of the real spherical harmonic
// Y_lm, sqrt((2-delta_m0)(2l+1)/(4pi) (l-|m|)!/(l+|m|)!).
func HarmonicPrefactor(l, m int) float64 {
	if m < 0 {
		m = -m
	}
	//(l-m)!/(l+m)! without the factorials themselves.
	ratio := 1.0
	for i := l - m + 1; i <= l+m; i++ {
		ratio /= float64(i)
	}
	f := float64(2*l+1) * ratio / (4 * math.Pi)
	if m != 0 {
		f *= 2
	}
	return math.Sqrt(f)
}

// Legendre returns the Legendre polynomial P_n(x), or -1 if n < 0.
func Legendre(n int, x float64) float64 {
	if n < 0 {
		return -1
	}
	if n == 0 {
		return 1
	}
	p0, p1 := 1.0, x
	for i := 2; i <= n; i++ {
		p0, p1 = p1, (float64(2*i-1)*x*p1-float64(i-1)*p0)/float64(i)
	}
	return p1
}

// AssocLegendre returns the associated Legendre function P_n^m(x), including
// the Condon-Shortley phase, for 0 <= m and -1 <= x <= 1. It is 0 if m > n,
// and NaN if |x| > 1.
func AssocLegendre(n, m int, x float64) float64 {
	if m < 0 || n < 0 {
		panic(fmt.Sprintf("dftcxx/quad: no associated Legendre function with n=%d m=%d", n, m))
	}
	if m > n {
		return 0
	}
	//P_m^m = (-1)^m (2m-1)!! (1-x^2)^(m/2)
	pmm := 1.0
	s := math.Sqrt(1 - x*x)
	fact := 1.0
	for k := 0; k < m; k++ {
		pmm *= -fact * s
		fact += 2
	}
	if n == m {
		return pmm
	}
	p0, p1 := pmm, x*float64(2*m+1)*pmm
	for j := m + 2; j <= n; j++ {
		p0, p1 = p1, (float64(2*j-1)*x*p1-float64(j+m-1)*p0)/float64(j-m)
	}
	return p1
}
