/*
 * point_test.go, part of dftcxx.
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

package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// linear is a basis with a constant and an x function.
type linear struct{}

func (linear) Len() int { return 2 }
func (linear) Value(i int, r [3]float64) float64 {
	if i == 0 {
		return 1
	}
	return r[0]
}

func TestPoint(Te *testing.T) {
	p := NewPoint([3]float64{2, 0, 1})
	assert.True(Te, math.IsNaN(p.Weight()), "a new point should have an undefined weight")
	assert.False(Te, p.Atom().Valid())
	assert.Panics(Te, func() { p.AtomPosition() })
	p.SetWeight(0.5)
	p.MultiplyWeight(3)
	assert.Equal(Te, 1.5, p.Weight())
	atoms := cloud{{0, 0, 0}, {2, 0, 0}}
	p.SetAtom(NewAtomRef(atoms, 1))
	assert.Equal(Te, 1, p.Atom().Index())
	assert.Equal(Te, [3]float64{2, 0, 0}, p.AtomPosition())
	assert.Equal(Te, [3]float64{2, 0, 1}, p.Position())
}

func TestPointDensity(Te *testing.T) {
	p := NewPoint([3]float64{2, 0, 0})
	D := mat.NewSymDense(2, []float64{1, 0.5, 0.5, 3})
	err := p.SetDensity(D)
	require.Error(Te, err)
	assert.True(Te, IsKind(err, Precondition))
	assert.Nil(Te, p.BasisFuncAmp())

	p.SetBasisFuncAmp(linear{})
	amp := p.BasisFuncAmp()
	require.NotNil(Te, amp)
	assert.Equal(Te, 2, amp.Len())
	assert.Equal(Te, 2.0, amp.AtVec(1))

	require.NoError(Te, p.SetDensity(D))
	assert.InDelta(Te, 15.0, p.Density(), 1e-14)
	p.ScaleDensity(2)
	assert.InDelta(Te, 30.0, p.Density(), 1e-14)

	err = p.SetDensity(mat.NewDense(3, 3, nil))
	require.Error(Te, err)
	assert.True(Te, IsKind(err, Precondition))
	err = p.SetDensity(mat.NewDense(2, 3, nil))
	assert.True(Te, IsKind(err, Precondition))
	//a failed call leaves the density alone
	assert.InDelta(Te, 30.0, p.Density(), 1e-14)

	p.SetBasisFuncAmp(nil)
	assert.Nil(Te, p.BasisFuncAmp())
}
