/*
 * options.go, part of dftcxx.
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
	"runtime"

	"github.com/rkalescky/dftcxx/quad"
	"go.uber.org/zap"
)

// Options contains the settings for building a MolecularGrid.
type Options struct {
	fineness   quad.Fineness
	order      int
	radial     quad.Radial
	sizeAdjust bool
	cpus       int
	logger     *zap.Logger
}

// DefaultOptions returns a Options with the default options:
// medium fineness, smoothing order 3, Becke's Gauss-Chebyshev radial rule,
// no atomic size adjustment, one worker per logical CPU and no logging.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.fineness = quad.Medium
	ret.order = 3
	ret.radial = quad.BeckeChebyshev{}
	ret.sizeAdjust = false
	ret.cpus = runtime.NumCPU()
	ret.logger = zap.NewNop()
	return ret
}

// Fineness returns the fineness of the grid and sets it, if a value is given.
// Unsupported values are reported when the grid is built.
func (o *Options) Fineness(f ...quad.Fineness) quad.Fineness {
	ret := o.fineness
	if len(f) > 0 {
		o.fineness = f[0]
	}
	return ret
}

// SmoothingOrder returns the number of iterations of the Becke smoothing
// polynomial and sets it, if a value is given. Values under 1 are
// reported when the grid is built.
func (o *Options) SmoothingOrder(k ...int) int {
	ret := o.order
	if len(k) > 0 {
		o.order = k[0]
	}
	return ret
}

// Radial returns the radial rule and sets it, if a non-nil value is given.
func (o *Options) Radial(r ...quad.Radial) quad.Radial {
	ret := o.radial
	if len(r) > 0 && r[0] != nil {
		o.radial = r[0]
	}
	return ret
}

// SizeAdjust returns whether the Becke cells are adjusted for the
// relative size of the atoms and sets it, if a value is given.
func (o *Options) SizeAdjust(b ...bool) bool {
	ret := o.sizeAdjust
	if len(b) > 0 {
		o.sizeAdjust = b[0]
	}
	return ret
}

// Cpus returns the current value of the Cpus options (the number of gorutines to
// use on the concurrent calculations) and sets it, if
// a valid value is given
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

// Logger returns the logger and sets it, if a non-nil value is given.
func (o *Options) Logger(l ...*zap.Logger) *zap.Logger {
	ret := o.logger
	if len(l) > 0 && l[0] != nil {
		o.logger = l[0]
	}
	return ret
}
