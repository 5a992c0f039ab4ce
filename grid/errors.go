/*
 * errors.go, part of dftcxx.
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

import "errors"

// Kind classifies the errors of this package.
type Kind int

const (
	//Precondition errors come from calling an operation before its
	//inputs are ready, or with inputs of the wrong size.
	Precondition Kind = iota
	//Geometry errors come from molecules where the Becke partition is undefined.
	Geometry
	//Configuration errors come from unsupported options.
	Configuration
)

func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition"
	case Geometry:
		return "geometry"
	case Configuration:
		return "configuration"
	}
	return "unknown"
}

// Error is the error type of this package. It implements chem.Error.
// All the errors in this package are critical.
type Error struct {
	message string
	kind    Kind
	deco    []string
}

func (err *Error) Error() string {
	return "dftcxx/grid: " + err.kind.String() + " error: " + err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Kind returns the kind of the error.
func (err *Error) Kind() Kind { return err.kind }

// Critical returns true. There is nothing to recover from in this package.
func (err *Error) Critical() bool { return true }

// IsKind returns whether err is, or wraps, a grid Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == k
	}
	return false
}

func newError(kind Kind, caller, message string) *Error {
	return &Error{message: message, kind: kind, deco: []string{caller}}
}
