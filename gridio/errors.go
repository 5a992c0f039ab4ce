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

package gridio

import (
	"fmt"

	chem "github.com/rkalescky/dftcxx"
)

// Error is the error type for grid dumps. It implements chem.Error.
type Error struct {
	message  string
	filename string //the file that has problems
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("grid dump %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the error is associated.
func (err *Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err *Error) Critical() bool { return err.critical }

const (
	NotWriteable = "Writer closed or already used"
	NotReadable  = "Reader closed"
	NilGrid      = "Given nil grid"
)

// errDecorate decorates err with the caller's name if it is a chem.Error.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
