/*
 * fineness.go, part of dftcxx.
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
	"strings"
)

// Fineness defines the resolution of the numerical integration.
type Fineness int

const (
	Coarse Fineness = iota
	Medium
	Fine
	Ultrafine

	nrFineness
)

var finenessNames = [...]string{"coarse", "medium", "fine", "ultrafine"}

func (f Fineness) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Fineness(%d)", int(f))
	}
	return finenessNames[f]
}

// Valid returns whether f is one of the supported levels.
func (f Fineness) Valid() bool {
	return f >= Coarse && f < nrFineness
}

// ParseFineness returns the level with the given name, case-insensitive.
func ParseFineness(s string) (Fineness, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.TrimPrefix(t, "grid_")
	for i, v := range finenessNames {
		if v == t {
			return Fineness(i), nil
		}
	}
	return -1, &Error{message: fmt.Sprintf("Unknown fineness %q", s), deco: []string{"ParseFineness"}}
}

// Level is the concrete atomic quadrature used for a fineness.
type Level struct {
	RadialPoints int
	Angular      Angular
}

// Levels returns the number of radial points and the angular rule
// used for the fineness f.
func Levels(f Fineness) (Level, error) {
	var err error
	var l Level
	switch f {
	case Coarse:
		l.RadialPoints = 30
		l.Angular, err = NewLebedev(26)
	case Medium:
		l.RadialPoints = 50
		l.Angular, err = NewLebedev(38)
	case Fine:
		l.RadialPoints = 75
		l.Angular, err = NewLebedev(50)
	case Ultrafine:
		l.RadialPoints = 100
		l.Angular = Product{NTheta: 16, NPhi: 32}
	default:
		return l, &Error{message: fmt.Sprintf("Unsupported fineness %d", int(f)), deco: []string{"Levels"}}
	}
	if err != nil {
		return l, err
	}
	return l, nil
}
