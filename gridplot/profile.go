/*
 * profile.go, part of dftcxx.
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

// Package gridplot makes radial profiles of molecular integration grids, and
// plots them with gonum/plot. They are a quick way to see how the density
// and the Becke partition are distributed among the atoms.
package gridplot

import (
	"fmt"
	"image/color"

	"github.com/rkalescky/dftcxx/grid"
	v3 "github.com/rkalescky/dftcxx/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Profile is the radial profile of the atomic grid of one atom.
// There is one element per radial shell in each slice.
type Profile struct {
	Atom int
	//R is the radius of the shell, in bohr.
	R []float64
	//Electrons is the integrated density over the points of the shell.
	Electrons []float64
	//Cell is the mean Becke weight of the atom over the shell.
	Cell []float64
}

// RadialProfile returns the profile of the atomic grid of atom in g.
func RadialProfile(g *grid.MolecularGrid, atom int) (*Profile, error) {
	natoms := g.Molecule().Len()
	if atom < 0 || atom >= natoms {
		return nil, fmt.Errorf("atom %d out of range for %d atoms", atom, natoms)
	}
	nrad, nang := g.Shape()
	part := g.Partition()
	P := &Profile{
		Atom:      atom,
		R:         make([]float64, nrad),
		Electrons: make([]float64, nrad),
		Cell:      make([]float64, nrad),
	}
	for k := 0; k < nrad; k++ {
		base := (atom*nrad + k) * nang
		for l := 0; l < nang; l++ {
			p := g.Point(base + l)
			P.Electrons[k] += p.Weight() * p.Density()
			P.Cell[k] += part.Weight(p.Position(), atom)
		}
		P.Cell[k] /= float64(nang)
		P.R[k] = v3.Distance(g.Point(base).Position(), g.Point(base).AtomPosition())
	}
	return P, nil
}

// Plot saves a plot of the profile in filename, with the radius in log scale.
// The format is given by the extension of filename (png, svg, pdf...).
func (P *Profile) Plot(title, filename string) error {
	if len(P.R) == 0 {
		return fmt.Errorf("empty profile for atom %d", P.Atom)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "r (bohr)"
	p.Y.Label.Text = "Electrons per shell / Becke weight"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Add(plotter.NewGrid())

	series := []struct {
		name  string
		y     []float64
		color color.Color
	}{
		{"electrons", P.Electrons, color.RGBA{R: 200, G: 30, B: 30, A: 255}},
		{"Becke weight", P.Cell, color.RGBA{R: 30, G: 30, B: 200, A: 255}},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(P.R))
		for i := range P.R {
			pts[i].X = P.R[i]
			pts[i].Y = s.y[i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = s.color
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save profile plot: %w", err)
	}
	return nil
}
