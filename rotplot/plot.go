/*
 * plot.go, part of qrotor.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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

//Package rotplot draws potentials, energy levels and wavefunctions of solved rotors with gonum/plot.
//The image format is taken from the extension of the file name (png, svg, pdf, eps, jpg, tif).
package rotplot

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/rmera/qrotor"
	"github.com/rmera/qrotor/constants"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Size of the saved images.
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Error is the error type for this package. It fulfills qrotor.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return "qrotor/rotplot: " + err.message }

// Decorate adds the caller's name to the error, and returns the list of callers.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical always returns true.
func (err Error) Critical() bool { return true }

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// Energies plots the potential of a solved system against the angle, in degrees,
// with its energy levels as horizontal dashed lines. If the system has eigenvectors,
// they are not drawn (see Wavefunctions).
func Energies(S *qrotor.System, filename string) error {
	if S == nil || len(S.PotentialValues) != len(S.Grid) || len(S.Grid) == 0 {
		return Error{"the system has no potential values", []string{"Energies"}}
	}
	p := newPlot(S.Comment, "Angle (degrees)", "Energy")
	pts := make(plotter.XYs, len(S.Grid))
	for i, v := range S.Grid {
		pts[i].X = v * constants.Rad2Deg
		pts[i].Y = S.PotentialValues[i]
	}
	pot, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	pot.LineStyle.Width = vg.Points(2)
	p.Add(pot)
	p.Legend.Add("V", pot)
	xmin, xmax := pts[0].X, pts[len(pts)-1].X
	for i, e := range S.Eigenvalues {
		lev, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: e}, {X: xmax, Y: e}})
		if err != nil {
			return err
		}
		lev.LineStyle.Color = plotutil.Color(i + 1)
		lev.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(lev)
		p.Legend.Add(fmt.Sprintf("E%d", i), lev)
	}
	return p.Save(Width, Height, filename)
}

// Wavefunctions plots the squared eigenvectors of S, each shifted up to its energy
// level and scaled so its maximum is scale, over the potential.
// The system must have been solved with SaveEigenvectors.
func Wavefunctions(S *qrotor.System, scale float64, filename string) error {
	if S == nil || len(S.Eigenvectors) == 0 {
		return Error{"the system has no eigenvectors", []string{"Wavefunctions"}}
	}
	if len(S.PotentialValues) != len(S.Grid) {
		return Error{"the system has no potential values", []string{"Wavefunctions"}}
	}
	p := newPlot(S.Comment, "Angle (degrees)", "Energy")
	pot := make(plotter.XYs, len(S.Grid))
	for i, v := range S.Grid {
		pot[i].X = v * constants.Rad2Deg
		pot[i].Y = S.PotentialValues[i]
	}
	l, err := plotter.NewLine(pot)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)
	p.Legend.Add("V", l)
	for j, v := range S.Eigenvectors {
		if j >= len(S.Eigenvalues) || len(v) != len(S.Grid) {
			break
		}
		sq := make([]float64, len(v))
		floats.Mul(sq, v)
		floats.Mul(sq, v)
		if m := floats.Max(sq); m > 0 {
			floats.Scale(scale/m, sq)
		}
		pts := make(plotter.XYs, len(v))
		for i := range pts {
			pts[i].X = pot[i].X
			pts[i].Y = S.Eigenvalues[j] + sq[i]
		}
		wl, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		wl.LineStyle.Color = plotutil.Color(j + 1)
		p.Add(wl)
		p.Legend.Add(fmt.Sprintf("|ψ%d|²", j), wl)
	}
	return p.Save(Width, Height, filename)
}

// Levels plots the first nlevels energy levels of each solved system in E against
// x(system), one line per level. Systems lacking a level are skipped for that level.
// E is not modified.
func Levels(E *qrotor.Experiment, x func(*qrotor.System) float64, nlevels int, xlabel, filename string) error {
	if E == nil || E.Len() == 0 {
		return Error{"empty experiment", []string{"Levels"}}
	}
	systems := make([]*qrotor.System, 0, E.Len())
	for _, s := range E.Systems {
		if s != nil && s.Solved() {
			systems = append(systems, s)
		}
	}
	if len(systems) == 0 {
		return Error{"no solved systems in the experiment", []string{"Levels"}}
	}
	sort.SliceStable(systems, func(i, j int) bool { return x(systems[i]) < x(systems[j]) })
	p := newPlot(E.Comment, xlabel, "Energy")
	for lev := 0; lev < nlevels; lev++ {
		var pts plotter.XYs
		for _, s := range systems {
			if lev < len(s.Eigenvalues) {
				pts = append(pts, plotter.XY{X: x(s), Y: s.Eigenvalues[lev]})
			}
		}
		if len(pts) == 0 {
			break
		}
		l, sc, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		c := plotutil.Color(lev)
		l.LineStyle.Color = c
		sc.GlyphStyle.Color = c
		sc.GlyphStyle.Shape = plotutil.Shape(lev)
		p.Add(l, sc)
		p.Legend.Add(fmt.Sprintf("E%d", lev), l, sc)
	}
	return p.Save(Width, Height, filename)
}

// gray is used for reference lines.
var gray = color.Gray{Y: 128}

// Potentials overlays the potentials of all the systems in E that have them.
func Potentials(E *qrotor.Experiment, filename string) error {
	if E == nil || E.Len() == 0 {
		return Error{"empty experiment", []string{"Potentials"}}
	}
	p := newPlot(E.Comment, "Angle (degrees)", "Potential")
	drawn := 0
	for i, s := range E.Systems {
		if s == nil || len(s.PotentialValues) != len(s.Grid) || len(s.Grid) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(s.Grid))
		for k, v := range s.Grid {
			pts[k].X = v * constants.Rad2Deg
			pts[k].Y = s.PotentialValues[k]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		name := s.Comment
		if name == "" {
			name = fmt.Sprintf("system %d", i)
		}
		p.Legend.Add(name, l)
		drawn++
	}
	if drawn == 0 {
		return Error{"no system with potential values", []string{"Potentials"}}
	}
	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 360, Y: 0}})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = gray
	zero.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(zero)
	return p.Save(Width, Height, filename)
}
