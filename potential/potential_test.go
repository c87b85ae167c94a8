/*
 * potential_test.go, part of qrotor.
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

package potential

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestForms(Te *testing.T) {
	grid := []float64{0, math.Pi / 6, math.Pi / 3, math.Pi / 2}
	V, err := Solve("zero", nil, grid)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(V, []float64{0, 0, 0, 0}) {
		Te.Errorf("zero potential: %v", V)
	}
	//C2 defaults to 3
	V, err = Solve("Sine", []float64{1, 2}, grid)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.EqualApprox(V, []float64{1, 3, 1, -1}, 1e-12) {
		Te.Errorf("sine potential: %v", V)
	}
	V, err = Solve("cosine", []float64{0, 1, 1, 0}, grid)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.EqualApprox(V, []float64{1, math.Sqrt(3) / 2, 0.5, 0}, 1e-12) {
		Te.Errorf("cosine potential: %v", V)
	}
	V, err = Solve("titov2023", []float64{1, 0, 2, 0, 0}, grid)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.EqualApprox(V, []float64{3, 1, -1, 1}, 1e-12) {
		Te.Errorf("titov2023 potential: %v", V)
	}
}

func TestBadInput(Te *testing.T) {
	grid := []float64{0, 1, 2}
	cases := []struct {
		name string
		c    []float64
	}{
		{"nonexistent", nil},
		{"sine", []float64{1}},
		{"sine", []float64{1, 2, 3, 4, 5}},
		{"titov2023", []float64{1, 2, 3}},
		{"cosine", []float64{1, math.NaN()}},
	}
	for _, c := range cases {
		if _, err := Solve(c.name, c.c, grid); err == nil {
			Te.Errorf("%s with %v accepted", c.name, c.c)
		} else if e, ok := err.(Error); !ok || !e.Critical() {
			Te.Errorf("unexpected error %v", err)
		}
	}
}

func TestRegister(Te *testing.T) {
	err := Register(Form{Name: "Double", Defaults: []float64{1}, F: func(x float64, c []float64) float64 { return c[0] * 2 * x }})
	if err != nil {
		Te.Fatal(err)
	}
	if err := Register(Form{Name: "double", F: func(x float64, c []float64) float64 { return 0 }}); err == nil {
		Te.Errorf("Duplicated name accepted")
	}
	if err := Register(Form{Name: "broken", Required: 2, Defaults: []float64{1}, F: func(x float64, c []float64) float64 { return 0 }}); err == nil {
		Te.Errorf("Form with missing defaults accepted")
	}
	V, err := Solve("double", nil, []float64{1, 2})
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(V, []float64{2, 4}) {
		Te.Errorf("registered potential: %v", V)
	}
	found := false
	for _, n := range Names() {
		if n == "double" {
			found = true
		}
	}
	if !found {
		Te.Errorf("double not in %v", Names())
	}
}
