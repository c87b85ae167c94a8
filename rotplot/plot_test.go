/*
 * plot_test.go, part of qrotor.
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

package rotplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/qrotor"
)

func solved(Te *testing.T, barrier float64) *qrotor.System {
	Te.Helper()
	S := qrotor.NewSystem()
	S.Comment = "test rotor"
	S.SetGrid(60)
	S.ELevels = 4
	S.SaveEigenvectors = true
	S.PotentialName = "cosine"
	S.PotentialConstants = []float64{0, barrier}
	S.CorrectPotentialOffset = true
	E, err := qrotor.Energies(S, quiet())
	if err != nil {
		Te.Fatal(err)
	}
	return E.Systems[0]
}

func quiet() *qrotor.Options {
	o := qrotor.DefaultOptions()
	o.Verbose(false)
	return o
}

func nonEmpty(Te *testing.T, name string) {
	Te.Helper()
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Errorf("%s is empty", name)
	}
}

func TestEnergies(Te *testing.T) {
	dir := Te.TempDir()
	S := solved(Te, 10)
	for _, name := range []string{"e.png", "e.svg"} {
		f := filepath.Join(dir, name)
		if err := Energies(S, f); err != nil {
			Te.Fatal(err)
		}
		nonEmpty(Te, f)
	}
	f := filepath.Join(dir, "w.png")
	if err := Wavefunctions(S, 0.5, f); err != nil {
		Te.Fatal(err)
	}
	nonEmpty(Te, f)
	S.Eigenvectors = nil
	if err := Wavefunctions(S, 0.5, f); err == nil {
		Te.Error("Wavefunctions without eigenvectors must fail")
	}
	if err := Energies(qrotor.NewSystem(), f); err == nil {
		Te.Error("Energies without potential must fail")
	}
}

func TestLevels(Te *testing.T) {
	dir := Te.TempDir()
	E := qrotor.NewExperiment("barriers", solved(Te, 20), solved(Te, 2), solved(Te, 10))
	f := filepath.Join(dir, "levels.png")
	if err := Levels(E, qrotor.SortKeys["pmax"], 4, "Potential maximum", f); err != nil {
		Te.Fatal(err)
	}
	nonEmpty(Te, f)
	if E.Systems[0].PotentialMax < E.Systems[1].PotentialMax {
		Te.Error("Levels must not reorder the experiment")
	}
	f = filepath.Join(dir, "pots.svg")
	if err := Potentials(E, f); err != nil {
		Te.Fatal(err)
	}
	nonEmpty(Te, f)
	if err := Levels(qrotor.NewExperiment("", qrotor.NewSystem()), qrotor.SortKeys["B"], 2, "B", f); err == nil {
		Te.Error("Levels with no solved systems must fail")
	}
}
