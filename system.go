/*
 * system.go, part of qrotor.
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

package qrotor

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rmera/qrotor/constants"
	"github.com/rmera/qrotor/sparse"
)

// System is a single rotor: the grid and potential that define it, the
// solver settings and, after a solve, the results.
type System struct {
	Comment string `json:"comment,omitempty"`
	Group   string `json:"group,omitempty"` //CH3, NH3, etc.

	Grid []float64 `json:"grid"` //radians, evenly spaced over one period.
	B    float64   `json:"B"`    //rotational constant

	PotentialName            string    `json:"potential_name,omitempty"`
	PotentialConstants       []float64 `json:"potential_constants,omitempty"`
	PotentialValues          []float64 `json:"potential_values,omitempty"`
	CorrectPotentialOffset   bool      `json:"correct_potential_offset"`
	CorrectedPotentialOffset float64   `json:"corrected_potential_offset"`

	ELevels          int  `json:"E_levels"`
	SaveEigenvectors bool `json:"save_eigenvectors"`

	//Results
	Eigenvalues     []float64     `json:"eigenvalues,omitempty"`
	Eigenvectors    [][]float64   `json:"eigenvectors,omitempty"` //Eigenvectors[i] goes with Eigenvalues[i]
	Runtime         time.Duration `json:"runtime,omitempty"`
	PotentialMax    float64       `json:"potential_max"`
	PotentialMin    float64       `json:"potential_min"`
	EnergyBarrier   float64       `json:"energy_barrier"`
	FirstTransition float64       `json:"first_transition"`
	EigenvaluesB    []float64     `json:"eigenvalues_B,omitempty"`
	PotentialMaxB   float64       `json:"potential_max_B"`

	//Convergence report. Converged < ELevels means that the solver
	//could not obtain all the requested levels, and Degraded is set.
	Converged  int     `json:"converged"`
	Degraded   bool    `json:"degraded"`
	Iterations int     `json:"iterations,omitempty"`
	Sigma      float64 `json:"sigma"`
	Solver     string  `json:"solver,omitempty"`
}

// Default values for new systems.
const (
	DefaultGridsize = 200
	DefaultELevels  = 5
)

// NewSystem returns a System with a grid of DefaultGridsize points, the
// rotational constant of a methyl group and DefaultELevels requested levels.
// The potential is not set.
func NewSystem() *System {
	S := &System{
		Group:   "CH3",
		B:       constants.BCH3,
		ELevels: DefaultELevels,
	}
	S.SetGrid(DefaultGridsize)
	return S
}

// SetGrid sets a grid of n evenly spaced points covering [0, 2π). The end
// point is not included, as it is the same as the first one. Any previous
// potential values are discarded, as they would no longer match the grid.
func (S *System) SetGrid(n int) {
	S.Grid = make([]float64, n)
	for i := range S.Grid {
		S.Grid[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	S.PotentialValues = nil
}

// Gridsize returns the number of points in the grid.
func (S *System) Gridsize() int {
	return len(S.Grid)
}

// Solved returns true if the system contains results.
func (S *System) Solved() bool {
	return len(S.Eigenvalues) > 0
}

// Copy returns a deep copy of the system.
func (S *System) Copy() *System {
	if S == nil {
		return nil
	}
	r := *S
	r.Grid = copyFloats(S.Grid)
	r.PotentialConstants = copyFloats(S.PotentialConstants)
	r.PotentialValues = copyFloats(S.PotentialValues)
	r.Eigenvalues = copyFloats(S.Eigenvalues)
	r.EigenvaluesB = copyFloats(S.EigenvaluesB)
	if S.Eigenvectors != nil {
		r.Eigenvectors = make([][]float64, len(S.Eigenvectors))
		for i, v := range S.Eigenvectors {
			r.Eigenvectors[i] = copyFloats(v)
		}
	}
	return &r
}

func copyFloats(f []float64) []float64 {
	if f == nil {
		return nil
	}
	return append(make([]float64, 0, len(f)), f...)
}

// clearResults removes all results from a previous solve.
func (S *System) clearResults() {
	S.Eigenvalues = nil
	S.Eigenvectors = nil
	S.EigenvaluesB = nil
	S.Runtime = 0
	S.PotentialMax, S.PotentialMin = 0, 0
	S.EnergyBarrier, S.FirstTransition, S.PotentialMaxB = 0, 0, 0
	S.Converged, S.Iterations = 0, 0
	S.Degraded = false
	S.Sigma = 0
	S.Solver = ""
}

// Check verifies that the system is well defined. If potential is true, it also
// requires the potential values to be present and to match the grid.
// It returns a ConfigError, or nil.
func (S *System) Check(potential bool) error {
	if S == nil {
		return newConfigError("Check", "nil system")
	}
	if _, err := sparse.Spacing(S.Grid); err != nil {
		return asConfigError(err, "Check")
	}
	if !(S.B > 0) || math.IsInf(S.B, 0) {
		return newConfigError("Check", "the rotational constant B must be positive, got %g", S.B)
	}
	if S.ELevels <= 0 || S.ELevels >= S.Gridsize() {
		return newConfigError("Check", "E_levels must be between 1 and gridsize-1 (%d), got %d", S.Gridsize()-1, S.ELevels)
	}
	if !potential {
		return nil
	}
	if len(S.PotentialValues) != len(S.Grid) {
		return newConfigError("Check", "%d potential values for %d grid points", len(S.PotentialValues), len(S.Grid))
	}
	for i, v := range S.PotentialValues {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newConfigError("Check", "potential value %d is %g", i, v)
		}
	}
	return nil
}

func (S *System) String() string {
	name := S.PotentialName
	if name == "" {
		name = "user values"
	}
	ret := fmt.Sprintf("%s %s gridsize=%d B=%g potential=%s %v", S.Comment, S.Group, S.Gridsize(), S.B, name, S.PotentialConstants)
	if S.Solved() {
		ret += fmt.Sprintf(" | E=%v barrier=%g transition=%g", S.Eigenvalues, S.EnergyBarrier, S.FirstTransition)
		if S.Degraded {
			ret += fmt.Sprintf(" (only %d/%d levels converged)", S.Converged, S.ELevels)
		}
	}
	return ret
}

// Experiment is an ordered set of systems, each solved independently.
type Experiment struct {
	Comment string    `json:"comment,omitempty"`
	Systems []*System `json:"systems"`
}

// NewExperiment returns an experiment containing the given systems. The systems are
// not copied.
func NewExperiment(comment string, systems ...*System) *Experiment {
	return &Experiment{Comment: comment, Systems: systems}
}

// Len returns the number of systems in the experiment.
func (E *Experiment) Len() int {
	return len(E.Systems)
}

// Copy returns a deep copy of the experiment.
func (E *Experiment) Copy() *Experiment {
	if E == nil {
		return nil
	}
	r := &Experiment{Comment: E.Comment, Systems: make([]*System, len(E.Systems))}
	for i, s := range E.Systems {
		r.Systems[i] = s.Copy()
	}
	return r
}

// Eigenvalues returns the eigenvalues of every system, in order.
func (E *Experiment) Eigenvalues() [][]float64 {
	ret := make([][]float64, len(E.Systems))
	for i, s := range E.Systems {
		ret[i] = copyFloats(s.Eigenvalues)
	}
	return ret
}

// Groups returns the distinct chemical groups in the experiment, in order of appearance.
func (E *Experiment) Groups() []string {
	seen := make(map[string]bool)
	var ret []string
	for _, s := range E.Systems {
		if s.Group != "" && !seen[s.Group] {
			seen[s.Group] = true
			ret = append(ret, s.Group)
		}
	}
	return ret
}

// Degraded returns the indexes of the systems for which not all the requested levels converged.
func (E *Experiment) Degraded() []int {
	var ret []int
	for i, s := range E.Systems {
		if s.Degraded {
			ret = append(ret, i)
		}
	}
	return ret
}

// SortBy sorts the systems in the experiment, in place, by increasing key value.
// Systems with equal keys keep their order.
func (E *Experiment) SortBy(key func(*System) float64) {
	sort.SliceStable(E.Systems, func(i, j int) bool {
		return key(E.Systems[i]) < key(E.Systems[j])
	})
}

// SortKeys are named keys for Experiment.SortBy and for plotting energy levels
// across an experiment.
var SortKeys = map[string]func(*System) float64{
	"pmax":       func(S *System) float64 { return S.PotentialMax },
	"B":          func(S *System) float64 { return S.B },
	"barrier":    func(S *System) float64 { return S.EnergyBarrier },
	"transition": func(S *System) float64 { return S.FirstTransition },
}

// Solvable is either a *System or an *Experiment. The interface can't be
// implemented outside this package.
type Solvable interface {
	//experiment returns a deep copy of the receiver as an experiment.
	experiment() *Experiment
}

func (S *System) experiment() *Experiment {
	return &Experiment{Comment: S.Comment, Systems: []*System{S.Copy()}}
}

func (E *Experiment) experiment() *Experiment {
	return E.Copy()
}
