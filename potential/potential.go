/*
 * potential.go, part of qrotor.
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

//Package potential evaluates rotational potentials, given by name and a set of constants,
//on a grid of angles (in radians).
package potential

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
)

// Func evaluates a potential at angle x (radians) with constants c.
// c always has at least the number of constants the Form declares.
type Func func(x float64, c []float64) float64

// Form is a named potential.
type Form struct {
	Name string
	//Defaults are used for the constants not given by the user. A potential needs
	//at least Required constants from the user; the rest can come from here.
	Defaults []float64
	Required int
	F        Func
	Doc      string
}

var (
	mu    sync.RWMutex
	forms = map[string]Form{}
)

func init() {
	for _, f := range []Form{
		{
			Name: "zero",
			F:    func(x float64, c []float64) float64 { return 0 },
			Doc:  "V = 0, a free rotor",
		},
		{
			Name:     "sine",
			Defaults: []float64{0, 1, 3, 0},
			Required: 2,
			F:        func(x float64, c []float64) float64 { return c[0] + c[1]*math.Sin(c[2]*x+c[3]) },
			Doc:      "V = C0 + C1 sin(C2 x + C3), C2 defaults to 3",
		},
		{
			Name:     "cosine",
			Defaults: []float64{0, 1, 3, 0},
			Required: 2,
			F:        func(x float64, c []float64) float64 { return c[0] + c[1]*math.Cos(c[2]*x+c[3]) },
			Doc:      "V = C0 + C1 cos(C2 x + C3), C2 defaults to 3",
		},
		{
			Name:     "titov2023",
			Defaults: []float64{0, 0, 0, 0, 0},
			Required: 5,
			F: func(x float64, c []float64) float64 {
				return c[0] + c[1]*math.Sin(3*x) + c[2]*math.Cos(3*x) + c[3]*math.Sin(6*x) + c[4]*math.Cos(6*x)
			},
			Doc: "V = C0 + C1 sin(3x) + C2 cos(3x) + C3 sin(6x) + C4 cos(6x)",
		},
	} {
		if err := Register(f); err != nil {
			panic(err.Error())
		}
	}
}

// Register adds a new potential form. Names are not case-sensitive. It returns an
// error if the form is incomplete or the name is taken.
func Register(f Form) error {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	if name == "" || f.F == nil {
		return Error{"potential forms need a name and a function", []string{"Register"}}
	}
	if f.Required > len(f.Defaults) {
		return Error{fmt.Sprintf("potential %s requires %d constants but only has %d defaults", name, f.Required, len(f.Defaults)), []string{"Register"}}
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := forms[name]; ok {
		return Error{fmt.Sprintf("potential %s already registered", name), []string{"Register"}}
	}
	f.Name = name
	forms[name] = f
	return nil
}

// Get returns the form registered under name, and whether it exists.
func Get(name string) (Form, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := forms[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// Names returns the names of all the registered potentials, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	ret := make([]string, 0, len(forms))
	for k := range forms {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// Solve evaluates the potential called name, with constants c, at each point of grid.
// Missing constants are taken from the potential's defaults; extra constants are
// an error.
func Solve(name string, c []float64, grid []float64) ([]float64, error) {
	f, ok := Get(name)
	if !ok {
		return nil, Error{fmt.Sprintf("unknown potential %q, available: %s", name, strings.Join(Names(), ", ")), []string{"Solve"}}
	}
	if len(c) < f.Required {
		return nil, Error{fmt.Sprintf("potential %s needs at least %d constants (%s), got %d", f.Name, f.Required, f.Doc, len(c)), []string{"Solve"}}
	}
	if len(c) > len(f.Defaults) {
		return nil, Error{fmt.Sprintf("potential %s takes at most %d constants (%s), got %d", f.Name, len(f.Defaults), f.Doc, len(c)), []string{"Solve"}}
	}
	full := append([]float64(nil), f.Defaults...)
	copy(full, c)
	for i, v := range full {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, Error{fmt.Sprintf("potential %s: constant %d is %g", f.Name, i, v), []string{"Solve"}}
		}
	}
	V := make([]float64, len(grid))
	for i, x := range grid {
		V[i] = f.F(x, full)
	}
	return V, nil
}

// Error is the error type for this package. It fulfills qrotor.Error.
// All of these errors come from bad input, so they are critical.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return "qrotor/potential: " + err.message }

// Decorate adds the caller's name to the error and returns the list of callers.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical always returns true.
func (err Error) Critical() bool { return true }
