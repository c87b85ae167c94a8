/*
 * options.go, part of qrotor.
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

// Options contains the settings for the Schrodinger and Energies functions.
type Options struct {
	cpus        int
	numerics    Numerics
	sigma       float64
	destination string //file where Energies saves the results. Nothing is saved if empty.
	verbose     bool
}

// DefaultOptions returns options for a sequential solve with the default
// back-end, shift 0, progress messages and no output file.
func DefaultOptions() *Options {
	return &Options{
		cpus:     1,
		numerics: DefaultNumerics(),
		verbose:  true,
	}
}

// Cpus returns the number of systems solved concurrently by Energies,
// and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

// Numerics returns the numerical back-end in use, and sets it to
// a new one, if given.
func (O *Options) Numerics(n ...Numerics) Numerics {
	if len(n) > 0 && n[0] != nil {
		O.numerics = n[0]
	}
	return O.numerics
}

// Sigma returns the shift around which eigenvalues are searched,
// and sets it to a new value, if given.
func (O *Options) Sigma(s ...float64) float64 {
	if len(s) > 0 {
		O.sigma = s[0]
	}
	return O.sigma
}

// Destination returns the file where Energies saves its results,
// and sets it to a new value, if given. An empty name means that
// nothing is saved.
func (O *Options) Destination(name ...string) string {
	if len(name) > 0 {
		O.destination = name[0]
	}
	return O.destination
}

// Verbose returns whether progress is logged, and sets it, if a value is given.
// Warnings about results are always logged.
func (O *Options) Verbose(v ...bool) bool {
	if len(v) > 0 {
		O.verbose = v[0]
	}
	return O.verbose
}

// firstOption returns a copy of the first element of o, with defaults for the
// unset fields, or the default options if there is none.
func firstOption(o []*Options) *Options {
	if len(o) == 0 || o[0] == nil {
		return DefaultOptions()
	}
	r := *o[0]
	if r.numerics == nil {
		r.numerics = DefaultNumerics()
	}
	if r.cpus <= 0 {
		r.cpus = 1
	}
	return &r
}
