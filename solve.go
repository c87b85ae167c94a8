/*
 * solve.go, part of qrotor.
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
	"log"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Schrodinger solves the Schrödinger equation for S, which must have its potential
// values already resolved (see ResolvePotential). The ELevels eigenvalues closest
// to the shift in the options (0 by default) are stored in S, together with the
// derived quantities and, if S.SaveEigenvectors is true, the eigenvectors.
//
// If the solver can't converge all the requested levels, the ones that
// converged are stored, S.Degraded is set and a warning is logged. That is
// not considered an error. Errors are returned only for ill-defined systems
// (ConfigError) or failures of the numerical back-end.
// S is modified in place and returned. Results from a previous solve are removed
// first, so a failed solve leaves S without results.
func Schrodinger(S *System, options ...*Options) (*System, error) {
	o := firstOption(options)
	start := time.Now()
	S.clearResults()
	H, err := Hamiltonian(S, o.numerics)
	if err != nil {
		return S, errDecorate(err, "Schrodinger")
	}
	if o.verbose {
		log.Printf("Solving Hamiltonian matrix of size %d...", S.Gridsize())
	}
	res, err := o.numerics.SymNear(H, S.ELevels, o.sigma, S.SaveEigenvectors)
	if err != nil {
		return S, errDecorate(err, "Schrodinger")
	}
	S.Runtime = time.Since(start)
	S.Solver = o.numerics.Name()
	S.Sigma = res.Sigma
	S.Iterations = res.Iterations
	S.Converged = res.Converged()
	S.Degraded = res.Degraded()
	if S.Degraded {
		log.Printf("WARNING: Not all eigenvalues were found: %d of %d converged after %d iterations (%s)", S.Converged, S.ELevels, res.Iterations, S.Comment)
	} else if o.verbose {
		log.Printf("Done in %v.", S.Runtime)
	}
	V := S.PotentialValues
	S.PotentialMax = floats.Max(V)
	S.PotentialMin = floats.Min(V)
	S.PotentialMaxB = S.PotentialMax / S.B
	S.Eigenvalues = copyFloats(res.Values)
	if len(S.Eigenvalues) == 0 {
		return S, nil
	}
	S.EnergyBarrier = S.PotentialMax - floats.Min(S.Eigenvalues)
	if len(S.Eigenvalues) > 1 {
		S.FirstTransition = S.Eigenvalues[1] - S.Eigenvalues[0]
	}
	S.EigenvaluesB = copyFloats(S.Eigenvalues)
	floats.Scale(1/S.B, S.EigenvaluesB)
	if S.SaveEigenvectors && res.Vectors != nil {
		_, c := res.Vectors.Dims()
		S.Eigenvectors = make([][]float64, c)
		for j := range S.Eigenvectors {
			S.Eigenvectors[j] = mat.Col(nil, j, res.Vectors)
		}
	}
	return S, nil
}
