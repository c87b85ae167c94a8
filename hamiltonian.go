/*
 * hamiltonian.go, part of qrotor.
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
	"github.com/rmera/qrotor/eigen"
	"github.com/rmera/qrotor/sparse"
)

// Numerics provides the linear algebra needed to solve a rotor. It allows to
// use different numerical back-ends without touching the solver.
type Numerics interface {
	//Laplacian returns the periodic second derivative operator for grid.
	Laplacian(grid []float64) (*sparse.Matrix, error)

	//SymNear returns the k eigenpairs of the symmetric matrix H with
	//eigenvalues closest to sigma. See eigen.Solver.
	SymNear(H *sparse.Matrix, k int, sigma float64, vectors bool) (*eigen.Result, error)

	//Name identifies the back-end.
	Name() string
}

// SparseNumerics is the default back-end: a sparse 3-point periodic Laplacian and
// any eigen.Solver.
type SparseNumerics struct {
	eigen.Solver
}

// Laplacian returns sparse.PeriodicLaplacian(grid).
func (N SparseNumerics) Laplacian(grid []float64) (*sparse.Matrix, error) {
	return sparse.PeriodicLaplacian(grid)
}

// DefaultNumerics returns a SparseNumerics using the shift-invert solver with
// its default settings.
func DefaultNumerics() Numerics {
	return SparseNumerics{eigen.NewShiftInvert()}
}

// Laplacian returns the periodic second derivative matrix for the system's grid,
// built with the default back-end.
func Laplacian(grid []float64) (*sparse.Matrix, error) {
	L, err := DefaultNumerics().Laplacian(grid)
	if err != nil {
		return nil, asConfigError(err, "Laplacian")
	}
	return L, nil
}

// Hamiltonian returns the Hamiltonian matrix of S, -B*L + V, where L is the
// Laplacian given by N (the default back-end if N is nil) and V is the diagonal
// matrix of potential values. The potential must be already resolved.
func Hamiltonian(S *System, N Numerics) (*sparse.Matrix, error) {
	if err := S.Check(true); err != nil {
		return nil, errDecorate(err, "Hamiltonian")
	}
	if N == nil {
		N = DefaultNumerics()
	}
	L, err := N.Laplacian(S.Grid)
	if err != nil {
		return nil, asConfigError(err, "Hamiltonian")
	}
	return sparse.AddScaled(sparse.Diag(S.PotentialValues), -S.B, L), nil
}
