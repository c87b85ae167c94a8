/*
 * sparse_test.go, part of qrotor.
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

package sparse

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func evenGrid(n int) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return g
}

func TestLaplacian4(Te *testing.T) {
	grid := []float64{0, 0.5, 1.0, 1.5}
	L, err := PeriodicLaplacian(grid)
	if err != nil {
		Te.Fatal(err)
	}
	dx2 := 0.25
	expected := mat.NewDense(4, 4, []float64{
		-2, 1, 0, 1,
		1, -2, 1, 0,
		0, 1, -2, 1,
		1, 0, 1, -2,
	})
	expected.Scale(1/dx2, expected)
	if !mat.EqualApprox(L.Dense(), expected, 1e-12) {
		Te.Errorf("Wrong Laplacian:\n%v\nexpected\n%v", mat.Formatted(L.Dense()), mat.Formatted(expected))
	}
	if L.NNZ() != 12 {
		Te.Errorf("Expected 12 stored elements, got %d", L.NNZ())
	}
}

func TestLaplacianConstant(Te *testing.T) {
	for _, n := range []int{3, 4, 17, 360} {
		L, err := PeriodicLaplacian(evenGrid(n))
		if err != nil {
			Te.Fatal(err)
		}
		v := make([]float64, n)
		for i := range v {
			v[i] = 3.7
		}
		out := make([]float64, n)
		L.MulVecTo(out, v)
		for i, o := range out {
			if o != 0 {
				Te.Errorf("n=%d: Laplacian of a constant is %g at %d, expected exactly 0", n, o, i)
				break
			}
		}
	}
}

func TestLaplacianBadGrids(Te *testing.T) {
	bad := map[string][]float64{
		"short":      {0, 1},
		"decreasing": {3, 2, 1, 0},
		"uneven":     {0, 1, 2, 3.5, 4},
		"repeated":   {0, 0, 0},
	}
	for name, g := range bad {
		_, err := PeriodicLaplacian(g)
		if err == nil {
			Te.Errorf("%s grid accepted", name)
			continue
		}
		e, ok := err.(Error)
		if !ok || !e.Critical() {
			Te.Errorf("%s grid: unexpected error type %T", name, err)
		}
		fmt.Println(name, err, e.Trace())
	}
}

func TestArithmetic(Te *testing.T) {
	A := NewTriplets(3, []int{0, 1, 2, 0, 0}, []int{0, 1, 2, 2, 2}, []float64{1, 2, 3, 4, 1})
	if A.At(0, 2) != 5 {
		Te.Errorf("Repeated entries not summed: %g", A.At(0, 2))
	}
	B := Diag([]float64{1, 1, 1})
	C := AddScaled(A, -1, B)
	if !floats.Equal(C.Diagonal(), []float64{0, 1, 2}) {
		Te.Errorf("Wrong diagonal %v", C.Diagonal())
	}
	//the zero in 0,0 must not be stored
	if C.NNZ() != 3 {
		Te.Errorf("Expected 3 stored elements, got %d:\n%s", C.NNZ(), C)
	}
	if A.NormInf() != 6 {
		Te.Errorf("Wrong infinity norm %g", A.NormInf())
	}
	if A.IsSymmetric(0) {
		Te.Errorf("Non-symmetric matrix reported as symmetric")
	}
	x := []float64{1, 2, 3}
	got := make([]float64, 3)
	A.MulVecTo(got, x)
	want := mat.NewVecDense(3, nil)
	want.MulVec(A, mat.NewVecDense(3, x))
	if !floats.EqualApprox(got, want.RawVector().Data, 1e-14) {
		Te.Errorf("MulVecTo %v, gonum says %v", got, want.RawVector().Data)
	}
	S := A.Shift(2)
	if S.At(1, 1) != 0 || S.At(2, 2) != 1 {
		Te.Errorf("Wrong shift:\n%s", S)
	}
}

func TestCyclic(Te *testing.T) {
	L, err := PeriodicLaplacian(evenGrid(6))
	if err != nil {
		Te.Fatal(err)
	}
	H := Add(L.Scale(-1), Diag([]float64{1, 2, 3, 4, 5, 6}))
	C, ok := H.Cyclic(1e-12)
	if !ok {
		Te.Fatalf("Periodic Hamiltonian not recognized as cyclic")
	}
	if C.D[3] != H.At(3, 3) || C.E[2] != H.At(2, 3) || C.Corner != H.At(0, 5) {
		Te.Errorf("Wrong cyclic representation %+v", C)
	}
	full := Add(H, NewTriplets(6, []int{0, 2}, []int{2, 0}, []float64{1, 1}))
	if _, ok := full.Cyclic(1e-12); ok {
		Te.Errorf("Matrix with elements outside the band reported as cyclic")
	}
}
