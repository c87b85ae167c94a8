/*
 * constants_test.go, part of qrotor.
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

package constants

import (
	"fmt"
	"math"
	"testing"
)

func TestGroups(Te *testing.T) {
	fmt.Println("B (meV): CH3", BCH3, "CD3", BCD3, "NH3", BNH3, "ND3", BND3)
	//methyl rotational constant is ~0.65 meV (~5.3 cm-1)
	if math.Abs(BCH3-0.655) > 0.01 {
		Te.Errorf("Unexpected B for CH3: %g meV", BCH3)
	}
	if math.Abs(BCH3*MeVToCM1-5.28) > 0.1 {
		Te.Errorf("Unexpected B for CH3: %g cm-1", BCH3*MeVToCM1)
	}
	//deuteration roughly halves B
	if r := BCD3 / BCH3; math.Abs(r-MassH/MassD) > 1e-12 {
		Te.Errorf("BCD3/BCH3 = %g, expected %g", r, MassH/MassD)
	}
	if b, ok := GroupB(" nh3"); !ok || b != BNH3 {
		Te.Errorf("GroupB failed for nh3: %g %v", b, ok)
	}
	if _, ok := GroupB("SiH3"); ok {
		Te.Errorf("Unknown group accepted")
	}
}
