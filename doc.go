/*
 * doc.go, part of qrotor.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package qrotor obtains the quantized energy levels of hindered rotors, such as methyl
and amine groups, from a potential energy profile sampled along the rotation angle.



	**qrotor Capabilities**


    Builds the periodic Laplacian for an evenly spaced angular grid, and the
	Hamiltonian -B*Laplacian + V as sparse matrices.

    Obtains the potential on the grid from a named functional form (see
	the potential subpackage) or takes user-given values. Optionally,
	shifts the potential so its minimum is zero.

    Obtains the lowest energy levels, and, optionally, the wave functions,
	with a shift-invert iterative eigensolver that deals well with the
	degenerate doublets of rotor spectra. Other solvers can be plugged in
	through the Numerics interface.

    Derives energy barriers, first transitions and B-normalized energies.

    Solves whole experiments (sets of systems) sequentially or concurrently,
	never modifying the caller's data, and saves them to compressed files
	(see the store subpackage).

Units are whatever the user chooses, as long as they are consistent. The grid is
in radians, and the defaults (see the constants subpackage) use meV for energies.

The subpackages config, rotplot and cmd/qrotor read experiment definitions from
TOML or YAML files, plot results, and offer a command line interface, respectively.

*/
package qrotor
