/*
 * errors.go, part of qrotor.
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

package config

// Error is returned for definitions that can't be turned into systems.
// Errors from the file system and the decoders are returned as they are,
// wrapped with the file name. It fulfills qrotor.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return "qrotor/config: " + err.message
}

// Decorate adds the caller's name to the error, and returns the
// list of callers so far.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical always returns true.
func (err Error) Critical() bool { return true }
