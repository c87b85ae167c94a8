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

package sparse

import "strings"

// Error is the error type for the sparse package. It fulfills qrotor.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return "qrotor/sparse: " + err.message
}

// Decorate adds the caller's name to the error, and returns the
// list of callers so far. With an empty string, it just returns the list.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical.
// Every error in this package is due to invalid input, hence, critical.
func (err Error) Critical() bool { return err.critical }

// Trace returns the callers that handled the error, innermost first.
func (err Error) Trace() string { return strings.Join(err.deco, " < ") }

// errDecorate decorates err with caller if it is an Error. Other errors
// are returned untouched.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}
