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

package qrotor

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of the caller to the error, and returns the current list of callers. If given an
	//empty string, it just returns the list.
	Decorate(string) []string
	//Critical is true for errors that make the result unusable.
	Critical() bool
}

// ConfigError is returned when a System is not well defined: a grid too short or unevenly spaced,
// a non-positive rotational constant, too many energy levels requested, an unknown potential, and so on.
// These errors are always detected before any matrix is built.
type ConfigError struct {
	message string
	system  int //index of the system in the experiment, -1 if unknown
	deco    []string
	cause   error
}

func (err ConfigError) Error() string {
	s := "qrotor: invalid configuration"
	if err.system >= 0 {
		s = fmt.Sprintf("%s for system %d", s, err.system)
	}
	return s + ": " + err.message
}

// Decorate adds information on the caller to the error.
func (err ConfigError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical always returns true.
func (err ConfigError) Critical() bool { return true }

// System returns the index of the offending system in its experiment, or -1.
func (err ConfigError) System() int { return err.system }

// Unwrap returns the error from a subpackage that originated this one, if any.
func (err ConfigError) Unwrap() error { return err.cause }

// Trace returns the callers that handled the error, innermost first.
func (err ConfigError) Trace() string { return strings.Join(err.deco, " < ") }

func newConfigError(caller, format string, a ...interface{}) ConfigError {
	return ConfigError{message: fmt.Sprintf(format, a...), system: -1, deco: []string{caller}}
}

// asConfigError turns an error from a subpackage into a ConfigError
// keeping the original one available through errors.Unwrap.
func asConfigError(err error, caller string) ConfigError {
	var c ConfigError
	if errors.As(err, &c) {
		c.deco = append(c.deco, caller)
		return c
	}
	return ConfigError{message: err.Error(), system: -1, deco: []string{caller}, cause: err}
}

// IsConfigError returns true if err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var c ConfigError
	return errors.As(err, &c)
}

// errDecorate decorates err with the caller's name, if err implements Error.
// Errors from other sources are returned unchanged.
func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case ConfigError:
		e.deco = append(e.deco, caller)
		return e
	case Error:
		e.Decorate(caller)
		return e
	}
	return err
}
