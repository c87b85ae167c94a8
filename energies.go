/*
 * energies.go, part of qrotor.
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
	"sync"

	"github.com/rmera/qrotor/store"
)

// Energies resolves the potential and solves the Schrödinger equation for
// a System or for all the systems in an Experiment. The input is copied first,
// and never modified. The results are returned as a new Experiment (with a single
// system if a System was given) in the same order as the input.
//
// With options.Cpus() > 1, that many systems are solved concurrently.
// If options.Destination() is not empty, the results are also saved to that
// file with store.Save. Errors from saving are returned unchanged, together
// with the solved experiment.
func Energies(input Solvable, options ...*Options) (*Experiment, error) {
	o := firstOption(options)
	var E *Experiment
	switch v := input.(type) {
	case *System:
		if v != nil {
			E = v.experiment()
		}
	case *Experiment:
		if v != nil {
			E = v.experiment()
		}
	}
	if E == nil {
		return nil, newConfigError("Energies", "nil input")
	}
	if E.Len() == 0 {
		return nil, newConfigError("Energies", "experiment with no systems")
	}
	for i, s := range E.Systems {
		if s == nil {
			c := newConfigError("Energies", "nil system")
			c.system = i
			return nil, c
		}
	}
	errs := make([]error, E.Len())
	if o.cpus <= 1 || E.Len() == 1 {
		for i, s := range E.Systems {
			if errs[i] = solveOne(s, o); errs[i] != nil {
				break
			}
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, o.cpus)
		for i, s := range E.Systems {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, s *System) {
				defer wg.Done()
				errs[i] = solveOne(s, o)
				<-sem
			}(i, s)
		}
		wg.Wait()
	}
	for i, err := range errs {
		if err != nil {
			if c, ok := err.(ConfigError); ok {
				c.system = i
				err = c
			}
			return nil, errDecorate(err, "Energies")
		}
	}
	if d := E.Degraded(); len(d) > 0 {
		log.Printf("WARNING: %d of %d systems have unconverged levels: %v", len(d), E.Len(), d)
	}
	if o.destination != "" {
		if err := store.Save(E, o.destination); err != nil {
			return E, err
		}
	}
	return E, nil
}

func solveOne(S *System, o *Options) error {
	if _, err := ResolvePotential(S); err != nil {
		return err
	}
	_, err := Schrodinger(S, o)
	return err
}

// Load reads an experiment saved by Energies or store.Save.
// As with any results file, only load files that you trust: the data are
// used as they are, without re-checking them.
func Load(filename string) (*Experiment, error) {
	E := new(Experiment)
	if err := store.Load(filename, E); err != nil {
		return nil, err
	}
	return E, nil
}
