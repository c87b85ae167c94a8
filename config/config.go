/*
 * config.go, part of qrotor.
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

//Package config reads experiment definitions from TOML or YAML files.
//
//A definition has an optional comment, a "defaults" table and a list of systems.
//Any field missing in a system is taken from the defaults, and anything missing
//in both gets the library default (see qrotor.NewSystem). For instance, in TOML:
//
//	comment = "methyl groups"
//
//	[defaults]
//	group = "CH3"
//	gridsize = 500
//	potential_name = "cosine"
//	correct_potential_offset = true
//
//	[[systems]]
//	comment = "weak barrier"
//	potential_constants = [0, 2]
//
//	[[systems]]
//	comment = "strong barrier"
//	potential_constants = [0, 20]
//
//If a system gives a group but no B, B is the rotational constant of that group.
//A definition with no systems and a defaults table defines a single system.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/facette/natsort"
	"github.com/rmera/qrotor"
	"github.com/rmera/qrotor/constants"
	"gopkg.in/yaml.v3"
)

// Entry is a system as written in a definition file. Nil fields were not given.
type Entry struct {
	Comment                *string   `toml:"comment" yaml:"comment"`
	Group                  *string   `toml:"group" yaml:"group"`
	Gridsize               *int      `toml:"gridsize" yaml:"gridsize"`
	Grid                   []float64 `toml:"grid" yaml:"grid"` //radians. Takes precedence over gridsize.
	B                      *float64  `toml:"B" yaml:"B"`
	PotentialName          *string   `toml:"potential_name" yaml:"potential_name"`
	PotentialConstants     []float64 `toml:"potential_constants" yaml:"potential_constants"`
	PotentialValues        []float64 `toml:"potential_values" yaml:"potential_values"`
	CorrectPotentialOffset *bool     `toml:"correct_potential_offset" yaml:"correct_potential_offset"`
	ELevels                *int      `toml:"E_levels" yaml:"E_levels"`
	SaveEigenvectors       *bool     `toml:"save_eigenvectors" yaml:"save_eigenvectors"`
}

// Definition is the content of a definition file.
type Definition struct {
	Comment  string  `toml:"comment" yaml:"comment"`
	Defaults *Entry  `toml:"defaults" yaml:"defaults"`
	Systems  []Entry `toml:"systems" yaml:"systems"`
}

// Extensions are the file extensions recognized as definition files.
var Extensions = []string{".toml", ".yaml", ".yml"}

// IsDefinition returns true if the extension of name is one of Extensions.
func IsDefinition(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, v := range Extensions {
		if ext == v {
			return true
		}
	}
	return false
}

// Decode parses data in the given format ("toml" or "yaml"). Unknown keys are errors.
func Decode(data []byte, format string) (*Definition, error) {
	D := new(Definition)
	switch format {
	case "toml":
		meta, err := toml.Decode(string(data), D)
		if err != nil {
			return nil, err
		}
		if u := meta.Undecoded(); len(u) > 0 {
			return nil, Error{fmt.Sprintf("unknown key %q", u[0].String()), []string{"Decode"}}
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(D); err != nil {
			return nil, err
		}
	default:
		return nil, Error{fmt.Sprintf("unknown format %q", format), []string{"Decode"}}
	}
	return D, nil
}

// Load reads the definition file path. The format is taken from the extension.
// The systems are built, but their potentials are not resolved.
func Load(path string) (*qrotor.Experiment, error) {
	if !IsDefinition(path) {
		return nil, Error{fmt.Sprintf("%s: not a definition file (extension must be one of %v)", path, Extensions), []string{"Load"}}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	D, err := Decode(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	E, err := D.Experiment()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return E, nil
}

// LoadAll reads all the definitions in paths (see Expand) into a single experiment.
// The comment of the experiment is the one from the first file that has one.
func LoadAll(paths ...string) (*qrotor.Experiment, error) {
	files, err := Expand(paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, Error{"no definition files given", []string{"LoadAll"}}
	}
	E := qrotor.NewExperiment("")
	for _, f := range files {
		e, err := Load(f)
		if err != nil {
			return nil, err
		}
		if E.Comment == "" {
			E.Comment = e.Comment
		}
		E.Systems = append(E.Systems, e.Systems...)
	}
	return E, nil
}

// Expand replaces each directory in paths by the definition files it contains,
// in natural order (so "sys2.toml" comes before "sys10.toml"). Other paths are kept as given.
func Expand(paths ...string) ([]string, error) {
	var ret []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			ret = append(ret, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(entries))
		for _, v := range entries {
			if !v.IsDir() && IsDefinition(v.Name()) {
				names = append(names, v.Name())
			}
		}
		natsort.Sort(names)
		for _, v := range names {
			ret = append(ret, filepath.Join(p, v))
		}
	}
	return ret, nil
}

// Experiment builds the systems in the definition.
func (D *Definition) Experiment() (*qrotor.Experiment, error) {
	defaults := Entry{}
	if D.Defaults != nil {
		defaults = *D.Defaults
	}
	entries := D.Systems
	if len(entries) == 0 && D.Defaults != nil {
		entries = []Entry{{}}
	}
	if len(entries) == 0 {
		return nil, Error{"no systems defined", []string{"Experiment"}}
	}
	E := qrotor.NewExperiment(D.Comment)
	for i, v := range entries {
		S, err := v.Merge(defaults).System()
		if err != nil {
			return nil, fmt.Errorf("system %d: %w", i, err)
		}
		E.Systems = append(E.Systems, S)
	}
	return E, nil
}

// Merge returns a copy of e where the fields not given are taken from defaults.
// A grid given in either entry takes precedence over a gridsize.
func (e Entry) Merge(defaults Entry) Entry {
	r := e
	if r.Comment == nil {
		r.Comment = defaults.Comment
	}
	if r.Group == nil {
		r.Group = defaults.Group
	}
	if r.Grid == nil && r.Gridsize == nil {
		r.Grid = defaults.Grid
		r.Gridsize = defaults.Gridsize
	}
	if r.B == nil {
		r.B = defaults.B
	}
	if r.PotentialName == nil {
		r.PotentialName = defaults.PotentialName
	}
	if r.PotentialConstants == nil {
		r.PotentialConstants = defaults.PotentialConstants
	}
	if r.PotentialValues == nil {
		r.PotentialValues = defaults.PotentialValues
	}
	if r.CorrectPotentialOffset == nil {
		r.CorrectPotentialOffset = defaults.CorrectPotentialOffset
	}
	if r.ELevels == nil {
		r.ELevels = defaults.ELevels
	}
	if r.SaveEigenvectors == nil {
		r.SaveEigenvectors = defaults.SaveEigenvectors
	}
	return r
}

// System builds a qrotor.System from the entry, filling what is missing with
// library defaults, and checks it. The potential is not resolved.
func (e Entry) System() (*qrotor.System, error) {
	S := qrotor.NewSystem()
	if e.Comment != nil {
		S.Comment = *e.Comment
	}
	if e.Group != nil {
		S.Group = *e.Group
		if e.B == nil {
			b, ok := constants.GroupB(S.Group)
			if !ok {
				return nil, Error{fmt.Sprintf("unknown group %q and no B given", S.Group), []string{"System"}}
			}
			S.B = b
		}
	}
	if e.B != nil {
		S.B = *e.B
		if e.Group == nil {
			//the default group no longer describes the system
			S.Group = ""
		}
	}
	switch {
	case e.Grid != nil:
		S.Grid = append([]float64(nil), e.Grid...)
	case e.Gridsize != nil:
		if *e.Gridsize < 3 {
			return nil, Error{fmt.Sprintf("gridsize must be at least 3, got %d", *e.Gridsize), []string{"System"}}
		}
		S.SetGrid(*e.Gridsize)
	}
	if e.PotentialName != nil {
		S.PotentialName = *e.PotentialName
	}
	S.PotentialConstants = append([]float64(nil), e.PotentialConstants...)
	if e.PotentialValues != nil {
		S.PotentialValues = append([]float64(nil), e.PotentialValues...)
	}
	if e.CorrectPotentialOffset != nil {
		S.CorrectPotentialOffset = *e.CorrectPotentialOffset
	}
	if e.ELevels != nil {
		S.ELevels = *e.ELevels
	}
	if e.SaveEigenvectors != nil {
		S.SaveEigenvectors = *e.SaveEigenvectors
	}
	if err := S.Check(false); err != nil {
		return nil, err
	}
	return S, nil
}
