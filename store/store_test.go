/*
 * store_test.go, part of qrotor.
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

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type result struct {
	Comment string      `json:"comment"`
	Values  []float64   `json:"values"`
	Vectors [][]float64 `json:"vectors"`
	Levels  int         `json:"levels"`
}

func TestRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	in := &result{Comment: "methyl", Values: []float64{0, 0.6548, 0.6548, 2.6192}, Vectors: [][]float64{{1, 0}, {0, 1}}, Levels: 4}
	for _, name := range []string{"r.qr", "r.zst", "r.gz", "r.flate", "r.s2", "r.json", "r.QR"} {
		fname := filepath.Join(dir, name)
		if err := Save(in, fname); err != nil {
			Te.Fatalf("Save %s: %v", name, err)
		}
		out := new(result)
		if err := Load(fname, out); err != nil {
			Te.Fatalf("Load %s: %v", name, err)
		}
		if !reflect.DeepEqual(in, out) {
			Te.Errorf("%s: saved %v, loaded %v", name, in, out)
		}
		fmt.Println(name, Codec(name), out.Values)
	}
}

func TestCodec(Te *testing.T) {
	expected := map[string]string{
		"a.qr":      "zstd",
		"a":         "zstd",
		"a.gz":      "gzip",
		"a.json.gz": "gzip",
		"a.flate":   "flate",
		"dir/a.s2":  "s2",
		"a.JSON":    "none",
		"a.zst":     "zstd",
	}
	for name, c := range expected {
		if Codec(name) != c {
			Te.Errorf("Codec(%s)=%s, expected %s", name, Codec(name), c)
		}
	}
}

// The codecs must actually differ: a zstd file can't be read as gzip.
func TestWrongCodec(Te *testing.T) {
	dir := Te.TempDir()
	z := filepath.Join(dir, "r.qr")
	if err := Save(&result{Levels: 3}, z); err != nil {
		Te.Fatal(err)
	}
	g := filepath.Join(dir, "r.gz")
	if err := os.Rename(z, g); err != nil {
		Te.Fatal(err)
	}
	if err := Load(g, new(result)); err == nil {
		Te.Error("Loading a zstd file as gzip should fail")
	}
}

func TestErrors(Te *testing.T) {
	dir := Te.TempDir()
	err := Load(filepath.Join(dir, "nothere.qr"), new(result))
	if !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("Expected a not-exist error, got %v", err)
	}
	err = Save(&result{}, filepath.Join(dir, "nodir", "r.qr"))
	if err == nil {
		Te.Error("Saving to a missing directory should fail")
	}
	//unencodable values must not leave files behind
	fname := filepath.Join(dir, "bad.qr")
	if err = Save(map[string]interface{}{"f": func() {}}, fname); err == nil {
		Te.Error("Saving a function should fail")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 0 {
		Te.Errorf("Failed saves left %d files behind", len(entries))
	}
}
