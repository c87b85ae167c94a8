/*
 * store.go, part of qrotor.
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

//Package store saves and loads results as compressed JSON files.
//
//The compression is chosen from the file extension:
//
//	.gz     gzip
//	.flate  raw deflate
//	.s2     S2 (a faster Snappy)
//	.json   no compression
//	others  Z-standard (the default, and what .qr files use)
//
//The files carry no version information, and no checks are performed on the loaded data
//beyond JSON decoding. Do not trust files from unknown sources: a crafted file
//can't execute code, but it can contain any data (for instance, huge grids or
//results that were never computed).
package store

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// Extension is the default extension for result files.
const Extension = ".qr"

// Codec returns the name of the compression used for filename.
func Codec(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		return "gzip"
	case ".flate":
		return "flate"
	case ".s2":
		return "s2"
	case ".json":
		return "none"
	}
	return "zstd"
}

// nopWriteCloser adds a no-op Close to an io.Writer.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// zstdReadCloser adapts *zstd.Decoder, whose Close method returns nothing,
// to io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newWriter(codec string, w io.Writer) (io.WriteCloser, error) {
	switch codec {
	case "gzip":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case "flate":
		return flate.NewWriter(w, flate.BestCompression)
	case "s2":
		return s2.NewWriter(w, s2.WriterBetterCompression()), nil
	case "none":
		return nopWriteCloser{w}, nil
	}
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
}

func newReader(codec string, r io.Reader) (io.ReadCloser, error) {
	switch codec {
	case "gzip":
		return gzip.NewReader(r)
	case "flate":
		return flate.NewReader(r), nil
	case "s2":
		return io.NopCloser(s2.NewReader(r)), nil
	case "none":
		return io.NopCloser(r), nil
	}
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zstdReadCloser{d}, nil
}

// Save writes v, JSON-encoded and compressed according to the extension of filename.
// The data are written to a temporary file that replaces filename only when
// everything went well, so a failed Save never leaves a truncated file behind.
// Errors are returned as they come from the operating system or the encoders.
func Save(v interface{}, filename string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	w, err := newWriter(Codec(filename), tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if err = enc.Encode(v); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}

// Load decodes the file filename, compressed according to its extension, into v,
// which must be a pointer. See the package documentation regarding untrusted files.
func Load(filename string, v interface{}) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	r, err := newReader(Codec(filename), f)
	if err != nil {
		return err
	}
	defer r.Close()
	return json.NewDecoder(r).Decode(v)
}
