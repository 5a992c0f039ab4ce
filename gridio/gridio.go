/*
 * gridio.go, part of dftcxx.
 *
 * Copyright 2024 The dftcxx authors.
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

package gridio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rkalescky/dftcxx/grid"
)

// Record is one point of a grid dump.
type Record struct {
	Position [3]float64
	Weight   float64
	Density  float64
}

// Writer writes a grid dump.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	b         *bufio.Writer
	filename  string
	header    map[string]string
	writeable bool
}

// NewWriter creates the file name and returns a Writer for it. The pairs in header,
// if given, are written to the header of the file. The header itself is written with
// the first (and only) grid.
func NewWriter(name string, header map[string]string) (*Writer, error) {
	W := new(Writer)
	var err error
	W.filename = name
	W.f, err = os.Create(name)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	if compression(name) == 'z' {
		W.h, err = gzip.NewWriterLevel(W.f, gzip.BestCompression)
	} else {
		W.h, err = zstd.NewWriter(W.f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	}
	if err != nil {
		W.f.Close()
		return nil, &Error{"Can't start compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.b = bufio.NewWriter(W.h)
	W.header = make(map[string]string, len(header))
	for k, v := range header {
		W.header[k] = v
	}
	W.writeable = true
	return W, nil
}

func compression(name string) byte {
	if name == "" {
		return 0
	}
	return strings.ToLower(name)[len(name)-1]
}

// WriteGrid writes the header and all the points of g. A Writer holds
// a single grid, so only the first call succeeds.
func (W *Writer) WriteGrid(g *grid.MolecularGrid) error {
	if !W.writeable {
		return &Error{NotWriteable, W.filename, []string{"WriteGrid"}, true}
	}
	if g == nil {
		return &Error{NilGrid, W.filename, []string{"WriteGrid"}, true}
	}
	W.writeable = false
	W.header["atoms"] = strconv.Itoa(g.Molecule().Len())
	W.header["fineness"] = g.Fineness().String()
	if err := W.writeHeader(g.Len()); err != nil {
		return err
	}
	line := make([]byte, 0, 128)
	for i := 0; i < g.Len(); i++ {
		p := g.Point(i)
		line = appendRecord(line[:0], Record{p.Position(), p.Weight(), p.Density()})
		if _, err := W.b.Write(line); err != nil {
			return &Error{err.Error(), W.filename, []string{"WriteGrid"}, true}
		}
	}
	return nil
}

// The keys are sorted so the same grid always gives the same file.
func (W *Writer) writeHeader(npoints int) error {
	keys := make([]string, 0, len(W.header))
	for k := range W.header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.ContainsAny(k, "=\n") || strings.Contains(W.header[k], "\n") || strings.HasPrefix(k, "**") {
			return &Error{fmt.Sprintf("Invalid header pair %q=%q", k, W.header[k]), W.filename, []string{"writeHeader"}, true}
		}
		fmt.Fprintf(W.b, "%s=%s\n", k, W.header[k])
	}
	_, err := fmt.Fprintf(W.b, "** %d\n", npoints)
	if err != nil {
		return &Error{err.Error(), W.filename, []string{"writeHeader"}, true}
	}
	return nil
}

func appendRecord(b []byte, r Record) []byte {
	for _, v := range r.Position {
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
		b = append(b, ' ')
	}
	b = strconv.AppendFloat(b, r.Weight, 'g', -1, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, r.Density, 'g', -1, 64)
	return append(b, '\n')
}

// Close flushes the buffers and closes the file. The Writer can't be used after this call.
func (W *Writer) Close() error {
	if W == nil || W.f == nil {
		return nil
	}
	W.writeable = false
	err := W.b.Flush()
	if err2 := W.h.Close(); err == nil {
		err = err2
	}
	if err2 := W.f.Close(); err == nil {
		err = err2
	}
	W.f = nil
	if err != nil {
		return &Error{err.Error(), W.filename, []string{"Close"}, true}
	}
	return nil
}

// Reader reads a grid dump.
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	filename string
	header   map[string]string
	npoints  int
	read     int
	readable bool
}

//*zstd.Decoder's Close doesn't return an error, so it is not an io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// NewReader opens the grid dump name and reads its header.
func NewReader(name string) (*Reader, error) {
	R := &Reader{filename: name, header: make(map[string]string)}
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"NewReader"}, true}
	}
	buffered := bufio.NewReader(R.f)
	if compression(name) == 'z' {
		R.z, err = gzip.NewReader(buffered)
	} else {
		var d *zstd.Decoder
		d, err = zstd.NewReader(buffered)
		if err == nil {
			R.z = zstdCloser{d}
		}
	}
	if err != nil {
		R.f.Close()
		return nil, &Error{"Can't start decompression: " + err.Error(), name, []string{"NewReader"}, true}
	}
	R.h = bufio.NewReader(R.z)
	if err := R.readHeader(); err != nil {
		R.Close()
		return nil, errDecorate(err, "NewReader")
	}
	R.readable = true
	return R, nil
}

func (R *Reader) readHeader() error {
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			return &Error{"Can't read header: " + err.Error(), R.filename, []string{"readHeader"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) < 2 {
				return &Error{fmt.Sprintf("Can't read the number of points from %q", str), R.filename, []string{"readHeader"}, true}
			}
			R.npoints, err = strconv.Atoi(fields[1])
			if err != nil || R.npoints < 0 {
				return &Error{fmt.Sprintf("Can't read the number of points from %q", fields[1]), R.filename, []string{"readHeader"}, true}
			}
			return nil
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok {
			return &Error{fmt.Sprintf("Malformed header line %q", str), R.filename, []string{"readHeader"}, true}
		}
		R.header[k] = v
	}
}

// Header returns the key=value pairs in the header of the file.
func (R *Reader) Header() map[string]string {
	return R.header
}

// Len returns the number of points in the file.
func (R *Reader) Len() int {
	return R.npoints
}

// Next returns the next point in the file. After the last point it returns io.EOF.
func (R *Reader) Next() (Record, error) {
	var rec Record
	if !R.readable {
		return rec, &Error{NotReadable, R.filename, []string{"Next"}, true}
	}
	if R.read == R.npoints {
		return rec, io.EOF
	}
	line, err := R.h.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return rec, &Error{fmt.Sprintf("Expected %d points, found %d: %s", R.npoints, R.read, err.Error()), R.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return rec, &Error{fmt.Sprintf("Point %d: expected 5 fields, found %d", R.read, len(fields)), R.filename, []string{"Next"}, true}
	}
	var v [5]float64
	for i, s := range fields {
		v[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return rec, &Error{fmt.Sprintf("Point %d: %s", R.read, err.Error()), R.filename, []string{"Next"}, true}
		}
	}
	R.read++
	rec.Position = [3]float64{v[0], v[1], v[2]}
	rec.Weight = v[3]
	rec.Density = v[4]
	return rec, nil
}

// Close closes the file. The Reader can't be used after this call.
func (R *Reader) Close() {
	if R.f == nil {
		return
	}
	R.z.Close()
	R.f.Close()
	R.f = nil
	R.readable = false
}

// ReadAll reads the whole grid dump name, returning its header and points.
func ReadAll(name string) (map[string]string, []Record, error) {
	R, err := NewReader(name)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadAll")
	}
	defer R.Close()
	recs := make([]Record, 0, R.Len())
	for {
		rec, err := R.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errDecorate(err, "ReadAll")
		}
		recs = append(recs, rec)
	}
	return R.Header(), recs, nil
}
