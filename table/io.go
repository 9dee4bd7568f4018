// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/exdata/exemplar/base/errors"
	"github.com/exdata/exemplar/column"
)

// Delims are the standard CSV delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space

	// Detect is used during reading a file: reads the first line
	// and detects tabs or commas.
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

const (
	// Headers is passed to CSV methods for the headers arg, to use
	// headers that capture column type information, enabling full
	// reloading of exactly the same table format and data.
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg,
	// to write only the data.
	NoHeaders = false
)

// headerToKind maps special header prefix characters to column kinds.
var headerToKind = map[byte]column.Kind{
	'$': column.KindString,
	'#': column.KindFloat,
	'|': column.KindInt,
}

// headerChar returns the special header prefix character for the given kind.
func headerChar(kind column.Kind) byte {
	switch kind {
	case column.KindFloat:
		return '#'
	case column.KindInt:
		return '|'
	default:
		return '$'
	}
}

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then generate column headers that capture the
// column kinds, enabling full reloading of exactly the same table
// format and data (recommended). Otherwise, only the data is written.
func (dt *Table) SaveCSV(filename string, delim Delims, headers bool) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim, headers)
	bw.Flush()
	return err
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the
// official CSV standard. The first row of the file is assumed to be
// headers, and columns are constructed therefrom: if the headers
// carry the special kind prefixes written by [Table.SaveCSV], those
// determine the column kinds, and otherwise kinds are inferred
// from the data values.
func (dt *Table) OpenCSV(filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [Table.OpenCSV] that uses an [fs.FS] filesystem.
func (dt *Table) OpenFS(fsys fs.FS, filename string, delim Delims) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a table from the given reader, per [Table.OpenCSV].
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	if delim == Detect {
		br := bufio.NewReader(r)
		line, err := br.ReadString('\n')
		if err != nil && len(line) == 0 {
			return err
		}
		if strings.Count(line, "\t") > strings.Count(line, ",") {
			delim = Tab
		} else {
			delim = Comma
		}
		r = io.MultiReader(strings.NewReader(line), br)
	}
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	rec, err := cr.ReadAll()
	if err != nil || len(rec) == 0 {
		return err
	}
	dt.DeleteAll()
	err = configFromHeaders(dt, rec[0], rec)
	if err != nil {
		return errors.Log(err)
	}
	rows := len(rec) - 1
	dt.SetNumRows(rows)
	for ri := 0; ri < rows; ri++ {
		for ci, cl := range dt.Columns.Values {
			if ci >= len(rec[ri+1]) {
				break
			}
			cl.SetString1D(strings.TrimSpace(rec[ri+1][ci]), ri)
		}
	}
	return nil
}

// configFromHeaders configures the table columns based on the headers:
// special kind-prefixed headers take precedence, and otherwise the
// data values are examined to infer the kinds.
func configFromHeaders(dt *Table, hdrs []string, rec [][]string) error {
	if detectHeaders(hdrs) {
		for _, hd := range hdrs {
			hd = strings.TrimSpace(hd)
			if hd == "" {
				continue
			}
			dt.AddColumnOfKind(headerToKind[hd[0]], hd[1:])
		}
		return nil
	}
	nr := len(rec)
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		kind := column.KindInt
		for ri := 1; ri < nr; ri++ {
			rv := strings.TrimSpace(rec[ri][ci])
			if rv == "" {
				continue
			}
			ck := inferKind(rv)
			if ck == column.KindString {
				kind = ck
				break
			}
			if ck == column.KindFloat && kind == column.KindInt {
				kind = ck
			}
		}
		dt.AddColumnOfKind(kind, hd)
	}
	return nil
}

// detectHeaders looks for the special kind prefix characters,
// returning true only if all headers carry them.
func detectHeaders(hdrs []string) bool {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		if _, ok := headerToKind[hd[0]]; !ok {
			return false
		}
	}
	return true
}

// inferKind returns the inferred column kind for the given string,
// preferring int, then float, then string.
func inferKind(str string) column.Kind {
	if _, err := strconv.ParseInt(str, 10, 64); err == nil {
		return column.KindInt
	}
	if _, err := strconv.ParseFloat(str, 64); err == nil {
		return column.KindFloat
	}
	return column.KindString
}

// WriteCSV writes a table to the given writer, per [Table.SaveCSV].
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		hdrs := make([]string, dt.NumColumns())
		for ci, cl := range dt.Columns.Values {
			hdrs[ci] = string([]byte{headerChar(cl.Kind())}) + dt.Columns.Keys[ci]
		}
		if err := cw.Write(hdrs); err != nil {
			return errors.Log(err)
		}
	}
	rec := make([]string, dt.NumColumns())
	for ri := 0; ri < dt.Rows; ri++ {
		for ci, cl := range dt.Columns.Values {
			rec[ci] = cl.String1D(ri)
		}
		if err := cw.Write(rec); err != nil {
			return errors.Log(err)
		}
	}
	cw.Flush()
	return cw.Error()
}
