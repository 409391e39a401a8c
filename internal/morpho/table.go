// Package morpho normalizes spreadsheets of morphometric measurements. Each
// row is a sample: the first column holds its label and the rest hold
// measurements. Transforms return a new Table and leave their receiver as is.
package morpho

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a sheet of cells. Header is the first row of the sheet.
type Table struct {
	Header []string
	Rows   [][]string
}

// Load reads the first sheet of an .xlsx workbook.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to load %s: empty sheet", path)
	}

	t := &Table{Header: rows[0]}
	for _, row := range rows[1:] {
		t.Rows = append(t.Rows, row)
	}
	return t.padded(), nil
}

// Save writes the table to a new workbook at path. Cells that parse as
// numbers are stored as numbers.
func (t *Table) Save(path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sheet := f.GetSheetName(0)
	for i, row := range append([][]string{t.Header}, t.Rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			if n, ok := finite(v); ok && i > 0 {
				values[j] = n
			} else {
				values[j] = v
			}
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Width is the number of columns.
func (t *Table) Width() int {
	w := len(t.Header)
	for _, r := range t.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	c := &Table{Header: append([]string(nil), t.Header...)}
	for _, r := range t.Rows {
		c.Rows = append(c.Rows, append([]string(nil), r...))
	}
	return c
}

// padded returns a copy where every row is as wide as the table
func (t *Table) padded() *Table {
	w := t.Width()
	c := t.Clone()
	for len(c.Header) < w {
		c.Header = append(c.Header, "")
	}
	for i := range c.Rows {
		for len(c.Rows[i]) < w {
			c.Rows[i] = append(c.Rows[i], "")
		}
	}
	return c
}

// number parses a measurement cell
func number(v string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// finite parses a measurement cell, rejecting NaN and infinities
func finite(v string) (float64, bool) {
	n, ok := number(v)
	if !ok || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func format(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
