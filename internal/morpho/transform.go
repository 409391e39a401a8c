package morpho

import (
	"fmt"
	"math"
)

// Transpose turns each measurement column into a row. The sample labels of
// the first column become the new header.
func (t *Table) Transpose() *Table {
	p := t.padded()
	w := p.Width()

	out := &Table{Header: make([]string, 0, len(p.Rows)+1)}
	if w > 0 {
		out.Header = append(out.Header, p.Header[0])
	}
	for _, r := range p.Rows {
		out.Header = append(out.Header, r[0])
	}

	for j := 1; j < w; j++ {
		row := []string{p.Header[j]}
		for _, r := range p.Rows {
			row = append(row, r[j])
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// RenameFirstColumn sets the header of the label column.
func (t *Table) RenameFirstColumn(name string) *Table {
	out := t.padded()
	if len(out.Header) == 0 {
		out.Header = []string{name}
		return out
	}
	out.Header[0] = name
	return out
}

// DropNonNumeric keeps only the rows whose measurements all parse as numbers.
func (t *Table) DropNonNumeric() *Table {
	p := t.padded()
	out := &Table{Header: p.Header}
	for _, r := range p.Rows {
		keep := true
		for _, v := range r[1:] {
			if _, ok := number(v); !ok {
				keep = false
				break
			}
		}
		if keep {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// DivideByColumn divides every measurement of a row by that row's value in
// measurement column n (1-based, the label column is not counted).
func (t *Table) DivideByColumn(n int) (*Table, error) {
	out := t.padded()
	if n < 1 || n >= out.Width() {
		return nil, fmt.Errorf("column %d is out of range, the table has %d measurement columns", n, out.Width()-1)
	}

	for i, r := range out.Rows {
		divisor, ok := number(r[n])
		if !ok {
			return nil, fmt.Errorf("row %d: divisor %q is not a number", i+1, r[n])
		}
		for j := 1; j < len(r); j++ {
			v, ok := number(r[j])
			if !ok {
				return nil, fmt.Errorf("row %d, column %d: %q is not a number", i+1, j, r[j])
			}
			r[j] = format(v / divisor)
		}
	}
	return out, nil
}

// Scale multiplies every measurement by factor.
func (t *Table) Scale(factor float64) (*Table, error) {
	out := t.padded()
	for i, r := range out.Rows {
		for j := 1; j < len(r); j++ {
			v, ok := number(r[j])
			if !ok {
				return nil, fmt.Errorf("row %d, column %d: %q is not a number", i+1, j, r[j])
			}
			r[j] = format(v * factor)
		}
	}
	return out, nil
}

// Log takes the natural log of every measurement column whose cells are all
// finite numbers. Other columns are copied unchanged.
func (t *Table) Log() *Table {
	out := t.padded()
	for j := 1; j < out.Width(); j++ {
		numeric := true
		for _, r := range out.Rows {
			if _, ok := finite(r[j]); !ok {
				numeric = false
				break
			}
		}
		if !numeric {
			continue
		}
		for _, r := range out.Rows {
			v, _ := finite(r[j])
			r[j] = format(math.Log(v))
		}
	}
	return out
}
