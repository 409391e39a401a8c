package morpho

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Table {
	return &Table{
		Header: []string{"Sample", "SL", "HL", "BD"},
		Rows: [][]string{
			{"fish1", "100", "25", "40"},
			{"fish2", "80", "20", "n/a"},
			{"fish3", "50", "10"},
		},
	}
}

func TestTable_Transpose(t *testing.T) {
	got := sample().Transpose()
	want := &Table{
		Header: []string{"Sample", "fish1", "fish2", "fish3"},
		Rows: [][]string{
			{"SL", "100", "80", "50"},
			{"HL", "25", "20", "10"},
			{"BD", "40", "n/a", ""},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Table.Transpose() mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_RenameFirstColumn(t *testing.T) {
	in := sample()
	got := in.RenameFirstColumn("Muestras")

	assert.Equal(t, "Muestras", got.Header[0])
	assert.Equal(t, "Sample", in.Header[0], "receiver was modified")
}

func TestTable_DropNonNumeric(t *testing.T) {
	got := sample().DropNonNumeric()

	require.Len(t, got.Rows, 1)
	assert.Equal(t, "fish1", got.Rows[0][0])
}

func TestTable_DivideByColumn(t *testing.T) {
	in := sample().DropNonNumeric()

	got, err := in.DivideByColumn(2)
	require.NoError(t, err)

	// the divisor column is divided by itself after every other cell used it
	assert.Equal(t, []string{"fish1", "4", "1", "1.6"}, got.Rows[0])
	assert.Equal(t, []string{"fish1", "100", "25", "40"}, in.Rows[0], "receiver was modified")

	tests := []struct {
		name string
		col  int
	}{
		{"zero", 0},
		{"past the end", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := in.DivideByColumn(tt.col); err == nil {
				t.Errorf("DivideByColumn(%d) expected an error", tt.col)
			}
		})
	}

	_, err = sample().DivideByColumn(3)
	assert.Error(t, err, "non-numeric divisor")
}

func TestTable_Scale(t *testing.T) {
	in := &Table{
		Header: []string{"Sample", "ratio"},
		Rows:   [][]string{{"fish1", "0.25"}, {"fish2", "1.5"}},
	}

	got, err := in.Scale(100)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"fish1", "25"}, {"fish2", "150"}}, got.Rows)
	assert.Equal(t, "0.25", in.Rows[0][1])

	_, err = sample().Scale(100)
	assert.Error(t, err)
}

func TestTable_Log(t *testing.T) {
	in := &Table{
		Header: []string{"Sample", "a", "b"},
		Rows: [][]string{
			{"fish1", "1", "x"},
			{"fish2", "1", "2"},
		},
	}

	got := in.Log()

	assert.Equal(t, "0", got.Rows[0][1])
	assert.Equal(t, "0", got.Rows[1][1])
	assert.Equal(t, "x", got.Rows[0][2], "non-numeric column left alone")
	assert.Equal(t, "2", got.Rows[1][2])
	assert.Equal(t, "1", in.Rows[0][1])
}

func TestTable_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measurements.xlsx")
	in := sample()

	require.NoError(t, in.Save(path))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, in.Header, got.Header)
	require.Len(t, got.Rows, 3)
	assert.Equal(t, []string{"fish1", "100", "25", "40"}, got.Rows[0])
	assert.Equal(t, []string{"fish3", "50", "10", ""}, got.Rows[2])
}
