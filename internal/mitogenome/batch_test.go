package mitogenome

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func Test_ScanDir(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "b.gbk", "ACGT", nil)
	writeRecord(t, dir, "a.gbk", "ACGT", nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "upper.GBK"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.gbk"), 0755))

	paths, err := ScanDir(dir, ".gbk")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.gbk"), filepath.Join(dir, "b.gbk")}, paths)
}

func Test_ScanDir_errors(t *testing.T) {
	empty := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(empty, "readme.md"), []byte("x"), 0644))

	file := filepath.Join(t.TempDir(), "plain.gbk")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name string
		dir  string
		want error
	}{
		{"missing", filepath.Join(empty, "nope"), ErrInputNotFound},
		{"not a directory", file, ErrInputNotFound},
		{"no records", empty, ErrNoMatchingFiles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScanDir(tt.dir, ".gbk")
			if !errors.Is(err, tt.want) {
				t.Errorf("ScanDir() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// three records: one complete, one partial, one unreadable
func Test_batch(t *testing.T) {
	c := DefaultCatalogue()
	dir := t.TempDir()

	seq := strings.Repeat("ACGT", 200)
	writeRecord(t, dir, "a_complete.gbk", seq, completeFeatures(c))

	var partial []feature
	partial = append(partial, catalogueFeatures("CDS", c.Expected(CDS)[:10], 0)...)
	partial = append(partial, catalogueFeatures("rRNA", c.Expected(RRNA)[:1], 200)...)
	writeRecord(t, dir, "b_partial.gbk", seq, partial)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "c_broken.gbk"), []byte("not genbank\n"), 0644))

	a := NewAnalyzer(c, zaptest.NewLogger(t))
	results, err := a.AnalyzeDir(dir, ".gbk")
	require.NoError(t, err)
	require.Len(t, results, 3)

	complete, partialResult, broken := results[0], results[1], results[2]

	assert.True(t, complete.Complete())
	assert.Equal(t, 22, complete.Counts[TRNA])
	assert.Equal(t, 0, complete.TRNADiff)
	assert.Empty(t, complete.Err)

	assert.False(t, partialResult.Complete())
	assert.Len(t, partialResult.Missing[CDS], 3)
	assert.Len(t, partialResult.Missing[RRNA], 1)

	assert.False(t, broken.Complete())
	assert.NotEmpty(t, broken.Err)
	assert.Equal(t, 0, broken.Length)
	assert.Equal(t, 0.0, broken.GC)

	s := Summarize(results)
	assert.Equal(t, Summary{Complete: 1, Incomplete: 2}, s)
	assert.Equal(t, len(results), s.Complete+s.Incomplete)

	var buf bytes.Buffer
	require.NoError(t, Reporter{Catalogue: c}.Write(&buf, results))
	report := buf.String()

	assert.Contains(t, report, "Complete mitogenomes (1):\na_complete.gbk\n\n")
	assert.Contains(t, report, "Incomplete mitogenomes (2):\nb_partial.gbk\nc_broken.gbk\n")
	assert.Equal(t, 3, strings.Count(report, "File: "))

	ia := strings.Index(report, "File: a_complete.gbk")
	ib := strings.Index(report, "File: b_partial.gbk")
	ic := strings.Index(report, "File: c_broken.gbk")
	assert.True(t, ia < ib && ib < ic, "detail blocks out of input order")

	assert.Contains(t, report, "Genome length (bp): 0\nGC content (%): 0.0\n")
	assert.Contains(t, report, "Missing CDS genes: ATPase6, ATPase8, Cytb\n")
	assert.Contains(t, report, "Missing rRNA genes: 16S rRNA\n")
}

func Test_Partition_order(t *testing.T) {
	full := map[Category]int{RRNA: 2, CDS: 13}
	results := []Result{
		{File: "1", Counts: full},
		{File: "2"},
		{File: "3", Counts: full},
		{File: "4"},
	}

	complete, incomplete := Partition(results)

	assert.Equal(t, []string{"1", "3"}, baseNames(complete))
	assert.Equal(t, []string{"2", "4"}, baseNames(incomplete))
}
