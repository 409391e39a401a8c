package mitogenome

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PaulaGudiela/Fishbiotools/internal/genbank"
	"github.com/google/go-cmp/cmp"
)

func Test_formatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{45.12, "45.12"},
		{50, "50.0"},
		{1.5, "1.5"},
		{100, "100.0"},
	}
	for _, tt := range tests {
		if got := formatPercent(tt.in); got != tt.want {
			t.Errorf("formatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReporter_Write_block(t *testing.T) {
	c := DefaultCatalogue()
	rec := &genbank.Record{
		Sequence: "GGCCAATTNN",
		Features: []genbank.Feature{
			gene("rRNA", "12S rRNA", 0, 5, genbank.Forward),
			gene("tRNA", "tRNA-Phe", 5, 8, genbank.Reverse),
		},
	}
	r := NewAnalyzer(c, nil).Analyze(filepath.Join("some", "dir", "fish.gbk"), rec)

	var buf bytes.Buffer
	if err := (Reporter{Catalogue: c}).Write(&buf, []Result{r}); err != nil {
		t.Fatal(err)
	}

	want := `Complete mitogenomes (0):


Incomplete mitogenomes (1):
fish.gbk

========================================

File: fish.gbk
Genome length (bp): 10
GC content (%): 40.0
N count: 2 (20.0%)
Components found:
  rRNA: expected 2, found 1
    12S rRNA: start=1, end=5, length=5, strand=+
  CDS: expected 13, found 0
  tRNA: expected 22, found 1
    tRNA-Phe: start=6, end=8, length=3, strand=-
  D_loop: expected 1, found 0
tRNA count difference: -21
Missing CDS genes: ND1, ND2, ND3, ND4, ND4L, ND5, ND6, COXI, COXII, COXIII, ATPase6, ATPase8, Cytb
Missing rRNA genes: 16S rRNA
Missing D_loop genes: D-loop

========================================

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Reporter.Write() mismatch (-want +got):\n%s", diff)
	}
}

func TestReporter_Write_missingTRNA(t *testing.T) {
	c := DefaultCatalogue()
	r := NewAnalyzer(c, nil).Analyze("x.gbk", &genbank.Record{Sequence: "ACGT"})

	tests := []struct {
		name string
		show bool
		want bool
	}{
		{"suppressed by default", false, false},
		{"shown when enabled", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (Reporter{Catalogue: c, ShowMissingTRNA: tt.show}).Write(&buf, []Result{r}); err != nil {
				t.Fatal(err)
			}
			got := strings.Contains(buf.String(), "Missing tRNA genes: tRNA-Phe")
			if got != tt.want {
				t.Errorf("tRNA missing line present = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReporter_WriteFile_overwrites(t *testing.T) {
	c := DefaultCatalogue()
	path := filepath.Join(t.TempDir(), "run_report.txt")

	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 1000)), 0644); err != nil {
		t.Fatal(err)
	}

	rp := Reporter{Catalogue: c}
	if err := rp.WriteFile(path, []Result{{File: "a.gbk", Err: "no LOCUS line found"}}); err != nil {
		t.Fatalf("Reporter.WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(got), "stale") {
		t.Error("Reporter.WriteFile() kept old contents")
	}
	if !strings.Contains(string(got), "Parse error: no LOCUS line found\n") {
		t.Errorf("Reporter.WriteFile() missing parse error line:\n%s", got)
	}
}

func Test_WriteJSON(t *testing.T) {
	c := DefaultCatalogue()
	results := []Result{
		NewAnalyzer(c, nil).Analyze("a.gbk", &genbank.Record{Sequence: "GC"}),
		{File: "b.gbk", Err: "boom"},
	}

	path := filepath.Join(t.TempDir(), "run_results.json")
	if _, err := WriteJSON(path, results); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	if out.Summary != (Summary{Complete: 0, Incomplete: 2}) {
		t.Errorf("WriteJSON() summary = %+v", out.Summary)
	}
	if len(out.Results) != 2 || out.Results[0].GC != 100 || out.Results[1].Err != "boom" {
		t.Errorf("WriteJSON() results = %+v", out.Results)
	}
}
