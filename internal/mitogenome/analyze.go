// Package mitogenome audits annotated mitochondrial genome records against a
// catalogue of expected genes and reports which records are complete.
package mitogenome

import (
	"math"
	"strings"

	"github.com/PaulaGudiela/Fishbiotools/internal/genbank"
	"go.uber.org/zap"
)

// CanonicalTRNACount is the number of tRNA genes in a complete vertebrate mitogenome.
const CanonicalTRNACount = 22

// Gene is a catalogue gene found in a record.
type Gene struct {
	// Name as written in the record's gene or product qualifier
	Name string `json:"gene"`

	// Start is 1-based
	Start int `json:"start"`

	// End is inclusive
	End int `json:"end"`

	Length int    `json:"length"`
	Strand string `json:"strand"`
}

// Result is the audit of one record.
type Result struct {
	// File is the path the record was read from
	File string `json:"file"`

	// Length is the number of bases in the record's sequence
	Length int `json:"genomeLength"`

	// GC is the percent of G and C bases, rounded to two decimals
	GC float64 `json:"gcContent"`

	// NCount is the number of undetermined (N) bases
	NCount int `json:"nCount"`

	// NPercent is NCount as a percent of Length, rounded to two decimals
	NPercent float64 `json:"nPercentage"`

	// Components are the catalogue genes found, per category, in record order
	Components map[Category][]Gene `json:"components"`

	// Counts are the number of catalogue genes found per category. A gene
	// annotated twice is counted twice
	Counts map[Category]int `json:"counts"`

	// Missing are the distinct catalogue genes never found, per category
	Missing map[Category][]string `json:"missingGenes"`

	// TRNADiff is the tRNA count minus CanonicalTRNACount
	TRNADiff int `json:"tRNACountDifference"`

	// Err is set when the record couldn't be read
	Err string `json:"error,omitempty"`
}

// Complete reports whether both rRNA genes and all 13 protein coding genes
// were found.
func (r Result) Complete() bool {
	return r.Counts[RRNA] == 2 && r.Counts[CDS] == 13
}

// Analyzer audits records against a Catalogue.
type Analyzer struct {
	catalogue *Catalogue
	log       *zap.Logger

	// read supplies the record at a path
	read func(path string) (*genbank.Record, error)
}

// NewAnalyzer returns an Analyzer for the catalogue. A nil logger discards logs.
func NewAnalyzer(catalogue *Catalogue, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		catalogue: catalogue,
		log:       log,
		read:      genbank.Read,
	}
}

// AnalyzeFile reads and audits the record at path. A record that can't be
// read is logged and returned as a zero-valued Result carrying the error.
func (a *Analyzer) AnalyzeFile(path string) Result {
	rec, err := a.read(path)
	if err != nil {
		a.log.Warn("failed to analyze record", zap.String("file", path), zap.Error(err))
		return Result{File: path, Err: err.Error()}
	}

	r := a.Analyze(path, rec)
	a.log.Debug("analyzed record",
		zap.String("file", path),
		zap.Int("length", r.Length),
		zap.Int("rRNA", r.Counts[RRNA]),
		zap.Int("CDS", r.Counts[CDS]),
		zap.Int("tRNA", r.Counts[TRNA]),
		zap.Bool("complete", r.Complete()),
	)
	return r
}

// Analyze audits an already parsed record.
func (a *Analyzer) Analyze(file string, rec *genbank.Record) Result {
	seq := strings.ToUpper(rec.Sequence)

	r := Result{
		File:       file,
		Length:     len(seq),
		NCount:     strings.Count(seq, "N"),
		Components: make(map[Category][]Gene),
		Counts:     make(map[Category]int),
		Missing:    make(map[Category][]string),
	}
	r.GC = percent(strings.Count(seq, "G")+strings.Count(seq, "C"), r.Length)
	r.NPercent = percent(r.NCount, r.Length)

	missing := make(map[Category]map[string]bool)
	for _, cat := range Categories {
		r.Components[cat] = []Gene{}
		r.Counts[cat] = 0
		missing[cat] = make(map[string]bool)
		for _, name := range a.catalogue.Distinct(cat) {
			missing[cat][name] = true
		}
	}

	for _, f := range rec.Features {
		cat, tracked := a.catalogue.CategoryOf(f.Type)
		if !tracked {
			continue
		}

		name, ok := f.GeneName()
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if !a.catalogue.Contains(cat, name) {
			continue
		}

		start := f.Location.Start + 1
		end := f.Location.End
		strand := "-"
		if f.Location.Strand == genbank.Forward {
			strand = "+"
		}

		r.Components[cat] = append(r.Components[cat], Gene{
			Name:   name,
			Start:  start,
			End:    end,
			Length: abs(end - start + 1),
			Strand: strand,
		})
		r.Counts[cat]++
		delete(missing[cat], name)
	}

	for _, cat := range Categories {
		r.Missing[cat] = []string{}
		for _, name := range a.catalogue.Distinct(cat) {
			if missing[cat][name] {
				r.Missing[cat] = append(r.Missing[cat], name)
			}
		}
	}

	r.TRNADiff = r.Counts[TRNA] - CanonicalTRNACount

	return r
}

// percent returns 100*n/total rounded to two decimals, 0 for an empty total
func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*100*100) / 100
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
