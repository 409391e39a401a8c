package mitogenome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var divider = strings.Repeat("=", 40)

// Reporter renders results as a plain text report.
type Reporter struct {
	// Catalogue the results were audited against
	Catalogue *Catalogue

	// ShowMissingTRNA also lists the tRNA genes that weren't found. Off by
	// default, only CDS, rRNA and D_loop are listed
	ShowMissingTRNA bool
}

// WriteFile writes the report to path, replacing any existing file.
func (rp Reporter) WriteFile(path string, results []Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report: %w", cerr)
		}
	}()

	return rp.Write(f, results)
}

// Write renders the report: the complete and incomplete file lists followed
// by a block per result in input order.
func (rp Reporter) Write(w io.Writer, results []Result) error {
	b := bufio.NewWriter(w)
	complete, incomplete := Partition(results)

	fmt.Fprintf(b, "Complete mitogenomes (%d):\n", len(complete))
	fmt.Fprintf(b, "%s\n\n", strings.Join(baseNames(complete), "\n"))
	fmt.Fprintf(b, "Incomplete mitogenomes (%d):\n", len(incomplete))
	fmt.Fprintf(b, "%s\n", strings.Join(baseNames(incomplete), "\n"))
	fmt.Fprintf(b, "\n%s\n\n", divider)

	for _, r := range results {
		rp.writeResult(b, r)
		fmt.Fprintf(b, "\n%s\n\n", divider)
	}

	if err := b.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (rp Reporter) writeResult(w io.Writer, r Result) {
	fmt.Fprintf(w, "File: %s\n", filepath.Base(r.File))
	fmt.Fprintf(w, "Genome length (bp): %d\n", r.Length)
	fmt.Fprintf(w, "GC content (%%): %s\n", formatPercent(r.GC))
	fmt.Fprintf(w, "N count: %d (%s%%)\n", r.NCount, formatPercent(r.NPercent))
	fmt.Fprintln(w, "Components found:")

	for _, cat := range Categories {
		genes, ok := r.Components[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s: expected %d, found %d\n", cat, len(rp.Catalogue.Expected(cat)), r.Counts[cat])
		for _, g := range genes {
			fmt.Fprintf(w, "    %s: start=%d, end=%d, length=%d, strand=%s\n", g.Name, g.Start, g.End, g.Length, g.Strand)
		}
	}

	if r.TRNADiff != 0 {
		fmt.Fprintf(w, "tRNA count difference: %d\n", r.TRNADiff)
	}

	missingOrder := []Category{CDS, RRNA, DLoop}
	if rp.ShowMissingTRNA {
		missingOrder = append(missingOrder, TRNA)
	}
	for _, cat := range missingOrder {
		if missing := r.Missing[cat]; len(missing) > 0 {
			fmt.Fprintf(w, "Missing %s genes: %s\n", cat, strings.Join(missing, ", "))
		}
	}

	if r.Err != "" {
		fmt.Fprintf(w, "Parse error: %s\n", r.Err)
	}
}

func baseNames(results []Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = filepath.Base(r.File)
	}
	return names
}

// formatPercent prints the shortest form of v, with at least one decimal
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
