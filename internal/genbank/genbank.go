// Package genbank reads annotated nucleotide records from GenBank flat files.
//
// Only the parts of the format needed to audit a record are kept: the locus
// name, the ORIGIN sequence and the FEATURES table (type, location, strand
// and qualifiers).
package genbank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Strand is the orientation of a feature on the record.
type Strand int

const (
	// Unknown is used for features whose parts disagree on strand
	Unknown Strand = iota

	// Forward is the top strand
	Forward

	// Reverse is a complement(...) location
	Reverse
)

// String returns the strand's symbol.
func (s Strand) String() string {
	switch s {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	}
	return "?"
}

// Location is the span of a feature. Start is 0-based and End is exclusive,
// so "100..200" becomes Start=99, End=200. Compound locations (join, order)
// collapse to the smallest start and the largest end of their parts.
type Location struct {
	Start  int
	End    int
	Strand Strand
}

// Qualifier is a single /name=value entry on a feature.
type Qualifier struct {
	Name  string
	Value string
}

// Feature is one entry of the FEATURES table.
type Feature struct {
	// Type is the feature key, ex: "CDS", "tRNA", "D-loop"
	Type string

	// Location of the feature on the record
	Location Location

	// Qualifiers in the order they appear in the file
	Qualifiers []Qualifier
}

// Qualifier returns the first value of the named qualifier.
func (f Feature) Qualifier(name string) (string, bool) {
	for _, q := range f.Qualifiers {
		if q.Name == name {
			return q.Value, true
		}
	}
	return "", false
}

// GeneName returns the feature's gene symbol, falling back to its product
// name. ok is false when the feature carries neither qualifier.
func (f Feature) GeneName() (name string, ok bool) {
	if name, ok = f.Qualifier("gene"); ok {
		return name, true
	}
	if name, ok = f.Qualifier("product"); ok {
		return name, true
	}
	return "", false
}

// Record is a single annotated GenBank entry.
type Record struct {
	// Locus is the name on the LOCUS line
	Locus string

	// Sequence from the ORIGIN section, letters only, case preserved
	Sequence string

	// Features in file order
	Features []Feature
}

// Read parses the single record in the GenBank file at path.
func Read(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open genbank file: %w", err)
	}
	defer f.Close()

	rec, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rec, nil
}

// section of the flat file the scanner is in
type section int

const (
	header section = iota
	features
	origin
	done
)

// Parse reads exactly one GenBank record from r.
func Parse(r io.Reader) (*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rec := &Record{}
	var (
		at        = header
		sawLocus  bool
		sawOrigin bool
		block     []string // lines of the feature being read
		seq       strings.Builder
	)

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		f, err := parseFeature(block)
		if err != nil {
			return err
		}
		rec.Features = append(rec.Features, f)
		block = nil
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if at == done {
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("more than one record in file")
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "LOCUS"):
			if sawLocus {
				return nil, fmt.Errorf("more than one record in file")
			}
			sawLocus = true
			if fields := strings.Fields(line); len(fields) > 1 {
				rec.Locus = fields[1]
			}
			continue
		case strings.HasPrefix(line, "FEATURES"):
			at = features
			continue
		case strings.HasPrefix(line, "ORIGIN"):
			if err := flush(); err != nil {
				return nil, err
			}
			at = origin
			sawOrigin = true
			continue
		case strings.HasPrefix(line, "//"):
			if err := flush(); err != nil {
				return nil, err
			}
			at = done
			continue
		}

		switch at {
		case features:
			if len(line) > 5 && strings.HasPrefix(line, "     ") && line[5] != ' ' {
				// new feature key at column 6
				if err := flush(); err != nil {
					return nil, err
				}
				block = []string{line}
			} else if len(line) > 0 && line[0] != ' ' {
				// another top-level keyword (ex: CONTIG) closes the table
				if err := flush(); err != nil {
					return nil, err
				}
				at = header
			} else if block != nil {
				block = append(block, line)
			}
		case origin:
			for _, c := range line {
				if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
					seq.WriteRune(c)
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	if !sawLocus {
		return nil, fmt.Errorf("no LOCUS line found")
	}
	if !sawOrigin {
		return nil, fmt.Errorf("no ORIGIN sequence found")
	}
	if err := flush(); err != nil {
		return nil, err
	}

	rec.Sequence = seq.String()
	return rec, nil
}

// parseFeature turns the lines of one feature into a Feature. The first line
// holds the key and the start of the location, the location may continue on
// the next lines, and the qualifiers follow.
func parseFeature(lines []string) (Feature, error) {
	fields := strings.Fields(lines[0])
	f := Feature{Type: fields[0]}

	var loc strings.Builder
	if len(fields) > 1 {
		loc.WriteString(strings.Join(fields[1:], ""))
	}

	i := 1
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "/") {
			break
		}
		loc.WriteString(trimmed)
	}

	location, err := parseLocation(loc.String())
	if err != nil {
		return Feature{}, fmt.Errorf("failed to parse %s location %q: %w", f.Type, loc.String(), err)
	}
	f.Location = location
	f.Qualifiers = parseQualifiers(lines[i:])

	return f, nil
}

// parseQualifiers reads /name=value entries. Values wrapped over several
// lines are joined with a space, except translations which are joined as is.
func parseQualifiers(lines []string) (qualifiers []Qualifier) {
	var (
		name  string
		value strings.Builder
		open  bool
	)

	save := func() {
		if !open {
			return
		}
		v := value.String()
		v = strings.TrimPrefix(v, `"`)
		v = strings.TrimSuffix(v, `"`)
		v = strings.ReplaceAll(v, `""`, `"`)
		qualifiers = append(qualifiers, Qualifier{Name: name, Value: v})
		open = false
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "/") {
			save()
			trimmed = strings.TrimPrefix(trimmed, "/")
			value.Reset()
			open = true
			if idx := strings.Index(trimmed, "="); idx != -1 {
				name = trimmed[:idx]
				value.WriteString(trimmed[idx+1:])
			} else {
				name = trimmed
			}
			continue
		}

		if !open {
			continue
		}
		if name != "translation" {
			value.WriteByte(' ')
		}
		value.WriteString(trimmed)
	}
	save()

	return
}
