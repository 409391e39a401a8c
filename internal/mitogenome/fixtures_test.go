package mitogenome

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// feature is a FEATURES table entry for a generated GenBank file
type feature struct {
	key       string
	loc       string
	qualifier string
	name      string
}

// writeRecord writes a minimal GenBank file to dir and returns its path
func writeRecord(t *testing.T, dir, filename, seq string, features []feature) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "LOCUS       %s %d bp    DNA     circular VRT 01-JAN-2024\n", strings.TrimSuffix(filename, ".gbk"), len(seq))
	b.WriteString("FEATURES             Location/Qualifiers\n")
	for _, f := range features {
		fmt.Fprintf(&b, "     %-16s%s\n", f.key, f.loc)
		if f.qualifier != "" {
			fmt.Fprintf(&b, "                     /%s=\"%s\"\n", f.qualifier, f.name)
		}
	}
	b.WriteString("ORIGIN\n")
	fmt.Fprintf(&b, "        1 %s\n", seq)
	b.WriteString("//\n")

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// catalogueFeatures returns one feature per name, laid end to end
func catalogueFeatures(key string, names []string, offset int) []feature {
	var fs []feature
	for i, name := range names {
		start := offset + i*10 + 1
		fs = append(fs, feature{
			key:       key,
			loc:       fmt.Sprintf("%d..%d", start, start+9),
			qualifier: "gene",
			name:      name,
		})
	}
	return fs
}

// completeFeatures annotates every gene in the default catalogue
func completeFeatures(c *Catalogue) []feature {
	var fs []feature
	fs = append(fs, catalogueFeatures("rRNA", c.Expected(RRNA), 0)...)
	fs = append(fs, catalogueFeatures("CDS", c.Expected(CDS), 100)...)
	fs = append(fs, catalogueFeatures("tRNA", c.Expected(TRNA), 300)...)
	fs = append(fs, catalogueFeatures("D-loop", c.Expected(DLoop), 600)...)
	return fs
}
