package mitogenome

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var defaultCatalogueYAML []byte

// Category is a feature type tracked by the catalogue.
type Category string

const (
	// RRNA are the ribosomal RNA genes
	RRNA Category = "rRNA"

	// CDS are the protein coding genes
	CDS Category = "CDS"

	// TRNA are the transfer RNA genes
	TRNA Category = "tRNA"

	// DLoop is the control region
	DLoop Category = "D_loop"
)

// Categories in the order they're reported.
var Categories = []Category{RRNA, CDS, TRNA, DLoop}

// Catalogue is the list of genes expected per category in a complete
// mitogenome. It is read-only once built; accessors return copies.
type Catalogue struct {
	// expected names in file order, duplicates kept
	expected map[Category][]string

	// distinct names in first-seen order
	distinct map[Category][]string
}

// DefaultCatalogue returns the built in fish mitogenome catalogue.
func DefaultCatalogue() *Catalogue {
	c, err := ParseCatalogue(defaultCatalogueYAML)
	if err != nil {
		panic(fmt.Sprintf("load catalogue.yaml: %v", err))
	}
	return c
}

// LoadCatalogue reads a catalogue from a YAML file mapping each category to
// its list of gene names. An empty path returns the default catalogue.
func LoadCatalogue(path string) (*Catalogue, error) {
	if path == "" {
		return DefaultCatalogue(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gene catalogue: %w", err)
	}

	c, err := ParseCatalogue(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gene catalogue %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalogue builds a Catalogue from its YAML form.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	c := &Catalogue{
		expected: make(map[Category][]string),
		distinct: make(map[Category][]string),
	}

	total := 0
	for key, names := range raw {
		cat := Category(key)
		if !known(cat) {
			return nil, fmt.Errorf("unknown category %q (expected one of %s)", key, categoryList())
		}

		seen := make(map[string]bool)
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, fmt.Errorf("empty gene name in category %s", key)
			}
			c.expected[cat] = append(c.expected[cat], name)
			if !seen[name] {
				seen[name] = true
				c.distinct[cat] = append(c.distinct[cat], name)
			}
			total++
		}
	}

	if total == 0 {
		return nil, fmt.Errorf("catalogue has no genes")
	}
	return c, nil
}

// Expected returns the expected gene names of a category, duplicates included.
func (c *Catalogue) Expected(cat Category) []string {
	return append([]string(nil), c.expected[cat]...)
}

// Distinct returns the distinct expected gene names of a category.
func (c *Catalogue) Distinct(cat Category) []string {
	return append([]string(nil), c.distinct[cat]...)
}

// Contains reports whether name is expected in cat.
func (c *Catalogue) Contains(cat Category, name string) bool {
	for _, n := range c.distinct[cat] {
		if n == name {
			return true
		}
	}
	return false
}

// CategoryOf maps a GenBank feature key to a tracked category. The
// "D-loop" key is normalized to D_loop.
func (c *Catalogue) CategoryOf(featureType string) (Category, bool) {
	cat := Category(strings.ReplaceAll(featureType, "-", "_"))
	if !known(cat) {
		return "", false
	}
	return cat, true
}

func known(cat Category) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

func categoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
