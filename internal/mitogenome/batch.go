package mitogenome

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInputNotFound is returned when the input directory doesn't exist
	ErrInputNotFound = errors.New("input directory does not exist")

	// ErrNoMatchingFiles is returned when the input directory has no records
	ErrNoMatchingFiles = errors.New("no matching files in input directory")
)

// ScanDir returns the paths of the regular files in dir whose names end in
// ext, sorted by name.
func ScanDir(dir, ext string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrNoMatchingFiles, ext, dir)
	}
	return paths, nil
}

// AnalyzeDir audits every record in dir with the ext suffix. Only directory
// level problems are returned as errors; unreadable records are kept in the
// results with their error.
func (a *Analyzer) AnalyzeDir(dir, ext string) ([]Result, error) {
	paths, err := ScanDir(dir, ext)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeFiles(paths), nil
}

// AnalyzeFiles audits each path in order.
func (a *Analyzer) AnalyzeFiles(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, a.AnalyzeFile(path))
	}
	return results
}

// Summary counts complete and incomplete records.
type Summary struct {
	Complete   int `json:"complete"`
	Incomplete int `json:"incomplete"`
}

// Partition splits results into complete and incomplete records, keeping order.
func Partition(results []Result) (complete, incomplete []Result) {
	for _, r := range results {
		if r.Complete() {
			complete = append(complete, r)
		} else {
			incomplete = append(incomplete, r)
		}
	}
	return
}

// Summarize counts the complete and incomplete results.
func Summarize(results []Result) Summary {
	complete, incomplete := Partition(results)
	return Summary{
		Complete:   len(complete),
		Incomplete: len(incomplete),
	}
}
