package mitogenome

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output is the JSON document written for a batch of results.
type Output struct {
	// Time, ex: "2024/01/01 20:41:00"
	Time string `json:"time"`

	// Summary of complete and incomplete records
	Summary Summary `json:"summary"`

	// Results in input order
	Results []Result `json:"results"`
}

// WriteJSON serializes the results with a summary and writes them to filename.
func WriteJSON(filename string, results []Result) (output []byte, err error) {
	// same format as log.Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	if results == nil {
		results = []Result{}
	}
	out := Output{
		Time:    stamp,
		Summary: Summarize(results),
		Results: results,
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize results: %w", err)
	}

	if err = os.WriteFile(filename, output, 0644); err != nil {
		return output, fmt.Errorf("failed to write results: %w", err)
	}
	return output, nil
}
