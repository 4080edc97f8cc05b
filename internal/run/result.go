package run

import (
	"fmt"
	"strings"
	"time"

	"github.com/JonMunkholm/ndcconv/internal/ndc"
)

// Sample is one before/after pair captured for the summary.
type Sample struct {
	Before string
	After  string
}

// Result summarizes a completed conversion run.
type Result struct {
	RunID      string
	InputPath  string
	OutputPath string
	Direction  Direction
	Column     string
	NewColumn  string

	TotalRows int
	// Converted counts rows whose value actually changed.
	Converted int
	// Unchanged counts rows passed through as-is (wrong length,
	// non-numeric, or already in the target form).
	Unchanged int
	// UnknownLayout counts 11-digit values whose padding position could
	// not be determined on an 11-to-10 run. Those rows pass through with
	// a logged warning.
	UnknownLayout int

	Samples  []Sample
	Duration time.Duration
}

// tally fills the counters and samples from the parallel before/after
// column values.
func (r *Result) tally(original, converted []string, sampleSize int) {
	for i := range original {
		if converted[i] != original[i] {
			r.Converted++
		} else {
			r.Unchanged++
		}

		if r.Direction == ElevenToTen {
			if layout, _ := ndc.DetectElevenDigitLayout(original[i]); layout == ndc.LayoutUnknown {
				r.UnknownLayout++
			}
		}

		if len(r.Samples) < sampleSize {
			r.Samples = append(r.Samples, Sample{Before: original[i], After: converted[i]})
		}
	}
}

// Summary renders the human-readable run report printed to stdout, in the
// shape the tool has always used.
func (r *Result) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Successfully converted NDCs and saved to: %s\n", r.OutputPath)
	b.WriteString("\nConversion Summary:\n")
	fmt.Fprintf(&b, "Total rows processed: %d\n", r.TotalRows)
	fmt.Fprintf(&b, "Conversion type: %s\n", r.Direction)
	fmt.Fprintf(&b, "Original NDC column: %s\n", r.Column)
	fmt.Fprintf(&b, "Converted NDC column: %s\n", r.NewColumn)
	fmt.Fprintf(&b, "Converted: %d, unchanged: %d\n", r.Converted, r.Unchanged)
	if r.UnknownLayout > 0 {
		fmt.Fprintf(&b, "Rows with undeterminable layout: %d\n", r.UnknownLayout)
	}

	if len(r.Samples) > 0 {
		fmt.Fprintf(&b, "\nSample conversions (first %d):\n", len(r.Samples))
		for _, s := range r.Samples {
			fmt.Fprintf(&b, "  %s -> %s\n", s.Before, s.After)
		}
	}

	return b.String()
}
