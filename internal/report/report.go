// Package report renders a summary as text with a horizontal bar chart.
// It consumes the summary as plain data; the core never depends on it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/summary"
)

const (
	sectionWidth = 54
	maxBarWidth  = 40
	labelWidth   = 28
)

// Write renders one summary under the given title. Stale marks a degraded
// result served from an expired cache entry. TopN bounds the frequency
// rows; the full table stays untouched on the summary itself.
func Write(w io.Writer, title string, s summary.Summary, stale bool, topN int) error {
	sep := strings.Repeat("=", sectionWidth)
	thin := strings.Repeat("-", sectionWidth)

	fmt.Fprintf(w, "%s\n%s\n%s\n", sep, title, sep)
	if stale {
		fmt.Fprintln(w, "(stale: served from an expired cache entry)")
	}

	fmt.Fprintf(w, "Total records       : %d\n", s.Total)
	fmt.Fprintf(w, "Distinct categories : %d\n", s.DistinctCategories)

	if s.Variants != nil {
		fmt.Fprintf(w, "\nVariants per score\n%s\n", thin)
		if s.Variants.Min == nil {
			fmt.Fprintln(w, "no numeric data")
		} else {
			fmt.Fprintf(w, "min %.0f  max %.0f  mean %.1f  median %.1f\n",
				*s.Variants.Min, *s.Variants.Max, *s.Variants.Mean, *s.Variants.Median)
		}
	}

	if len(s.ReleaseYears) > 0 {
		fmt.Fprintf(w, "\nRelease years\n%s\n", thin)
		writeBars(w, top(s.ReleaseYears, topN))
	}

	if len(s.Categories) > 0 {
		fmt.Fprintf(w, "\nTop categories\n%s\n", thin)
		writeBars(w, top(s.Categories, topN))
	}

	fmt.Fprintln(w, sep)
	return nil
}

// top slices the leading n entries without copying the full table.
func top(entries []summary.FreqEntry, n int) []summary.FreqEntry {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}

// writeBars prints one bar per entry, scaled so the widest row fills
// maxBarWidth. Entries arrive count-descending, so the first sets the scale.
func writeBars(w io.Writer, entries []summary.FreqEntry) {
	if len(entries) == 0 {
		return
	}
	scale := entries[0].Count
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s %s (%d)\n",
			labelWidth, truncate(e.Value, labelWidth), bar(e.Count, scale), e.Count)
	}
}

func bar(count, scale int) string {
	if count <= 0 || scale <= 0 {
		return ""
	}
	width := count * maxBarWidth / scale
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
