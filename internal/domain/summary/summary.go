// Package summary computes descriptive statistics over a record collection.
//
// All functions here are pure: no I/O, no shared state, and calling them
// twice on the same input yields structurally identical output. Frequency
// tables come back in full and count-descending; top-N truncation belongs
// to the rendering boundary, not here.
package summary

import (
	"sort"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/record"
)

// FreqEntry is one row of a frequency table.
type FreqEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Distribution describes a numeric field. Every field is nil when the input
// held no finite values for it; the fields are never NaN.
type Distribution struct {
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Mean   *float64 `json:"mean"`
	Median *float64 `json:"median"`
}

// Summary is the aggregated snapshot over a full record collection.
// ReleaseYears and Variants are only populated for score summaries.
type Summary struct {
	Total              int           `json:"total"`
	DistinctCategories int           `json:"distinct_categories"`
	Categories         []FreqEntry   `json:"categories"`
	ReleaseYears       []FreqEntry   `json:"release_years,omitempty"`
	Variants           *Distribution `json:"variants,omitempty"`
}

// Scores aggregates a score record collection: reported-trait and
// release-year frequency tables plus the variants_number distribution.
func Scores(records []record.Record) Summary {
	traits := newCounter()
	years := newCounter()
	var variants []float64

	for _, r := range records {
		traits.add(r.TraitReported())
		if y, ok := r.ReleaseYear(); ok {
			years.add(y)
		}
		if n, ok := r.VariantsNumber(); ok {
			variants = append(variants, n)
		}
	}

	return Summary{
		Total:              len(records),
		DistinctCategories: traits.distinct(),
		Categories:         traits.entries(),
		ReleaseYears:       years.entries(),
		Variants:           describe(variants),
	}
}

// Traits aggregates a trait record collection into a category frequency
// table. A record contributes once per listed category, or once under the
// NR sentinel when it lists none.
func Traits(records []record.Record) Summary {
	cats := newCounter()
	for _, r := range records {
		for _, c := range r.TraitCategories() {
			cats.add(c)
		}
	}

	return Summary{
		Total:              len(records),
		DistinctCategories: cats.distinct(),
		Categories:         cats.entries(),
	}
}

// counter accumulates a frequency table, remembering first-seen order so
// equal counts keep a stable, insertion-ordered tie break.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(value string) {
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

func (c *counter) distinct() int { return len(c.order) }

// entries returns the full table sorted descending by count.
func (c *counter) entries() []FreqEntry {
	if len(c.order) == 0 {
		return nil
	}
	out := make([]FreqEntry, 0, len(c.order))
	for _, v := range c.order {
		out = append(out, FreqEntry{Value: v, Count: c.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// describe computes min, max, mean and median over the given values. It
// always returns a non-nil block; the fields are nil for empty input.
func describe(values []float64) *Distribution {
	d := &Distribution{}
	if len(values) == 0 {
		return d
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	d.Min = ptr(sorted[0])
	d.Max = ptr(sorted[len(sorted)-1])
	d.Mean = ptr(sum / float64(len(sorted)))
	d.Median = ptr(quantile(sorted, 0.5))
	return d
}

// quantile computes the R-7 linear-interpolation quantile over an ascending
// sorted, non-empty slice: position (n-1)*q, blended between the two
// bracketing entries.
func quantile(sorted []float64, q float64) float64 {
	pos := float64(len(sorted)-1) * q
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func ptr(v float64) *float64 { return &v }
