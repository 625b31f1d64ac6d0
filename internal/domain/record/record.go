// Package record defines the catalog record type and its field readers.
package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NR is the catalog's sentinel for a categorical value that was not reported.
// It is the result of the field being absent, never of a present empty value.
const NR = "NR"

// Record is one catalog entity as returned by the remote API. Only a handful
// of fields are read by the aggregator; everything else passes through
// untouched.
type Record map[string]any

// TraitReported returns the reported trait of a score record. A missing or
// null field maps to NR; a present empty string is returned literally.
func (r Record) TraitReported() string {
	v, ok := r["trait_reported"]
	if !ok || v == nil {
		return NR
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ReleaseYear extracts the leading 4-digit year of the date_release field.
// The second return is false when no such year can be extracted.
func (r Record) ReleaseYear() (string, bool) {
	v, ok := r["date_release"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || len(s) < 4 {
		return "", false
	}
	year := s[:4]
	for _, c := range year {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	return year, true
}

// VariantsNumber returns the variants_number field coerced to a finite
// float64. Non-finite and unparseable values report false and stay out of
// the distribution rather than counting as zero.
func (r Record) VariantsNumber() (float64, bool) {
	return finiteNumber(r["variants_number"])
}

// TraitCategories returns the categories a trait record contributes to. A
// record with no categories contributes exactly once, under NR.
func (r Record) TraitCategories() []string {
	v, ok := r["trait_categories"]
	if !ok || v == nil {
		return []string{NR}
	}

	var cats []string
	switch list := v.(type) {
	case []any:
		for _, c := range list {
			if c == nil {
				continue
			}
			if s, ok := c.(string); ok {
				cats = append(cats, s)
			} else {
				cats = append(cats, fmt.Sprint(c))
			}
		}
	case []string:
		cats = list
	}
	if len(cats) == 0 {
		return []string{NR}
	}
	return cats
}

func finiteNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
