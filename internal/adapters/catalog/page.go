package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/record"
)

// envelope is the paged response wrapper: a results array plus an optional
// pointer to the next page.
type envelope struct {
	Results json.RawMessage `json:"results"`
	Next    *string         `json:"next"`
}

// decodePage resolves the polymorphic page body once, at this boundary: the
// body is either a bare array of records or an envelope holding one. The
// returned next string is empty when the response advertises no next page.
func decodePage(url string, body io.Reader) ([]record.Record, string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, "", fmt.Errorf("read page body from %s: %w", url, err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, "", &FormatError{URL: url, Reason: "empty body"}
	}

	switch trimmed[0] {
	case '[':
		var records []record.Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, "", &FormatError{URL: url, Reason: "malformed record array"}
		}
		return records, "", nil

	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, "", &FormatError{URL: url, Reason: "malformed envelope"}
		}
		if env.Results == nil {
			return nil, "", &FormatError{URL: url, Reason: "envelope has no results array"}
		}
		var records []record.Record
		if err := json.Unmarshal(env.Results, &records); err != nil {
			return nil, "", &FormatError{URL: url, Reason: "results is not a record array"}
		}
		next := ""
		if env.Next != nil {
			next = *env.Next
		}
		return records, next, nil

	default:
		return nil, "", &FormatError{URL: url, Reason: "body is neither array nor envelope"}
	}
}
