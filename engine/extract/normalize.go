package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedExtraction marks a model response that could not be parsed
// as the expected JSON object. Extraction callers treat this as a hard
// failure: nothing is persisted from a response that does not parse.
var ErrMalformedExtraction = errors.New("model response is not valid extraction JSON")

// FallbackSuggestion is returned when a bracketed suggestion payload is
// present but unparseable.
const FallbackSuggestion = "Unable to parse AI suggestions. Please try again."

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// unfence returns the interior of the first fenced code block if one is
// present, otherwise the trimmed input. Models reliably wrap JSON in
// prose or code fences; this isolates the payload.
func unfence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if match := fencedBlock.FindStringSubmatch(trimmed); match != nil {
		return strings.TrimSpace(match[1])
	}
	return trimmed
}

// ParseObject is the strict path: it unfences the response and parses it
// as a single JSON object. A parse failure wraps ErrMalformedExtraction.
// There is no schema validation beyond JSON itself; missing fields are
// defaulted later by Fields.Normalize.
func ParseObject(raw string) (*Fields, error) {
	payload := unfence(raw)
	var fields Fields
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExtraction, err)
	}
	return &fields, nil
}

// ParseStringList is the best-effort path used for suggestions. It tries
// the whole response as a JSON string array, then the widest bracketed
// substring; a bracketed candidate that still fails to parse degrades to
// the fixed fallback message, and a response with no brackets at all is
// returned as a single-element list. It never fails outward.
func ParseStringList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	var list []string
	// A bare "null" unmarshals cleanly into a nil slice; treat it like
	// any other non-array response instead of returning nil.
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil && list != nil {
		return list
	}
	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start == -1 || end <= start {
		return []string{trimmed}
	}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &list); err != nil {
		return []string{FallbackSuggestion}
	}
	return list
}
