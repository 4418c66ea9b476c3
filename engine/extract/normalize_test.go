package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject(t *testing.T) {
	t.Run("Should parse a bare JSON object", func(t *testing.T) {
		fields, err := ParseObject(`{"summary":"Pay rent","deadline":"2026-03-01","fine":"$50","priority":"High","category":"Finance"}`)
		require.NoError(t, err)
		assert.Equal(t, "Pay rent", fields.Summary)
		assert.Equal(t, "2026-03-01", fields.Deadline)
		assert.Equal(t, "$50", fields.Fine)
		assert.Equal(t, "High", fields.Priority)
		assert.Equal(t, "Finance", fields.Category)
	})

	t.Run("Should parse an object inside a fenced code block", func(t *testing.T) {
		raw := "Here is the result:\n```json\n{\"summary\":\"Renew passport\"}\n```\nLet me know if you need more."
		fields, err := ParseObject(raw)
		require.NoError(t, err)
		assert.Equal(t, "Renew passport", fields.Summary)
	})

	t.Run("Should parse a fenced block without a language tag", func(t *testing.T) {
		raw := "```\n{\"summary\":\"Book dentist\"}\n```"
		fields, err := ParseObject(raw)
		require.NoError(t, err)
		assert.Equal(t, "Book dentist", fields.Summary)
	})

	t.Run("Should fail on non-JSON responses", func(t *testing.T) {
		fields, err := ParseObject("I could not find any reminder details.")
		assert.Nil(t, fields)
		assert.ErrorIs(t, err, ErrMalformedExtraction)
	})

	t.Run("Should fail on truncated JSON", func(t *testing.T) {
		_, err := ParseObject(`{"summary":"unterminated`)
		assert.ErrorIs(t, err, ErrMalformedExtraction)
	})
}

func TestParseStringList(t *testing.T) {
	t.Run("Should parse a bare JSON array", func(t *testing.T) {
		list := ParseStringList(`["Finish the report first","Take a break after lunch"]`)
		assert.Equal(t, []string{"Finish the report first", "Take a break after lunch"}, list)
	})

	t.Run("Should extract an array embedded in prose", func(t *testing.T) {
		list := ParseStringList(`Here are your suggestions: ["a","b"] hope that helps!`)
		assert.Equal(t, []string{"a", "b"}, list)
	})

	t.Run("Should degrade to the fallback message when brackets do not parse", func(t *testing.T) {
		list := ParseStringList(`Suggestions: [not, valid, json]`)
		assert.Equal(t, []string{FallbackSuggestion}, list)
	})

	t.Run("Should wrap bracket-free text as a single suggestion", func(t *testing.T) {
		list := ParseStringList("  Just focus on one task at a time.  ")
		assert.Equal(t, []string{"Just focus on one task at a time."}, list)
	})

	t.Run("Should not return nil for a bare JSON null", func(t *testing.T) {
		list := ParseStringList("null")
		assert.Equal(t, []string{"null"}, list)
	})
	t.Run("Should never return an error path", func(t *testing.T) {
		assert.NotNil(t, ParseStringList(""))
	})
}

func TestFieldsNormalize(t *testing.T) {
	t.Run("Should apply sentinels for empty deadline and fine", func(t *testing.T) {
		fields := &Fields{Summary: "  Call mom  "}
		fields.Normalize()
		assert.Equal(t, "Call mom", fields.Summary)
		assert.Equal(t, "Not Found", fields.Deadline)
		assert.Equal(t, "None", fields.Fine)
	})

	t.Run("Should canonicalize priority case-insensitively", func(t *testing.T) {
		for raw, want := range map[string]string{
			"high": "High", "HIGH": "High", "low": "Low",
			"medium": "Medium", "": "Medium", "whenever": "Medium",
		} {
			fields := &Fields{Priority: raw}
			fields.Normalize()
			assert.Equal(t, want, fields.Priority, "priority %q", raw)
		}
	})

	t.Run("Should default the category to General", func(t *testing.T) {
		fields := &Fields{}
		fields.Normalize()
		assert.Equal(t, "General", fields.Category)
	})

	t.Run("Should match known categories case-insensitively", func(t *testing.T) {
		fields := &Fields{Category: "finance"}
		fields.Normalize()
		assert.Equal(t, "Finance", fields.Category)
	})

	t.Run("Should keep unknown categories verbatim", func(t *testing.T) {
		fields := &Fields{Category: "Chores"}
		fields.Normalize()
		assert.Equal(t, "Chores", fields.Category)
	})
}
